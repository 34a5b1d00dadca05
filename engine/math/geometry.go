package math

import "github.com/spaghettifunk/camrig/engine/core"

// GeometryExtents returns the axis-aligned bounds of vertices and their centre.
func GeometryExtents(vertices []Vec3) (minExtents, maxExtents, center Vec3) {
	if len(vertices) == 0 {
		return
	}
	minExtents, maxExtents = vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		minExtents = NewVec3(Min(minExtents.X, v.X), Min(minExtents.Y, v.Y), Min(minExtents.Z, v.Z))
		maxExtents = NewVec3(Max(maxExtents.X, v.X), Max(maxExtents.Y, v.Y), Max(maxExtents.Z, v.Z))
	}
	center = minExtents.Add(maxExtents).MulScalar(0.5)
	return
}

func reassignIndex(edges [][2]uint32, from uint32, to uint32) {
	for i := range edges {
		for j := range edges[i] {
			if edges[i][j] == from {
				edges[i][j] = to
			} else if edges[i][j] > from {
				// Pull in all indices higher than 'from' by 1.
				edges[i][j]--
			}
		}
	}
}

/**
 * @brief Merges vertices closer than K_FLOAT_EPSILON and rewrites edges to
 * point at the survivors. The edge slice is updated in place.
 * @return The unique vertices, in first-seen order.
 */
func GeometryDeduplicateVertices(vertices []Vec3, edges [][2]uint32) []Vec3 {
	unique := make([]Vec3, 0, len(vertices))
	foundCount := uint32(0)

	for v := range vertices {
		found := false
		for u := range unique {
			if vertices[v].Compare(unique[u], K_FLOAT_EPSILON) {
				// Reassign indices, do not copy
				reassignIndex(edges, uint32(v)-foundCount, uint32(u))
				found = true
				foundCount++
				break
			}
		}
		if !found {
			unique = append(unique, vertices[v])
		}
	}

	core.LogDebug("GeometryDeduplicateVertices: removed %d vertices, orig/now %d/%d.", foundCount, len(vertices), len(unique))
	return unique
}
