package components

import "github.com/spaghettifunk/camrig/engine/renderer/metadata"

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

/**
 * @brief Anything that can write its matrices into a renderer. Ideally,
 * cameras are created and managed by the camera system.
 */
type Camera interface {
	Update(target CameraTarget)
}

/** @brief A registered camera and the number of holders it has. */
type CameraLookup struct {
	ID             string
	ReferenceCount uint16
	Camera         Camera
	// Rig the camera was built from, if any. Its projection is applied on every update.
	Rig *metadata.CameraRig
}
