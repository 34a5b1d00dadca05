package math

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// ToF32 returns the matrix in the row-major layout used by x/image.
func (mt Mat4) ToF32() f32.Mat4 {
	return f32.Mat4(NewMat4Transposed(mt).Data)
}

// NewMat4FromF32 reads a row-major x/image matrix.
func NewMat4FromF32(m f32.Mat4) Mat4 {
	return NewMat4Transposed(Mat4{Data: m})
}

// ToAff3 keeps the 2D affine part of the matrix: the x and y rows and the
// x, y and translation columns.
func (mt Mat4) ToAff3() f64.Aff3 {
	return f64.Aff3{
		float64(mt.Data[0]), float64(mt.Data[4]), float64(mt.Data[12]),
		float64(mt.Data[1]), float64(mt.Data[5]), float64(mt.Data[13]),
	}
}

// ApplyAff3 maps a point through a row-major 2D affine matrix.
func ApplyAff3(a f64.Aff3, p Vec2) Vec2 {
	x, y := float64(p.X), float64(p.Y)
	return Vec2{
		float32(a[0]*x + a[1]*y + a[2]),
		float32(a[3]*x + a[4]*y + a[5]),
	}
}

// MulAff3 returns a * b, so b is applied first.
func MulAff3(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3], a[0]*b[1] + a[1]*b[4], a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3], a[3]*b[1] + a[4]*b[4], a[3]*b[2] + a[4]*b[5] + a[5],
	}
}
