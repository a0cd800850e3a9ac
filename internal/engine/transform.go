package engine

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform is a node's local placement. Rotation holds Euler angles in
// degrees applied in Y, X, Z order (yaw, pitch, roll). With zero rotation
// a node faces -Z with +Y up.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3
	Scale    rl.Vector3
}

// RotationMatrix builds the matrix for Euler degrees in Y, X, Z order.
func RotationMatrix(rotationDeg rl.Vector3) rl.Matrix {
	rx := float32(degToRad(rotationDeg.X))
	ry := float32(degToRad(rotationDeg.Y))
	rz := float32(degToRad(rotationDeg.Z))
	// MatrixMultiply(a, b) applies a first
	return rl.MatrixMultiply(rl.MatrixMultiply(rl.MatrixRotateZ(rz), rl.MatrixRotateX(rx)), rl.MatrixRotateY(ry))
}

// Forward is the -Z axis rotated by rotationDeg.
func Forward(rotationDeg rl.Vector3) rl.Vector3 {
	sp, cp := math.Sincos(degToRad(rotationDeg.X))
	sy, cy := math.Sincos(degToRad(rotationDeg.Y))
	return rl.Vector3{
		X: float32(-sy * cp),
		Y: float32(sp),
		Z: float32(-cy * cp),
	}
}

// Up is the +Y axis rotated by rotationDeg; roll tilts it.
func Up(rotationDeg rl.Vector3) rl.Vector3 {
	sp, cp := math.Sincos(degToRad(rotationDeg.X))
	sy, cy := math.Sincos(degToRad(rotationDeg.Y))
	sr, cr := math.Sincos(degToRad(rotationDeg.Z))
	return rl.Vector3{
		X: float32(-sr*cy + cr*sp*sy),
		Y: float32(cr * cp),
		Z: float32(sr*sy + cr*sp*cy),
	}
}

func degToRad(d float32) float64 {
	return float64(d) * math.Pi / 180
}
