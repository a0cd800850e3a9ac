package pose

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// EulerYXZ extracts Euler angles in radians from q for the Y, X, Z
// application order: X is pitch, Y is yaw, Z is roll. A zero or identity
// quaternion yields the zero vector.
func EulerYXZ(q rl.Quaternion) rl.Vector3 {
	x, y, z, w := float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)
	if n := math.Sqrt(x*x + y*y + z*z + w*w); n > 0 {
		x, y, z, w = x/n, y/n, z/n, w/n
	}

	m11 := 1 - 2*(y*y+z*z)
	m13 := 2 * (x*z + y*w)
	m21 := 2 * (x*y + z*w)
	m22 := 1 - 2*(x*x+z*z)
	m23 := 2 * (y*z - x*w)
	m31 := 2 * (x*z - y*w)
	m33 := 1 - 2*(x*x+y*y)

	var out rl.Vector3
	out.X = float32(math.Asin(-clamp(m23, -1, 1)))
	if math.Abs(m23) < 0.9999999 {
		out.Y = float32(math.Atan2(m13, m33))
		out.Z = float32(math.Atan2(m21, m22))
	} else {
		// gimbal lock: roll folds into yaw
		out.Y = float32(math.Atan2(-m31, m11))
	}
	return out
}

// QuaternionYXZ is the inverse of EulerYXZ.
func QuaternionYXZ(pitch, yaw, roll float64) rl.Quaternion {
	s1, c1 := math.Sincos(pitch / 2)
	s2, c2 := math.Sincos(yaw / 2)
	s3, c3 := math.Sincos(roll / 2)
	return rl.Quaternion{
		X: float32(s1*c2*c3 + c1*s2*s3),
		Y: float32(c1*s2*c3 - s1*c2*s3),
		Z: float32(c1*c2*s3 - s1*s2*c3),
		W: float32(c1*c2*c3 + s1*s2*s3),
	}
}

// IsNullVector reports whether every component of v is exactly zero.
func IsNullVector(v rl.Vector3) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
