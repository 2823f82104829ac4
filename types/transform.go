package types

import "github.com/go-gl/mathgl/mgl32"

// Transform positions an object inside the scene. Rotation angles are
// specified in degrees and are applied in X, Y, Z order.
type Transform struct {
	Translation Vec3
	Rotation    Vec3
	Scale       Vec3
}

// Create a transform that leaves vertices untouched.
func IdentityTransform() Transform {
	return Transform{Scale: Vec3{1, 1, 1}}
}

// Build the model matrix: translate * rotX * rotY * rotZ * scale.
func (t Transform) Mat4() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2])
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.Rotation[0])))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Rotation[1])))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotation[2])))
	return m.Mul4(mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// Transform a point and apply the perspective divide.
func (t Transform) Point(v Vec3) Vec3 {
	p := t.Mat4().Mul4x1(mgl32.Vec4{v[0], v[1], v[2], 1})
	return Vec3{p[0] / p[3], p[1] / p[3], p[2] / p[3]}
}

// Transform a normal vector using the inverse-transpose of the model matrix.
// The result is not re-normalized.
func (t Transform) Normal(v Vec3) Vec3 {
	n := t.Mat4().Inv().Transpose().Mul4x1(mgl32.Vec4{v[0], v[1], v[2], 0})
	return Vec3{n[0], n[1], n[2]}
}
