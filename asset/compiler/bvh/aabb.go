package bvh

import (
	"fmt"

	"github.com/achilleasa/rtview/asset/scene"
	"github.com/achilleasa/rtview/types"
	"github.com/chewxy/math32"
)

type Axis uint8

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

// An axis-aligned bounding box. Boxes computed for a primitive also carry
// the primitive shape, constant and material so that BVH leafs can expose
// them to the traversal shader without an extra lookup.
type AABB struct {
	Min types.Vec3
	Max types.Vec3

	Shape    scene.ShapeKind
	Constant float32
	Material scene.MaterialKind
}

// Create an empty box. Merging any box with an empty box yields the other box.
func EmptyAABB() AABB {
	return AABB{
		Min: types.Vec3{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		Max: types.Vec3{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
}

// Calculate the bounding box of a primitive.
func NewAABB(prim *scene.Primitive) (AABB, error) {
	if err := prim.Validate(); err != nil {
		return AABB{}, err
	}

	box := EmptyAABB()
	box.Shape = prim.Shape
	box.Constant = prim.Constant
	box.Material = prim.Material

	v := prim.Vertices
	switch prim.Shape {
	case scene.Sphere:
		r := types.Vec3{prim.Radius, prim.Radius, prim.Radius}
		box.Min = prim.Center.Sub(r)
		box.Max = prim.Center.Add(r)
	case scene.Mesh:
		box.fold(v[0], v[3], v[6])
	case scene.Triangle:
		box.fold(v[0], v[1], v[2])
	case scene.Rectangle:
		box.fold(v[0], v[1], v[2], v[3])
	case scene.BoxVolume:
		box.fold(boxVolumeCorners(v)...)
	case scene.NoShape:
	default:
		return AABB{}, fmt.Errorf("%w: %d", scene.ErrUnknownShape, uint32(prim.Shape))
	}

	return box, nil
}

// Derive the 8 corners of a box volume. Vertices 0-2 are the far ends of the
// three edges that start at vertex 3.
func boxVolumeCorners(v []types.Vec3) []types.Vec3 {
	origin := v[3]
	length := v[0].Sub(origin)
	width := v[1].Sub(origin)
	height := v[2].Sub(origin)

	return []types.Vec3{
		v[0], v[1], v[2], origin,
		origin.Add(length).Add(width).Add(height),
		origin.Add(length).Add(width),
		origin.Add(length).Add(height),
		origin.Add(width).Add(height),
	}
}

func (b *AABB) fold(points ...types.Vec3) {
	for _, p := range points {
		b.Min = types.MinVec3(b.Min, p)
		b.Max = types.MaxVec3(b.Max, p)
	}
}

// Merge two boxes. The shape, constant and material of the result are unset.
func Merge(a, b AABB) AABB {
	return AABB{
		Min: types.MinVec3(a.Min, b.Min),
		Max: types.MaxVec3(a.Max, b.Max),
	}
}

// Grow a box so that it contains point p. The shape, constant and material
// of the result are unset.
func MergePoint(a AABB, p types.Vec3) AABB {
	return AABB{
		Min: types.MinVec3(a.Min, p),
		Max: types.MaxVec3(a.Max, p),
	}
}

// Return the midpoint of the box.
func (b AABB) Centroid() types.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Return the box extent along each axis.
func (b AABB) Extent() types.Vec3 {
	return b.Max.Sub(b.Min)
}

// Return the axis with the largest extent. X wins only if it is strictly
// larger than both other axes; Y wins ties against Z.
func (b AABB) DominantAxis() Axis {
	d := b.Extent()
	if d[0] > d[1] && d[0] > d[2] {
		return XAxis
	} else if d[1] >= d[2] {
		return YAxis
	}
	return ZAxis
}

// Returns true if the box was never grown.
func (b AABB) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Returns true if p lies inside or on the surface of the box.
func (b AABB) Contains(p types.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if p[axis] < b.Min[axis] || p[axis] > b.Max[axis] {
			return false
		}
	}
	return true
}

// Returns true if other lies completely inside this box.
func (b AABB) ContainsBox(other AABB) bool {
	return b.Contains(other.Min) && b.Contains(other.Max)
}
