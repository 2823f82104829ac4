package scene

import (
	"fmt"

	"github.com/achilleasa/rtview/types"
	"github.com/chewxy/math32"
)

// The shape of a primitive. Values are written verbatim to the GPU node
// table so they must stay in sync with the traversal shader.
type ShapeKind uint32

const (
	NoShape ShapeKind = iota
	Sphere
	Mesh
	Triangle
	Rectangle
	BoxVolume
)

var shapeNames = [...]string{"none", "sphere", "mesh", "triangle", "rectangle", "volume"}

func (s ShapeKind) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", uint32(s))
}

// The minimum vertex list length required for computing the primitive
// bounding box. Mesh vertices are stored as position/normal/uv triplets so
// the last position lives at index 6.
func (s ShapeKind) RequiredVertices() int {
	switch s {
	case Mesh:
		return 7
	case Triangle:
		return 3
	case Rectangle, BoxVolume:
		return 4
	}
	return 0
}

// The number of vertex slots that the GPU packer reserves for this shape.
func (s ShapeKind) VertexSlots() int {
	switch s {
	case Mesh:
		return 11
	case Triangle:
		return 4
	case Rectangle:
		return 5
	case BoxVolume:
		return 4
	}
	return 0
}

// The material model used by the shader when shading a primitive.
type MaterialKind uint32

const (
	NoMaterial MaterialKind = iota
	Diffuse
	Metal
	Dielectric
	DiffuseLight
)

var materialNames = [...]string{"none", "diffuse", "metal", "dielectric", "light"}

func (m MaterialKind) String() string {
	if int(m) < len(materialNames) {
		return materialNames[m]
	}
	return fmt.Sprintf("material(%d)", uint32(m))
}

// Defines a renderable scene primitive.
type Primitive struct {
	// The primitive shape.
	Shape ShapeKind

	// Shape-specific vertex list. Spheres do not use it.
	Vertices []types.Vec3

	// Sphere center and radius.
	Center types.Vec3
	Radius float32

	Albedo types.Vec3

	// Material parameter; the refractive index for dielectrics and the
	// fuzz factor for metals.
	Constant float32

	Material MaterialKind
}

// Check that the primitive carries enough geometry for its shape.
func (p *Primitive) Validate() error {
	switch p.Shape {
	case NoShape:
		return nil
	case Sphere:
		if p.Radius < 0 || math32.IsNaN(p.Radius) {
			return fmt.Errorf("%w: sphere radius %f", ErrInvalidPrimitiveGeometry, p.Radius)
		}
		if p.Center.HasNaN() {
			return fmt.Errorf("%w: sphere center contains NaN", ErrInvalidPrimitiveGeometry)
		}
		return nil
	case Mesh, Triangle, Rectangle, BoxVolume:
		if req := p.Shape.RequiredVertices(); len(p.Vertices) < req {
			return fmt.Errorf("%w: %s requires %d vertices; got %d", ErrInvalidPrimitiveGeometry, p.Shape, req, len(p.Vertices))
		}
		return nil
	}

	return fmt.Errorf("%w: %d", ErrUnknownShape, uint32(p.Shape))
}

// Create new sphere primitive. Only the center is affected by the transform.
func NewSphere(center types.Vec3, radius float32, albedo types.Vec3, xform types.Transform, constant float32, material MaterialKind) *Primitive {
	return &Primitive{
		Shape:    Sphere,
		Center:   xform.Point(center),
		Radius:   radius,
		Albedo:   albedo,
		Constant: constant,
		Material: material,
	}
}

// Create a triangle from 3 positions and a face normal.
func NewTriangle(vertices [4]types.Vec3, albedo types.Vec3, xform types.Transform, constant float32, material MaterialKind) *Primitive {
	return &Primitive{
		Shape: Triangle,
		Vertices: []types.Vec3{
			xform.Point(vertices[0]),
			xform.Point(vertices[1]),
			xform.Point(vertices[2]),
			xform.Normal(vertices[3]),
		},
		Albedo:   albedo,
		Constant: constant,
		Material: material,
	}
}

// Create a rectangle from 4 corners and a face normal.
func NewRectangle(vertices [5]types.Vec3, albedo types.Vec3, xform types.Transform, constant float32, material MaterialKind) *Primitive {
	return &Primitive{
		Shape: Rectangle,
		Vertices: []types.Vec3{
			xform.Point(vertices[0]),
			xform.Point(vertices[1]),
			xform.Point(vertices[2]),
			xform.Point(vertices[3]),
			xform.Normal(vertices[4]),
		},
		Albedo:   albedo,
		Constant: constant,
		Material: material,
	}
}

// Create a participating-media box. Vertices 0-2 are the far ends of the
// three edges that meet at the corner stored in vertex 3.
func NewBoxVolume(vertices [4]types.Vec3, albedo types.Vec3, xform types.Transform, constant float32, material MaterialKind) *Primitive {
	prim := &Primitive{
		Shape:    BoxVolume,
		Vertices: make([]types.Vec3, 4),
		Albedo:   albedo,
		Constant: constant,
		Material: material,
	}
	for idx, v := range vertices {
		prim.Vertices[idx] = xform.Point(v)
	}
	return prim
}

// Create a solid box as 6 rectangles. Each face is described by 5
// consecutive vertices (4 corners and a normal).
func NewBox(vertices [30]types.Vec3, albedo types.Vec3, xform types.Transform, constant float32, material MaterialKind) []*Primitive {
	faces := make([]*Primitive, 6)
	for face := 0; face < 6; face++ {
		var faceVerts [5]types.Vec3
		copy(faceVerts[:], vertices[face*5:face*5+5])
		faces[face] = NewRectangle(faceVerts, albedo, xform, constant, material)
	}
	return faces
}

// Create a mesh triangle. The vertex list contains 3 position/normal/uv
// triplets followed by two texture index slots; it is expected to be in
// world space already.
func NewMeshTriangle(vertices [11]types.Vec3, constant float32, material MaterialKind) *Primitive {
	verts := make([]types.Vec3, len(vertices))
	copy(verts, vertices[:])
	return &Primitive{
		Shape:    Mesh,
		Vertices: verts,
		Constant: constant,
		Material: material,
	}
}
