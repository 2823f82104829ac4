package input

import (
	"fmt"

	"github.com/achilleasa/rtview/asset/material"
	"github.com/achilleasa/rtview/asset/scene"
	"github.com/achilleasa/rtview/types"
)

// Transform settings for an object. Omitted components default to the
// identity transform.
type Transform struct {
	Translation *types.Vec3 `json:"translation,omitempty"`
	Rotation    *types.Vec3 `json:"rotation,omitempty"`
	Scale       *types.Vec3 `json:"scale,omitempty"`
}

func (t *Transform) resolve() types.Transform {
	xform := types.IdentityTransform()
	if t == nil {
		return xform
	}
	if t.Translation != nil {
		xform.Translation = *t.Translation
	}
	if t.Rotation != nil {
		xform.Rotation = *t.Rotation
	}
	if t.Scale != nil {
		xform.Scale = *t.Scale
	}
	return xform
}

// An object as authored in a scene description. Depending on its type an
// object expands into one or more primitives.
//
// Supported types and their geometry:
//   - sphere: center, radius
//   - triangle: 3 vertices (+ optional normal)
//   - rectangle: 4 corners (+ optional normal)
//   - box: 30 vertices (6 faces of 4 corners + normal) or min/max corners
//   - volume: 3 edge end-points followed by the shared edge origin
//   - mesh: 3 positions, or 11 vertices (3 x position/normal/uv + 2 texture index slots)
type Object struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type"`

	Center   types.Vec3   `json:"center"`
	Radius   float32      `json:"radius,omitempty"`
	Vertices []types.Vec3 `json:"vertices,omitempty"`
	Min      *types.Vec3  `json:"min,omitempty"`
	Max      *types.Vec3  `json:"max,omitempty"`

	Albedo   types.Vec3 `json:"albedo"`
	Material string     `json:"material,omitempty"`
	Constant float32    `json:"constant,omitempty"`
	IOR      string     `json:"ior,omitempty"`

	Transform *Transform `json:"transform,omitempty"`
}

// Camera settings.
type Camera struct {
	FOV      float32    `json:"fov"`
	Position types.Vec3 `json:"position"`
	LookAt   types.Vec3 `json:"lookAt"`
	Up       types.Vec3 `json:"up"`
}

// The scene description processed by the scene compiler.
type Scene struct {
	Name    string    `json:"name"`
	Camera  *Camera   `json:"camera,omitempty"`
	Objects []*Object `json:"objects"`
}

// Create a new scene.
func NewScene() *Scene {
	return &Scene{
		Objects: make([]*Object, 0),
		Camera:  DefaultCamera(),
	}
}

// The camera used when a description does not define one.
func DefaultCamera() *Camera {
	return &Camera{
		FOV:      45.0,
		Position: types.Vec3{0, 1, 3},
		LookAt:   types.Vec3{0, 1, 0},
		Up:       types.Vec3{0, 1, 0},
	}
}

// Expand all scene objects into primitives.
func (sc *Scene) Primitives() ([]scene.Primitive, error) {
	if len(sc.Objects) == 0 {
		return nil, ErrEmptyScene
	}

	prims := make([]scene.Primitive, 0, len(sc.Objects))
	for index, obj := range sc.Objects {
		objPrims, err := obj.Primitives()
		if err != nil {
			return nil, fmt.Errorf("input: object %d (%s): %w", index, obj.label(), err)
		}
		for _, prim := range objPrims {
			prims = append(prims, *prim)
		}
	}
	return prims, nil
}

func (obj *Object) label() string {
	if obj.Name != "" {
		return obj.Name
	}
	return obj.Type
}

// Expand object into primitives.
func (obj *Object) Primitives() ([]*scene.Primitive, error) {
	kind, err := material.KindFromName(obj.Material)
	if err != nil {
		return nil, err
	}
	constant, err := material.Constant(kind, obj.Constant, obj.IOR)
	if err != nil {
		return nil, err
	}

	xform := obj.Transform.resolve()
	v := obj.Vertices

	switch obj.Type {
	case "sphere":
		return []*scene.Primitive{
			scene.NewSphere(obj.Center, obj.Radius, obj.Albedo, xform, constant, kind),
		}, nil
	case "triangle":
		if err = expectVertices(len(v), 3, 4); err != nil {
			return nil, err
		}
		var verts [4]types.Vec3
		copy(verts[:], v)
		if len(v) == 3 {
			verts[3] = faceNormal(v[0], v[1], v[2])
		}
		return []*scene.Primitive{
			scene.NewTriangle(verts, obj.Albedo, xform, constant, kind),
		}, nil
	case "rectangle":
		if err = expectVertices(len(v), 4, 5); err != nil {
			return nil, err
		}
		var verts [5]types.Vec3
		copy(verts[:], v)
		if len(v) == 4 {
			verts[4] = faceNormal(v[0], v[1], v[3])
		}
		return []*scene.Primitive{
			scene.NewRectangle(verts, obj.Albedo, xform, constant, kind),
		}, nil
	case "box":
		var verts [30]types.Vec3
		switch {
		case len(v) == 30:
			copy(verts[:], v)
		case len(v) == 0 && obj.Min != nil && obj.Max != nil:
			verts = boxFaces(*obj.Min, *obj.Max)
		default:
			return nil, fmt.Errorf("%w: box requires 30 vertices or min/max corners", scene.ErrInvalidPrimitiveGeometry)
		}
		return scene.NewBox(verts, obj.Albedo, xform, constant, kind), nil
	case "volume":
		if err = expectVertices(len(v), 4); err != nil {
			return nil, err
		}
		var verts [4]types.Vec3
		copy(verts[:], v)
		return []*scene.Primitive{
			scene.NewBoxVolume(verts, obj.Albedo, xform, constant, kind),
		}, nil
	case "mesh":
		if err = expectVertices(len(v), 3, 11); err != nil {
			return nil, err
		}
		return []*scene.Primitive{
			scene.NewMeshTriangle(meshVertices(v, xform), constant, kind),
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownObjectType, obj.Type)
}

func expectVertices(got int, allowed ...int) error {
	for _, count := range allowed {
		if got == count {
			return nil
		}
	}
	return fmt.Errorf("%w: expected %v vertices; got %d", scene.ErrInvalidPrimitiveGeometry, allowed, got)
}

func faceNormal(v0, v1, v2 types.Vec3) types.Vec3 {
	return v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
}

// Convert mesh vertices to world space. Lists with only 3 positions get a
// flat face normal, zero uvs and unset texture indices.
func meshVertices(v []types.Vec3, xform types.Transform) [11]types.Vec3 {
	var out [11]types.Vec3
	if len(v) == 3 {
		n := faceNormal(v[0], v[1], v[2])
		for i := 0; i < 3; i++ {
			out[i*3] = v[i]
			out[i*3+1] = n
		}
		out[9] = types.Vec3{-1, -1, -1}
		out[10] = types.Vec3{-1, 0, 0}
	} else {
		copy(out[:], v)
	}

	for i := 0; i < 3; i++ {
		out[i*3] = xform.Point(out[i*3])
		out[i*3+1] = xform.Normal(out[i*3+1])
	}
	return out
}

// Generate the 6 faces of an axis-aligned box. Each face lists 4 corners
// followed by its outward normal.
func boxFaces(min, max types.Vec3) [30]types.Vec3 {
	x0, y0, z0 := min[0], min[1], min[2]
	x1, y1, z1 := max[0], max[1], max[2]
	return [30]types.Vec3{
		{x0, y0, z0}, {x0, y0, z1}, {x0, y1, z1}, {x0, y1, z0}, {-1, 0, 0},
		{x1, y0, z0}, {x1, y1, z0}, {x1, y1, z1}, {x1, y0, z1}, {1, 0, 0},
		{x0, y0, z0}, {x1, y0, z0}, {x1, y0, z1}, {x0, y0, z1}, {0, -1, 0},
		{x0, y1, z0}, {x0, y1, z1}, {x1, y1, z1}, {x1, y1, z0}, {0, 1, 0},
		{x0, y0, z0}, {x0, y1, z0}, {x1, y1, z0}, {x1, y0, z0}, {0, 0, -1},
		{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1}, {0, 0, 1},
	}
}
