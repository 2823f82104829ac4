package input

import (
	"errors"
	"testing"

	"github.com/achilleasa/rtview/asset/material"
	"github.com/achilleasa/rtview/asset/scene"
	"github.com/achilleasa/rtview/types"
)

func TestExpandObjects(t *testing.T) {
	translation := types.Vec3{1, 2, 3}
	min, max := types.Vec3{-1, -1, -1}, types.Vec3{1, 1, 1}

	sc := NewScene()
	sc.Objects = append(sc.Objects,
		&Object{Type: "sphere", Center: types.Vec3{0, 0, 0}, Radius: 1, Material: "dielectric", Transform: &Transform{Translation: &translation}},
		&Object{Type: "triangle", Vertices: []types.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, Material: "diffuse"},
		&Object{Type: "rectangle", Vertices: []types.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}, Material: "light"},
		&Object{Type: "box", Min: &min, Max: &max, Material: "metal", Constant: 0.25},
		&Object{Type: "volume", Vertices: []types.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 0, 0}}, Constant: 0.1},
		&Object{Type: "mesh", Vertices: []types.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}},
	)

	prims, err := sc.Primitives()
	if err != nil {
		t.Fatal(err)
	}

	// sphere + triangle + rectangle + 6 box faces + volume + mesh
	expCount := 11
	if len(prims) != expCount {
		t.Fatalf("expected %d primitives; got %d", expCount, len(prims))
	}

	if prims[0].Shape != scene.Sphere || prims[0].Center != translation {
		t.Fatalf("expected translated sphere at %v; got %v at %v", translation, prims[0].Shape, prims[0].Center)
	}
	if prims[0].Constant != material.DefaultIOR {
		t.Fatalf("expected dielectric to default to IOR %f; got %f", material.DefaultIOR, prims[0].Constant)
	}

	if prims[1].Shape != scene.Triangle || len(prims[1].Vertices) != 4 {
		t.Fatalf("expected triangle with 4 vertices; got %v with %d", prims[1].Shape, len(prims[1].Vertices))
	}
	if n := prims[1].Vertices[3]; n != (types.Vec3{0, 0, 1}) {
		t.Fatalf("expected triangle normal (0,0,1); got %v", n)
	}

	if prims[2].Shape != scene.Rectangle || prims[2].Material != scene.DiffuseLight {
		t.Fatalf("expected light rectangle; got %v/%v", prims[2].Shape, prims[2].Material)
	}

	for index := 3; index < 9; index++ {
		if prims[index].Shape != scene.Rectangle || prims[index].Material != scene.Metal || prims[index].Constant != 0.25 {
			t.Fatalf("expected box face %d to be a metal rectangle; got %+v", index-3, prims[index])
		}
	}

	if prims[9].Shape != scene.BoxVolume {
		t.Fatalf("expected volume; got %v", prims[9].Shape)
	}

	mesh := prims[10]
	if mesh.Shape != scene.Mesh || len(mesh.Vertices) != 11 {
		t.Fatalf("expected mesh with 11 vertex slots; got %v with %d", mesh.Shape, len(mesh.Vertices))
	}
	if mesh.Vertices[3] != (types.Vec3{1, 0, 0}) || mesh.Vertices[6] != (types.Vec3{0, 1, 0}) {
		t.Fatalf("expected mesh positions at slots 0, 3 and 6; got %v", mesh.Vertices)
	}
	if mesh.Vertices[9] != (types.Vec3{-1, -1, -1}) {
		t.Fatalf("expected unset texture indices; got %v", mesh.Vertices[9])
	}
}

func TestExpandErrors(t *testing.T) {
	type spec struct {
		obj    *Object
		expErr error
	}
	specs := []spec{
		{&Object{Type: "cone"}, ErrUnknownObjectType},
		{&Object{Type: "triangle", Vertices: []types.Vec3{{}, {}}}, scene.ErrInvalidPrimitiveGeometry},
		{&Object{Type: "rectangle", Vertices: []types.Vec3{{}}}, scene.ErrInvalidPrimitiveGeometry},
		{&Object{Type: "box"}, scene.ErrInvalidPrimitiveGeometry},
		{&Object{Type: "volume", Vertices: make([]types.Vec3, 3)}, scene.ErrInvalidPrimitiveGeometry},
		{&Object{Type: "mesh", Vertices: make([]types.Vec3, 5)}, scene.ErrInvalidPrimitiveGeometry},
	}

	for index, s := range specs {
		sc := &Scene{Objects: []*Object{s.obj}}
		if _, err := sc.Primitives(); !errors.Is(err, s.expErr) {
			t.Fatalf("[spec %d] expected error %v; got %v", index, s.expErr, err)
		}
	}

	if _, err := NewScene().Primitives(); !errors.Is(err, ErrEmptyScene) {
		t.Fatalf("expected ErrEmptyScene; got %v", err)
	}

	sc := &Scene{Objects: []*Object{{Type: "sphere", Radius: 1, Material: "velvet"}}}
	if _, err := sc.Primitives(); err == nil {
		t.Fatal("expected unknown material error")
	}
}
