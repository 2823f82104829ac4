package compiler

import (
	"errors"
	"testing"

	"github.com/achilleasa/rtview/asset/compiler/bvh"
	"github.com/achilleasa/rtview/asset/scene"
	"github.com/achilleasa/rtview/types"
)

func TestPackNodes(t *testing.T) {
	nodes := []bvh.LinearNode{
		{
			AABB:   bvh.AABB{Min: types.Vec3{-1, -2, -3}, Max: types.Vec3{4, 5, 6}},
			Offset: 2,
			Axis:   2,
		},
		{
			AABB: bvh.AABB{
				Min:      types.Vec3{-1, -2, -3},
				Max:      types.Vec3{0, 0, 0},
				Shape:    scene.Sphere,
				Constant: 1.5,
				Material: scene.Dielectric,
			},
			Offset:         0,
			PrimitiveCount: 1,
		},
	}

	data := PackNodes(nodes)
	if len(data) != 2*NodeStride {
		t.Fatalf("expected %d floats; got %d", 2*NodeStride, len(data))
	}

	expRoot := []float32{-1, -2, -3, 4, 5, 6, 2, 0, 2, 0, 0, 0}
	expLeaf := []float32{-1, -2, -3, 0, 0, 0, 0, 1, 0, 1, 1.5, 3}
	assertFloats(t, "root", expRoot, data[:NodeStride])
	assertFloats(t, "leaf", expLeaf, data[NodeStride:])

	decoded, err := UnpackNodes(data)
	if err != nil {
		t.Fatal(err)
	}
	for index := range nodes {
		if decoded[index] != nodes[index] {
			t.Fatalf("expected decoded node %d to be %+v; got %+v", index, nodes[index], decoded[index])
		}
	}
}

func TestUnpackNodesRejectsPartialRecords(t *testing.T) {
	_, err := UnpackNodes(make([]float32, NodeStride+1))
	if !errors.Is(err, bvh.ErrMalformedHierarchy) {
		t.Fatalf("expected ErrMalformedHierarchy; got %v", err)
	}
}

func TestPackPrimitiveLayouts(t *testing.T) {
	id := types.IdentityTransform()
	albedo := types.Vec3{0.1, 0.2, 0.3}

	var meshVerts [11]types.Vec3
	for index := range meshVerts {
		meshVerts[index] = types.Vec3{float32(index), 0, 0}
	}

	specs := []struct {
		descr string
		prim  *scene.Primitive
		exp   []float32
	}{
		{
			"sphere",
			scene.NewSphere(types.Vec3{1, 2, 3}, 4, albedo, id, 0, scene.Diffuse),
			[]float32{1, 2, 3, 0.1, 0.2, 0.3, 4},
		},
		{
			"triangle",
			scene.NewTriangle([4]types.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, albedo, id, 0, scene.Diffuse),
			[]float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0.1, 0.2, 0.3},
		},
		{
			"rectangle",
			scene.NewRectangle([5]types.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {0, 0, 1}}, albedo, id, 0, scene.Diffuse),
			[]float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 0, 0, 1, 0.1, 0.2, 0.3},
		},
		{
			"volume",
			scene.NewBoxVolume([4]types.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 0, 0}}, albedo, id, 0.5, scene.Diffuse),
			[]float32{1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0.1, 0.2, 0.3},
		},
		{
			"mesh",
			scene.NewMeshTriangle(meshVerts, 0, scene.Diffuse),
			[]float32{0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0, 0, 4, 0, 0, 5, 0, 0, 6, 0, 0, 7, 0, 0, 8, 0, 0, 9, 0, 0, 10, 0, 0},
		},
		{
			"no shape",
			&scene.Primitive{},
			nil,
		},
	}

	for _, spec := range specs {
		data := PackPrimitives([]scene.Primitive{*spec.prim})
		if len(data) != PrimitiveStride {
			t.Fatalf("[%s] expected %d floats; got %d", spec.descr, PrimitiveStride, len(data))
		}

		exp := make([]float32, PrimitiveStride)
		copy(exp, spec.exp)
		assertFloats(t, spec.descr, exp, data)
	}
}

func TestPackPrimitivesPadsMissingVertices(t *testing.T) {
	prim := scene.Primitive{
		Shape:    scene.Triangle,
		Vertices: []types.Vec3{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}},
		Albedo:   types.Vec3{9, 9, 9},
	}

	data := PackPrimitives([]scene.Primitive{prim, prim})
	if len(data) != 2*PrimitiveStride {
		t.Fatalf("expected %d floats; got %d", 2*PrimitiveStride, len(data))
	}

	exp := make([]float32, PrimitiveStride)
	copy(exp, []float32{1, 1, 1, 2, 2, 2, 3, 3, 3, 0, 0, 0, 9, 9, 9})
	assertFloats(t, "first", exp, data[:PrimitiveStride])
	assertFloats(t, "second", exp, data[PrimitiveStride:])
}

func assertFloats(t *testing.T, descr string, exp, got []float32) {
	t.Helper()
	if len(exp) != len(got) {
		t.Fatalf("[%s] expected %d floats; got %d", descr, len(exp), len(got))
	}
	for index := range exp {
		if exp[index] != got[index] {
			t.Fatalf("[%s] expected float %d to be %f; got %f (record %v)", descr, index, exp[index], got[index], got)
		}
	}
}
