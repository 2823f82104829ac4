package compiler

import (
	"fmt"

	"github.com/achilleasa/rtview/asset/compiler/bvh"
	"github.com/achilleasa/rtview/asset/scene"
	"github.com/achilleasa/rtview/types"
)

const (
	// Number of floats per packed BVH node.
	NodeStride = 12

	// Number of floats per packed primitive.
	PrimitiveStride = 33
)

// Pack linear BVH nodes into a flat float table.
func PackNodes(nodes []bvh.LinearNode) []float32 {
	data := make([]float32, 0, len(nodes)*NodeStride)
	for index := range nodes {
		node := &nodes[index]
		data = append(data,
			node.AABB.Min[0], node.AABB.Min[1], node.AABB.Min[2],
			node.AABB.Max[0], node.AABB.Max[1], node.AABB.Max[2],
			float32(node.Offset),
			float32(node.PrimitiveCount),
			float32(node.Axis),
			float32(node.AABB.Shape),
			node.AABB.Constant,
			float32(node.AABB.Material),
		)
	}
	return data
}

// Pack primitives into a flat float table. Every record is PrimitiveStride
// floats long; the layout depends on the primitive shape:
//
//	sphere:    center(3) albedo(3) radius(1)
//	triangle:  3 vertices + normal(12) albedo(3)
//	rectangle: 4 corners + normal(15) albedo(3)
//	volume:    4 vertices(12) albedo(3)
//	mesh:      3 x position/normal/uv + 2 texture index slots(33)
//
// Unused trailing floats are zero. Primitives without a shape occupy an
// all-zero record so that leaf offsets stay aligned with the table.
func PackPrimitives(prims []scene.Primitive) []float32 {
	data := make([]float32, len(prims)*PrimitiveStride)
	for index := range prims {
		packPrimitive(&prims[index], data[index*PrimitiveStride:(index+1)*PrimitiveStride])
	}
	return data
}

func packPrimitive(prim *scene.Primitive, record []float32) {
	w := recordWriter{record: record}

	switch prim.Shape {
	case scene.Sphere:
		w.vec3(prim.Center)
		w.vec3(prim.Albedo)
		w.float(prim.Radius)
	case scene.Mesh:
		w.vertices(prim.Vertices, prim.Shape.VertexSlots())
	case scene.Triangle, scene.Rectangle, scene.BoxVolume:
		w.vertices(prim.Vertices, prim.Shape.VertexSlots())
		w.vec3(prim.Albedo)
	}
}

// Writes sequentially into a zeroed record.
type recordWriter struct {
	record []float32
	pos    int
}

func (w *recordWriter) float(v float32) {
	w.record[w.pos] = v
	w.pos++
}

func (w *recordWriter) vec3(v types.Vec3) {
	copy(w.record[w.pos:], v[:])
	w.pos += 3
}

// Write exactly slots vertices; missing vertices are left zeroed and extra
// ones are dropped.
func (w *recordWriter) vertices(verts []types.Vec3, slots int) {
	for slot := 0; slot < slots; slot++ {
		if slot < len(verts) {
			copy(w.record[w.pos:], verts[slot][:])
		}
		w.pos += 3
	}
}

// Decode a packed node table back into linear nodes. The table length must
// be a multiple of NodeStride.
func UnpackNodes(data []float32) ([]bvh.LinearNode, error) {
	if len(data)%NodeStride != 0 {
		return nil, fmt.Errorf("%w: node table length %d is not a multiple of %d", bvh.ErrMalformedHierarchy, len(data), NodeStride)
	}

	nodes := make([]bvh.LinearNode, len(data)/NodeStride)
	for index := range nodes {
		rec := data[index*NodeStride : (index+1)*NodeStride]
		nodes[index] = bvh.LinearNode{
			AABB: bvh.AABB{
				Min:      types.Vec3{rec[0], rec[1], rec[2]},
				Max:      types.Vec3{rec[3], rec[4], rec[5]},
				Shape:    scene.ShapeKind(rec[9]),
				Constant: rec[10],
				Material: scene.MaterialKind(rec[11]),
			},
			Offset:         int32(rec[6]),
			PrimitiveCount: int32(rec[7]),
			Axis:           int32(rec[8]),
		}
	}
	return nodes, nil
}
