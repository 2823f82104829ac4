package bvh

import (
	"fmt"
	"time"

	"github.com/achilleasa/rtview/asset/scene"
	"github.com/achilleasa/rtview/log"
	"github.com/achilleasa/rtview/types"
)

// Build-time information about a primitive being partitioned.
type PrimitiveInfo struct {
	// Index of the primitive in the builder input list.
	PrimitiveIndex int32

	Centroid types.Vec3
	AABB     AABB
}

func newPrimitiveInfo(index int32, bounds AABB) PrimitiveInfo {
	return PrimitiveInfo{
		PrimitiveIndex: index,
		Centroid:       bounds.Centroid(),
		AABB:           bounds,
	}
}

const noChild int32 = -1

// A node of the transient BVH tree. Nodes are stored in an arena and
// reference their children by index.
type buildNode struct {
	aabb AABB

	left  int32
	right int32

	primitiveCount int32
	firstOffset    int32
	axis           Axis
}

func (n *buildNode) isLeaf() bool {
	return n.primitiveCount > 0
}

// Statistics collected while building or analyzing a BVH.
type Stats struct {
	Nodes      int
	Leafs      int
	Primitives int
	MaxDepth   int
	BuildTime  time.Duration
}

type builder struct {
	logger log.Logger

	// The input primitives; indexed by PrimitiveInfo.PrimitiveIndex.
	primitives []scene.Primitive

	// Partitioned in place while building the tree.
	infos []PrimitiveInfo

	// Tree node arena.
	nodes []buildNode

	// Primitives in the order that leafs were emitted.
	ordered []scene.Primitive

	stats Stats
}

// Construct a BVH for a set of primitives and flatten it into a linear node
// list. The builder emits one leaf per primitive and splits each interior
// node at the count median along the axis with the widest centroid spread.
//
// The returned primitive list contains the input primitives re-ordered so
// that each leaf Offset indexes the primitive it was built from.
func Build(primitives []scene.Primitive) ([]LinearNode, []scene.Primitive, error) {
	nodes, ordered, _, err := build(primitives)
	return nodes, ordered, err
}

func build(primitives []scene.Primitive) ([]LinearNode, []scene.Primitive, Stats, error) {
	if len(primitives) == 0 {
		return nil, nil, Stats{}, ErrNoPrimitives
	}

	b := &builder{
		logger:     log.New("bvh builder"),
		primitives: primitives,
		infos:      make([]PrimitiveInfo, len(primitives)),
		nodes:      make([]buildNode, 0, 2*len(primitives)-1),
		ordered:    make([]scene.Primitive, 0, len(primitives)),
		stats: Stats{
			Primitives: len(primitives),
		},
	}

	start := time.Now()
	for index := range primitives {
		bounds, err := NewAABB(&primitives[index])
		if err != nil {
			return nil, nil, Stats{}, fmt.Errorf("bvh: primitive %d: %w", index, err)
		}
		b.infos[index] = newPrimitiveInfo(int32(index), bounds)
	}

	root := b.recursiveBuild(0, len(b.infos), 0)
	linearNodes := flatten(b.nodes, root)

	b.stats.BuildTime = time.Since(start)
	b.logger.Debugf(
		"BVH tree build time: %d ms, maxDepth: %d, nodes: %d, leafs: %d",
		b.stats.BuildTime.Nanoseconds()/1e6,
		b.stats.MaxDepth, b.stats.Nodes, b.stats.Leafs,
	)

	return linearNodes, b.ordered, b.stats, nil
}

// Partition the primitive info entries in [start, end) and return the arena
// index of the generated node.
func (b *builder) recursiveBuild(start, end, depth int) int32 {
	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}

	bounds := EmptyAABB()
	for i := start; i < end; i++ {
		bounds = Merge(bounds, b.infos[i].AABB)
	}

	if end-start == 1 {
		return b.createLeaf(&b.infos[start])
	}

	// Split along the axis where the centroids are spread the most
	centroidBounds := EmptyAABB()
	for i := start; i < end; i++ {
		centroidBounds = MergePoint(centroidBounds, b.infos[i].Centroid)
	}
	axis := centroidBounds.DominantAxis()

	mid := (start + end) / 2
	partitionByMedian(b.infos, start, mid, end, axis)

	nodeIndex := b.addNode(buildNode{
		aabb:  bounds,
		left:  noChild,
		right: noChild,
		axis:  axis,
	})

	left := b.recursiveBuild(start, mid, depth+1)
	right := b.recursiveBuild(mid, end, depth+1)
	b.nodes[nodeIndex].left = left
	b.nodes[nodeIndex].right = right

	return nodeIndex
}

// Emit a leaf for a single primitive and append the primitive to the
// ordered output list.
func (b *builder) createLeaf(info *PrimitiveInfo) int32 {
	firstOffset := int32(len(b.ordered))
	b.ordered = append(b.ordered, b.primitives[info.PrimitiveIndex])
	b.stats.Leafs++

	return b.addNode(buildNode{
		aabb:           info.AABB,
		left:           noChild,
		right:          noChild,
		primitiveCount: 1,
		firstOffset:    firstOffset,
	})
}

func (b *builder) addNode(node buildNode) int32 {
	b.nodes = append(b.nodes, node)
	b.stats.Nodes++
	return int32(len(b.nodes) - 1)
}

// Reorder infos[start:end] around the centroid of the entry currently at
// mid using a two-pointer scan. Entries below the pivot move towards start;
// entries equal to or above it move towards end. The pivot slot is read on
// every comparison so swaps that move it change the pivot value. Callers
// split at mid regardless of where the pointers met.
func partitionByMedian(infos []PrimitiveInfo, start, mid, end int, axis Axis) {
	left := start
	right := end - 1
	for {
		for left < right && infos[left].Centroid[axis] < infos[mid].Centroid[axis] {
			left++
		}
		for left < right && infos[right].Centroid[axis] >= infos[mid].Centroid[axis] {
			right--
		}
		if left >= right {
			break
		}
		infos[left], infos[right] = infos[right], infos[left]
	}
}
