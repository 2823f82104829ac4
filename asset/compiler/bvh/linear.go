package bvh

import "fmt"

// A node of the flattened BVH.
//
// For leafs, Offset indexes the ordered primitive list and PrimitiveCount
// is 1. For interior nodes, PrimitiveCount is 0, Axis is the split axis and
// Offset is the index of the right child. The left child of an interior
// node is always stored right after it.
type LinearNode struct {
	AABB AABB

	Offset         int32
	PrimitiveCount int32
	Axis           int32
}

func (n *LinearNode) IsLeaf() bool {
	return n.PrimitiveCount > 0
}

type linearizer struct {
	tree  []buildNode
	nodes []LinearNode
}

// Flatten the tree rooted at root using a depth-first pre-order traversal.
func flatten(tree []buildNode, root int32) []LinearNode {
	l := &linearizer{
		tree:  tree,
		nodes: make([]LinearNode, 0, len(tree)),
	}
	l.flatten(root)
	return l.nodes
}

// Append the subtree rooted at the given arena index and return the index
// of its first linear node.
func (l *linearizer) flatten(index int32) int32 {
	node := &l.tree[index]

	myOffset := int32(len(l.nodes))
	l.nodes = append(l.nodes, LinearNode{
		AABB:           node.aabb,
		PrimitiveCount: node.primitiveCount,
	})

	if node.isLeaf() {
		l.nodes[myOffset].Offset = node.firstOffset
		return myOffset
	}

	l.nodes[myOffset].Axis = int32(node.axis)

	// The left subtree lands at myOffset+1; the right child slot is only
	// known after the left subtree has been emitted.
	l.flatten(node.left)
	l.nodes[myOffset].Offset = l.flatten(node.right)

	return myOffset
}

// A callback invoked for each visited linear node.
type VisitFunc func(index int, node *LinearNode, depth int)

// Walk a linear node list the way the traversal shader does: starting at
// node 0, visiting index+1 as the left child and Offset as the right child
// of interior nodes. An error is returned if a child index points outside
// the list or a node is reached twice.
func Walk(nodes []LinearNode, visitFn VisitFunc) error {
	if len(nodes) == 0 {
		return nil
	}

	type entry struct {
		index int
		depth int
	}

	visited := make([]bool, len(nodes))
	stack := []entry{{0, 0}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.index < 0 || cur.index >= len(nodes) {
			return fmt.Errorf("%w: child index %d out of range", ErrMalformedHierarchy, cur.index)
		}
		if visited[cur.index] {
			return fmt.Errorf("%w: node %d reached twice", ErrMalformedHierarchy, cur.index)
		}
		visited[cur.index] = true

		node := &nodes[cur.index]
		if visitFn != nil {
			visitFn(cur.index, node, cur.depth)
		}

		if node.IsLeaf() {
			continue
		}

		// Push right first so the left subtree is visited first
		stack = append(stack, entry{int(node.Offset), cur.depth + 1})
		stack = append(stack, entry{cur.index + 1, cur.depth + 1})
	}

	for index, seen := range visited {
		if !seen {
			return fmt.Errorf("%w: node %d is unreachable", ErrMalformedHierarchy, index)
		}
	}

	return nil
}

// Verify the structure of a linear node list against the number of
// primitives it indexes and collect statistics about it.
func Analyze(nodes []LinearNode, primitiveCount int) (Stats, error) {
	stats := Stats{
		Nodes:      len(nodes),
		Primitives: primitiveCount,
	}

	seen := make([]bool, primitiveCount)
	var rangeErr error
	err := Walk(nodes, func(index int, node *LinearNode, depth int) {
		if depth > stats.MaxDepth {
			stats.MaxDepth = depth
		}
		if !node.IsLeaf() {
			return
		}

		stats.Leafs++
		for p := node.Offset; p < node.Offset+node.PrimitiveCount; p++ {
			if p < 0 || int(p) >= primitiveCount || seen[p] {
				if rangeErr == nil {
					rangeErr = fmt.Errorf("%w: leaf %d references primitive %d", ErrPrimitiveOutOfRange, index, p)
				}
				continue
			}
			seen[p] = true
		}
	})
	if err != nil {
		return stats, err
	}
	if rangeErr != nil {
		return stats, rangeErr
	}

	for p, ok := range seen {
		if !ok {
			return stats, fmt.Errorf("%w: primitive %d is not referenced by any leaf", ErrPrimitiveOutOfRange, p)
		}
	}

	return stats, nil
}
