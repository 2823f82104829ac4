package bvh

import (
	"sync"

	"github.com/achilleasa/rtview/asset/scene"
)

// Hierarchy owns the output of the most recent successful BVH build. The
// linear node list and the ordered primitive list are positionally
// correlated so they are always replaced together.
type Hierarchy struct {
	sync.RWMutex

	nodes      []LinearNode
	primitives []scene.Primitive
	stats      Stats
}

// Create an empty hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{}
}

// Build a new BVH for the given primitives and replace the current one. If
// the build fails the previous nodes and primitives are kept.
func (h *Hierarchy) Rebuild(primitives []scene.Primitive) error {
	nodes, ordered, stats, err := build(primitives)
	if err != nil {
		return err
	}

	h.Lock()
	h.nodes = nodes
	h.primitives = ordered
	h.stats = stats
	h.Unlock()
	return nil
}

// Get the current linear nodes and ordered primitives. Callers must treat
// the returned slices as read-only.
func (h *Hierarchy) Snapshot() ([]LinearNode, []scene.Primitive) {
	h.RLock()
	defer h.RUnlock()
	return h.nodes, h.primitives
}

// Get the statistics of the last successful build.
func (h *Hierarchy) Stats() Stats {
	h.RLock()
	defer h.RUnlock()
	return h.stats
}

// Get the number of linear nodes and primitives.
func (h *Hierarchy) Len() (nodeCount, primitiveCount int) {
	h.RLock()
	defer h.RUnlock()
	return len(h.nodes), len(h.primitives)
}
