package bvh

import (
	"errors"
	"sync"
	"testing"

	"github.com/achilleasa/rtview/asset/scene"
	"github.com/achilleasa/rtview/types"
)

func TestHierarchyRebuild(t *testing.T) {
	h := NewHierarchy()
	if n, p := h.Len(); n != 0 || p != 0 {
		t.Fatalf("expected empty hierarchy; got %d nodes, %d primitives", n, p)
	}

	err := h.Rebuild([]scene.Primitive{sphere(0, 0, 0, 1), sphere(5, 0, 0, 1), sphere(0, 5, 0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if n, p := h.Len(); n != 5 || p != 3 {
		t.Fatalf("expected 5 nodes and 3 primitives; got %d, %d", n, p)
	}
	if stats := h.Stats(); stats.Leafs != 3 || stats.Nodes != 5 {
		t.Fatalf("expected build stats for 3 leafs and 5 nodes; got %+v", stats)
	}

	// A failed rebuild keeps the previous state
	err = h.Rebuild([]scene.Primitive{{Shape: scene.Rectangle, Vertices: []types.Vec3{{}}}})
	if !errors.Is(err, scene.ErrInvalidPrimitiveGeometry) {
		t.Fatalf("expected ErrInvalidPrimitiveGeometry; got %v", err)
	}
	if err = h.Rebuild(nil); !errors.Is(err, ErrNoPrimitives) {
		t.Fatalf("expected ErrNoPrimitives; got %v", err)
	}
	if n, p := h.Len(); n != 5 || p != 3 {
		t.Fatalf("expected previous state to be kept; got %d nodes, %d primitives", n, p)
	}

	// A successful rebuild replaces both lists
	if err = h.Rebuild([]scene.Primitive{sphere(1, 1, 1, 1)}); err != nil {
		t.Fatal(err)
	}
	nodes, prims := h.Snapshot()
	if len(nodes) != 1 || len(prims) != 1 {
		t.Fatalf("expected 1 node and 1 primitive; got %d, %d", len(nodes), len(prims))
	}
}

func TestHierarchyConcurrentSnapshots(t *testing.T) {
	h := NewHierarchy()
	small := []scene.Primitive{sphere(0, 0, 0, 1)}
	large := []scene.Primitive{sphere(0, 0, 0, 1), sphere(2, 0, 0, 1), sphere(4, 0, 0, 1), sphere(6, 0, 0, 1)}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			if i%2 == 0 {
				h.Rebuild(small)
			} else {
				h.Rebuild(large)
			}
		}
	}()

	for i := 0; i < 200; i++ {
		nodes, prims := h.Snapshot()
		if len(nodes) == 0 {
			continue
		}
		if len(nodes) != 2*len(prims)-1 {
			t.Fatalf("expected snapshot with %d nodes for %d primitives; got %d", 2*len(prims)-1, len(prims), len(nodes))
		}
	}
	wg.Wait()
}
