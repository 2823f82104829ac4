package compiler

import (
	"time"

	"github.com/achilleasa/rtview/asset/compiler/bvh"
	"github.com/achilleasa/rtview/asset/compiler/input"
	"github.com/achilleasa/rtview/asset/scene"
	"github.com/achilleasa/rtview/asset/texture"
	"github.com/achilleasa/rtview/log"
)

type sceneCompiler struct {
	logger    log.Logger
	hierarchy *bvh.Hierarchy

	optimizedScene *scene.Scene
}

// Compile a scene description into a GPU-friendly optimized scene format.
func Compile(parsedScene *input.Scene) (*scene.Scene, error) {
	prims, err := parsedScene.Primitives()
	if err != nil {
		return nil, err
	}

	sc, err := CompilePrimitives(prims)
	if err != nil {
		return nil, err
	}

	sc.Name = parsedScene.Name
	cam := parsedScene.Camera
	if cam == nil {
		cam = input.DefaultCamera()
	}
	sc.Camera = &scene.Camera{
		FOV:      cam.FOV,
		Position: cam.Position,
		LookAt:   cam.LookAt,
		Up:       cam.Up,
	}
	return sc, nil
}

// Partition a list of primitives and pack the resulting BVH into an
// optimized scene. The scene camera is left unset.
func CompilePrimitives(prims []scene.Primitive) (*scene.Scene, error) {
	compiler := &sceneCompiler{
		logger:         log.New("scene compiler"),
		hierarchy:      bvh.NewHierarchy(),
		optimizedScene: &scene.Scene{},
	}

	start := time.Now()
	compiler.logger.Noticef("compiling scene")

	err := compiler.partitionGeometry(prims)
	if err != nil {
		return nil, err
	}

	compiler.packTables()

	compiler.logger.Noticef("compiled scene in %d ms", time.Since(start).Nanoseconds()/1e6)
	return compiler.optimizedScene, nil
}

// Generate a BVH for the scene primitives.
func (sc *sceneCompiler) partitionGeometry(prims []scene.Primitive) error {
	start := time.Now()
	sc.logger.Infof("building scene BVH tree (%d primitives)", len(prims))

	err := sc.hierarchy.Rebuild(prims)
	if err != nil {
		return err
	}

	stats := sc.hierarchy.Stats()
	sc.logger.Infof("BVH tree has %d nodes, %d leafs and a max depth of %d", stats.Nodes, stats.Leafs, stats.MaxDepth)

	emissives := 0
	for index := range prims {
		if prims[index].Material == scene.DiffuseLight {
			emissives++
		}
	}
	if emissives == 0 {
		sc.logger.Warning("the scene contains no emissive primitives; output will appear black!")
	}

	sc.logger.Noticef("partitioned geometry in %d ms", time.Since(start).Nanoseconds()/1e6)
	return nil
}

// Serialize the BVH and the ordered primitives into float tables and
// calculate the texture layout for each one.
func (sc *sceneCompiler) packTables() {
	nodes, prims := sc.hierarchy.Snapshot()

	out := sc.optimizedScene
	out.NodeData = PackNodes(nodes)
	out.VertexData = PackPrimitives(prims)
	out.NodeCount = int32(len(nodes))
	out.PrimitiveCount = int32(len(prims))
	out.NodeTexture = texture.NewLayout(texture.Rgb32F, len(out.NodeData))
	out.VertexTexture = texture.NewLayout(texture.Rgb32F, len(out.VertexData))

	sc.logger.Infof(
		"packed %d nodes into a %dx%d texture and %d primitives into a %dx%d texture",
		out.NodeCount, out.NodeTexture.Side, out.NodeTexture.Side,
		out.PrimitiveCount, out.VertexTexture.Side, out.VertexTexture.Side,
	)
}
