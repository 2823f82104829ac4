package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/achilleasa/rtview/asset/compiler"
	"github.com/achilleasa/rtview/asset/compiler/bvh"
	"github.com/achilleasa/rtview/asset/scene"
	"github.com/achilleasa/rtview/asset/scene/reader"
	"github.com/achilleasa/rtview/asset/scene/writer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Compile scene descriptions to the binary format.
func CompileScene(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return errors.New("missing scene description file")
	}

	outDir := ctx.String("out-dir")
	for idx := 0; idx < ctx.NArg(); idx++ {
		sceneFile := ctx.Args().Get(idx)
		if strings.ToLower(filepath.Ext(sceneFile)) != ".json" {
			logger.Warningf("skipping unsupported file %s", sceneFile)
			continue
		}

		logger.Noticef("parsing and compiling scene: %s", sceneFile)
		sc, err := reader.ReadScene(sceneFile)
		if err != nil {
			return err
		}

		// Display compiled scene info
		logger.Noticef("scene information:\n%s", sc.Stats())

		err = writer.WriteScene(sc, compiledName(sceneFile, outDir))
		if err != nil {
			return err
		}
	}

	return nil
}

// Display compiled scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file")
	}

	sc, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	tree, err := hierarchyStats(sc)
	if err != nil {
		return err
	}

	logger.Noticef("scene information:\n%s", sc.Stats())
	logger.Noticef("BVH information:\n%s", tree)
	return nil
}

// Get the output path for a compiled scene description. If outDir is empty
// the compiled scene is placed next to the description.
func compiledName(sceneFile, outDir string) string {
	base := strings.TrimSuffix(sceneFile, filepath.Ext(sceneFile)) + ".zip"
	if outDir == "" {
		return base
	}
	return filepath.Join(outDir, filepath.Base(base))
}

// Decode and verify the packed BVH of a compiled scene and render its
// statistics as a table.
func hierarchyStats(sc *scene.Scene) (string, error) {
	nodes, err := compiler.UnpackNodes(sc.NodeData)
	if err != nil {
		return "", err
	}

	stats, err := bvh.Analyze(nodes, int(sc.PrimitiveCount))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Nodes", fmt.Sprint(stats.Nodes)})
	table.Append([]string{"Leafs", fmt.Sprint(stats.Leafs)})
	table.Append([]string{"Primitives", fmt.Sprint(stats.Primitives)})
	table.Append([]string{"Max depth", fmt.Sprint(stats.MaxDepth)})
	table.Render()

	return buf.String(), nil
}
