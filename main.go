package main

import (
	"fmt"
	"os"

	"github.com/achilleasa/rtview/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "rtview"
	app.Usage = "compile ray tracing scenes into GPU-friendly BVH textures"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.BoolFlag{
			Name:  "q",
			Usage: "only log warnings and errors",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "compile",
			Usage: "compile a json scene description into a binary compressed format",
			Description: `
Parse a scene description, build a BVH tree to optimize ray intersection tests
and pack the tree and the scene primitives into float tables that can be
uploaded to the GPU as RGB32F textures.

The optimized scene data is written to a zip archive next to each input file
unless an output directory is specified.`,
			ArgsUsage: "scene_file1.json scene_file2.json ...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out-dir, o",
					Usage: "write compiled scenes to this directory",
				},
			},
			Action: cmd.CompileScene,
		},
		{
			Name:      "info",
			Usage:     "print statistics for a scene description or a compiled scene",
			ArgsUsage: "scene_file.{json,zip}",
			Action:    cmd.ShowSceneInfo,
		},
		{
			Name:  "generate",
			Usage: "generate a random sphere field scene description",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 100,
					Usage: "number of spheres",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output file; defaults to stdout",
				},
			},
			Action: cmd.GenerateScene,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}
