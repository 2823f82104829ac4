package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/achilleasa/rtview/asset/compiler/input"
	"github.com/achilleasa/rtview/types"
	"github.com/urfave/cli"
)

// Generate a random sphere field scene description.
func GenerateScene(ctx *cli.Context) error {
	setupLogging(ctx)

	count := ctx.Int("count")
	if count <= 0 {
		return errors.New("sphere count must be positive")
	}

	desc := sphereField(count, ctx.Int64("seed"))
	data, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if out == "" || out == "-" {
		_, err = fmt.Fprintln(ctx.App.Writer, string(data))
		return err
	}

	logger.Noticef("writing %d objects to %s", len(desc.Objects), out)
	return os.WriteFile(out, append(data, '\n'), 0644)
}

var fieldMaterials = []string{"diffuse", "diffuse", "metal", "dielectric"}

// Build a scene with count small spheres scattered on a large ground
// sphere, lit by an overhead area light.
func sphereField(count int, seed int64) *input.Scene {
	rng := rand.New(rand.NewSource(seed))

	desc := input.NewScene()
	desc.Name = fmt.Sprintf("sphere-field-%d", count)
	desc.Camera = &input.Camera{
		FOV:      40,
		Position: types.Vec3{13, 2, 3},
		LookAt:   types.Vec3{0, 0, 0},
		Up:       types.Vec3{0, 1, 0},
	}

	desc.Objects = append(desc.Objects,
		&input.Object{
			Name:     "ground",
			Type:     "sphere",
			Center:   types.Vec3{0, -1000, 0},
			Radius:   1000,
			Albedo:   types.Vec3{0.5, 0.5, 0.5},
			Material: "diffuse",
		},
		&input.Object{
			Name:     "light",
			Type:     "rectangle",
			Vertices: []types.Vec3{{-5, 10, -5}, {5, 10, -5}, {5, 10, 5}, {-5, 10, 5}},
			Albedo:   types.Vec3{4, 4, 4},
			Material: "light",
		},
	)

	// Spread spheres over a square grid that grows with the count
	extent := float32(2*int(sqrtCeil(count)) + 2)
	for index := 0; index < count; index++ {
		radius := 0.1 + 0.2*rng.Float32()
		mat := fieldMaterials[rng.Intn(len(fieldMaterials))]
		obj := &input.Object{
			Type: "sphere",
			Center: types.Vec3{
				(rng.Float32() - 0.5) * extent,
				radius,
				(rng.Float32() - 0.5) * extent,
			},
			Radius:   radius,
			Albedo:   types.Vec3{rng.Float32(), rng.Float32(), rng.Float32()},
			Material: mat,
		}
		if mat == "metal" {
			obj.Constant = 0.5 * rng.Float32()
		}
		desc.Objects = append(desc.Objects, obj)
	}

	return desc
}

func sqrtCeil(n int) int {
	root := 0
	for root*root < n {
		root++
	}
	return root
}
