package material

import (
	"fmt"
	"strings"

	"github.com/achilleasa/rtview/asset/scene"
)

// Lookup a material kind by its name. Besides the canonical shader names,
// the bxdf names used by material expressions are accepted as aliases.
func KindFromName(name string) (scene.MaterialKind, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return scene.NoMaterial, nil
	case "diffuse", "lambert":
		return scene.Diffuse, nil
	case "metal", "conductor", "roughconductor":
		return scene.Metal, nil
	case "dielectric", "glass", "roughdielectric":
		return scene.Dielectric, nil
	case "light", "emissive", "diffuse_light":
		return scene.DiffuseLight, nil
	}

	return scene.NoMaterial, fmt.Errorf("material: unknown material %q", name)
}

// Resolve the shader constant for a material. Dielectrics use the refractive
// index which can be given either as a number or as a known IOR name; metals
// use a fuzz factor clamped to [0, 1].
func Constant(kind scene.MaterialKind, value float32, iorName string) (float32, error) {
	switch kind {
	case scene.Dielectric:
		if iorName != "" {
			ior, ok := KnownIORs[iorName]
			if !ok {
				return 0, fmt.Errorf("material: unknown IOR %q", iorName)
			}
			return ior, nil
		}
		if value == 0 {
			return DefaultIOR, nil
		}
	case scene.Metal:
		if value < 0 {
			return 0, nil
		} else if value > 1 {
			return 1, nil
		}
	}

	return value, nil
}
