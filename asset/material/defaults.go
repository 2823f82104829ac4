package material

var (
	DefaultIOR = KnownIORs["Glass"]
)

// Refractive indices for common materials.
var KnownIORs = map[string]float32{
	"Vacuum":   1.0,
	"Air":      1.00029,
	"Ice":      1.31,
	"Water":    1.333,
	"Acrylic":  1.49,
	"Glass":    1.5,
	"Crown":    1.52,
	"Flint":    1.62,
	"Sapphire": 1.77,
	"Diamond":  2.42,
}
