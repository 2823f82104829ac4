package texture

type Format uint32

const (
	Luminance32F Format = iota
	Rgb32F
	Rgba32F
)

// Number of float channels stored in each texel.
func (f Format) Channels() int {
	switch f {
	case Luminance32F:
		return 1
	case Rgba32F:
		return 4
	}
	return 3
}

func (f Format) String() string {
	switch f {
	case Luminance32F:
		return "R32F"
	case Rgba32F:
		return "RGBA32F"
	}
	return "RGB32F"
}
