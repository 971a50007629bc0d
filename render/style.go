package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Style controls what is drawn and how. Colours are either "#rgb", "#rrggbb"
// or an SVG colour name.
type Style struct {
	Background string    `yaml:"background"`
	Scale      float64   `yaml:"scale"`
	Seeds      SeedStyle `yaml:"seeds"`
	Delaunay   LineStyle `yaml:"delaunay"`
	Voronoi    LineStyle `yaml:"voronoi"`
	Step       StepStyle `yaml:"step"`
}

type SeedStyle struct {
	Show   bool    `yaml:"show"`
	Radius float64 `yaml:"radius"`
	Colour string  `yaml:"colour"`
}

type LineStyle struct {
	Show   bool    `yaml:"show"`
	Colour string  `yaml:"colour"`
	Width  float64 `yaml:"width"`
}

// Colours for the construction frames drawn in manual mode.
type StepStyle struct {
	Width             float64 `yaml:"width"`
	CavityFill        string  `yaml:"cavityFill"`
	CavityStroke      string  `yaml:"cavityStroke"`
	NewTriangleFill   string  `yaml:"newTriangleFill"`
	NewTriangleStroke string  `yaml:"newTriangleStroke"`
	CavityEdge        string  `yaml:"cavityEdge"`
}

func DefaultStyle() Style {
	return Style{
		Background: "#ffffff",
		Scale:      1,
		Seeds:      SeedStyle{Show: true, Radius: 3, Colour: "#db4b23"},
		Delaunay:   LineStyle{Show: false, Colour: "#cccccc", Width: 1},
		Voronoi:    LineStyle{Show: true, Colour: "#0b8770", Width: 1},
		Step: StepStyle{
			Width:             3,
			CavityFill:        "#ffcccc",
			CavityStroke:      "#00ff00",
			NewTriangleFill:   "#ccffcc",
			NewTriangleStroke: "#cccc00",
			CavityEdge:        "#0000ff",
		},
	}
}

// Load a style from YAML. Anything the document leaves out keeps its default.
func LoadStyle(in io.Reader) (Style, error) {
	style := DefaultStyle()
	decoder := yaml.NewDecoder(in)
	decoder.KnownFields(true)
	if err := decoder.Decode(&style); err != nil && err != io.EOF {
		return Style{}, errors.Wrap(err, "decoding style")
	}
	if _, err := style.palette(); err != nil {
		return Style{}, err
	}
	return style, nil
}

// The style's colours, parsed
type palette struct {
	background        color.Color
	seed              color.Color
	delaunay          color.Color
	voronoi           color.Color
	cavityFill        color.Color
	cavityStroke      color.Color
	newTriangleFill   color.Color
	newTriangleStroke color.Color
	cavityEdge        color.Color
}

func (s Style) palette() (p palette, err error) {
	if !(s.Scale > 0) {
		return p, errors.Errorf("scale must be greater than 0, got %v", s.Scale)
	}
	colours := []struct {
		field string
		value string
		dest  *color.Color
	}{
		{"background", s.Background, &p.background},
		{"seeds.colour", s.Seeds.Colour, &p.seed},
		{"delaunay.colour", s.Delaunay.Colour, &p.delaunay},
		{"voronoi.colour", s.Voronoi.Colour, &p.voronoi},
		{"step.cavityFill", s.Step.CavityFill, &p.cavityFill},
		{"step.cavityStroke", s.Step.CavityStroke, &p.cavityStroke},
		{"step.newTriangleFill", s.Step.NewTriangleFill, &p.newTriangleFill},
		{"step.newTriangleStroke", s.Step.NewTriangleStroke, &p.newTriangleStroke},
		{"step.cavityEdge", s.Step.CavityEdge, &p.cavityEdge},
	}
	for _, c := range colours {
		*c.dest, err = ParseColour(c.value)
		if err != nil {
			return palette{}, errors.Wrap(err, c.field)
		}
	}
	return p, nil
}

// Parse "#rgb", "#rrggbb" or an SVG colour name.
func ParseColour(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[s]; ok {
			return c, nil
		}
		return nil, errors.Errorf("unknown colour %q", s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, errors.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, errors.Errorf("invalid colour %q", s)
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
}

// CSS form of a colour, for SVG attributes
func hexColour(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
