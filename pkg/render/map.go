package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/solrun/vegakort/pkg/roadgraph"
)

// IcelandBounds is the country's bounding box in Web Mercator coordinates,
// used when a map render should show all of Iceland rather than zoom to the
// graph's extent.
var IcelandBounds = Bounds{
	MinX: -2800000,
	MinY: 9100000,
	MaxX: -1400000,
	MaxY: 10100000,
}

// Bounds is an axis-aligned box in the graph's planar coordinate system.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// MapOptions configures planar map rendering.
type MapOptions struct {
	Width  int // output width in pixels (default 1600)
	Height int // output height in pixels (default 1200)

	// ZoomToExtent fits the viewport to the graph's geometry instead of
	// the fixed [IcelandBounds].
	ZoomToExtent bool
}

// palette cycles through per-road-class stroke colors.
var palette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	color.RGBA{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	color.RGBA{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
	color.RGBA{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
}

// MapPNG draws every edge's polyline in its planar position, colored by
// road classification, and writes the result as a PNG to path. Colors are
// assigned per distinct classification in edge-iteration order.
func MapPNG(g *roadgraph.Graph, path string, opts MapOptions) error {
	if g.EdgeCount() == 0 {
		return fmt.Errorf("render map: %w", roadgraph.ErrNoEdges)
	}
	if opts.Width <= 0 {
		opts.Width = 1600
	}
	if opts.Height <= 0 {
		opts.Height = 1200
	}

	bounds := IcelandBounds
	if opts.ZoomToExtent {
		bounds = extent(g)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Uniform scale preserving aspect ratio, centered in the viewport.
	spanX := bounds.MaxX - bounds.MinX
	spanY := bounds.MaxY - bounds.MinY
	if spanX == 0 || spanY == 0 {
		return fmt.Errorf("render map: degenerate extent")
	}
	scale := math.Min(float64(opts.Width)/spanX, float64(opts.Height)/spanY)
	offX := (float64(opts.Width) - spanX*scale) / 2
	offY := (float64(opts.Height) - spanY*scale) / 2

	colors := make(map[string]color.Color)
	for _, e := range g.Edges() {
		c, ok := colors[e.RoadType]
		if !ok {
			c = palette[len(colors)%len(palette)]
			colors[e.RoadType] = c
		}
		dc.SetColor(c)
		dc.SetLineWidth(1.2)
		for i, p := range e.Geometry {
			// Flip Y: planar north-up to image top-down.
			x := offX + (p[0]-bounds.MinX)*scale
			y := float64(opts.Height) - offY - (p[1]-bounds.MinY)*scale
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.Stroke()
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// extent returns the bounding box of the graph's full geometry.
func extent(g *roadgraph.Graph) Bounds {
	b := Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, e := range g.Edges() {
		for _, p := range e.Geometry {
			b.MinX = math.Min(b.MinX, p[0])
			b.MinY = math.Min(b.MinY, p[1])
			b.MaxX = math.Max(b.MaxX, p[0])
			b.MaxY = math.Max(b.MaxY, p[1])
		}
	}
	return b
}
