package minimap

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	defaultRenderPixels = 260
	pngDPI              = 96
	headingArrowFrac    = 0.08
)

type renderConfig struct {
	pixels      int
	title       string
	background  color.Color
	routeColor  color.Color
	markerColor color.Color
}

// RenderOption is a functional option for RenderPNG.
type RenderOption func(*renderConfig)

// WithPixels sets the square output image size in pixels.
func WithPixels(px int) RenderOption {
	return func(c *renderConfig) {
		if px > 0 {
			c.pixels = px
		}
	}
}

// WithTitle sets a caption drawn above the map.
func WithTitle(title string) RenderOption {
	return func(c *renderConfig) {
		c.title = title
	}
}

// WithColors sets the background, route and marker colors.
func WithColors(background, route, marker color.Color) RenderOption {
	return func(c *renderConfig) {
		c.background = background
		c.routeColor = route
		c.markerColor = marker
	}
}

// RenderPNG draws the projected route, and the marker with its heading if one is
// given, as a PNG image. Canvas y grows downward, so it is flipped for the plot.
//
// Parameters:
//   - w: destination for the encoded PNG
//   - proj: the minimap mapping to draw
//   - marker: the traveller position, or nil to draw the route only
//   - options: functional options for size, title and colors
//
// Returns:
//   - error: error if plotting or encoding fails
func RenderPNG(w io.Writer, proj Projector, marker *Marker, options ...RenderOption) error {
	cfg := renderConfig{
		pixels:      defaultRenderPixels,
		background:  color.RGBA{R: 0x1b, G: 0x2a, B: 0x1f, A: 0xff},
		routeColor:  color.RGBA{R: 0xa5, G: 0xd6, B: 0xa7, A: 0xff},
		markerColor: color.RGBA{R: 0xff, G: 0xb7, B: 0x4d, A: 0xff},
	}
	for _, option := range options {
		option(&cfg)
	}

	size := proj.Size()
	flip := func(x, y float64) plotter.XY {
		return plotter.XY{X: x, Y: size - y}
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.BackgroundColor = cfg.background
	p.HideAxes()

	samples := proj.Samples()
	route := make(plotter.XYs, len(samples))
	for i, s := range samples {
		route[i] = flip(s.X(), s.Y())
	}
	line, err := plotter.NewLine(route)
	if err != nil {
		return fmt.Errorf("failed to build minimap route: %w", err)
	}
	line.Color = cfg.routeColor
	line.Width = vg.Points(2)
	p.Add(line)

	if marker != nil {
		dot, err := plotter.NewScatter(plotter.XYs{flip(marker.X, marker.Y)})
		if err != nil {
			return fmt.Errorf("failed to build minimap marker: %w", err)
		}
		dot.GlyphStyle.Shape = draw.CircleGlyph{}
		dot.GlyphStyle.Radius = vg.Points(4)
		dot.GlyphStyle.Color = cfg.markerColor
		p.Add(dot)

		// Heading is clockwise from canvas up.
		rad := marker.Heading * math.Pi / 180
		reach := size * headingArrowFrac
		tip := flip(marker.X+math.Sin(rad)*reach, marker.Y-math.Cos(rad)*reach)
		arrow, err := plotter.NewLine(plotter.XYs{flip(marker.X, marker.Y), tip})
		if err != nil {
			return fmt.Errorf("failed to build minimap heading: %w", err)
		}
		arrow.Color = cfg.markerColor
		arrow.Width = vg.Points(1.5)
		p.Add(arrow)
	}

	p.X.Min, p.X.Max = 0, size
	p.Y.Min, p.Y.Max = 0, size

	edge := vg.Length(cfg.pixels) * vg.Inch / pngDPI
	wt, err := p.WriterTo(edge, edge, "png")
	if err != nil {
		return fmt.Errorf("failed to create minimap png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write minimap png: %w", err)
	}
	return nil
}
