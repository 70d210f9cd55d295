package export

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/algostep/graphdata"
)

// Sentinel errors for PNG export.
var (
	// ErrEmptyGraph is returned when the graph has no nodes to draw.
	ErrEmptyGraph = errors.New("export: graph has no nodes")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("export: invalid option supplied")
)

// Option configures PNG rendering via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation by
// GraphPNG.
type Option func(*PNGOptions)

// PNGOptions holds rendering parameters.
type PNGOptions struct {
	// Scale multiplies snapshot coordinates into pixels.
	Scale float64

	// Padding is the pixel margin around the drawn extent.
	Padding float64

	// NodeRadius is the node circle radius in pixels.
	NodeRadius float64

	// internal error recorded during option parsing
	err error
}

// DefaultPNGOptions returns PNGOptions with sane defaults: 1:1 scale,
// a 40px margin and 16px node circles.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		Scale:      1,
		Padding:    40,
		NodeRadius: 16,
		err:        nil,
	}
}

// WithScale multiplies snapshot coordinates into pixels.
//
//	s > 0:  use s
//	s <= 0: invalid option → ErrOptionViolation
func WithScale(s float64) Option {
	return func(o *PNGOptions) {
		if s <= 0 {
			o.err = fmt.Errorf("%w: scale must be positive (%v)", ErrOptionViolation, s)
			return
		}
		o.Scale = s
	}
}

// WithPadding sets the pixel margin; negative values are invalid.
func WithPadding(p float64) Option {
	return func(o *PNGOptions) {
		if p < 0 {
			o.err = fmt.Errorf("%w: padding cannot be negative (%v)", ErrOptionViolation, p)
			return
		}
		o.Padding = p
	}
}

var nodeFills = map[graphdata.NodeState]color.Color{
	graphdata.NodeDefault:  color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
	graphdata.NodeCurrent:  color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff},
	graphdata.NodeFrontier: color.RGBA{R: 0x4f, G: 0xa3, B: 0xe3, A: 0xff},
	graphdata.NodeVisited:  color.RGBA{R: 0x57, G: 0xc7, B: 0x85, A: 0xff},
	graphdata.NodeInMST:    color.RGBA{R: 0x57, G: 0xc7, B: 0x85, A: 0xff},
}

var edgeStrokes = map[graphdata.EdgeState]color.Color{
	graphdata.EdgeDefault:     color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff},
	graphdata.EdgeConsidering: color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff},
	graphdata.EdgeInMST:       color.RGBA{R: 0x57, G: 0xc7, B: 0x85, A: 0xff},
	graphdata.EdgeRejected:    color.RGBA{R: 0xe3, G: 0x4f, B: 0x4f, A: 0xff},
	graphdata.EdgeRelaxed:     color.RGBA{R: 0x9b, G: 0x59, B: 0xb6, A: 0xff},
}

// GraphPNG draws the graph snapshot and saves it at path. Edges are
// painted first so node circles sit on top; accepted/rejected/relaxed
// edges get a heavier stroke.
func GraphPNG(g graphdata.Graph, path string, opts ...Option) error {
	cfg := DefaultPNGOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg.err
	}
	if len(g.Nodes) == 0 {
		return ErrEmptyGraph
	}

	minX, minY, maxX, maxY := extent(g)
	w := int((maxX-minX)*cfg.Scale + 2*cfg.Padding)
	h := int((maxY-minY)*cfg.Scale + 2*cfg.Padding)

	px := func(x float64) float64 { return (x-minX)*cfg.Scale + cfg.Padding }
	py := func(y float64) float64 { return (y-minY)*cfg.Scale + cfg.Padding }

	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	for _, e := range g.Edges {
		si := g.NodeIndex(e.Source)
		ti := g.NodeIndex(e.Target)
		if si < 0 || ti < 0 {
			continue
		}
		s, t := g.Nodes[si], g.Nodes[ti]

		stroke, ok := edgeStrokes[e.State]
		if !ok {
			stroke = edgeStrokes[graphdata.EdgeDefault]
		}
		dc.SetColor(stroke)
		dc.SetLineWidth(1.5)
		if e.State != graphdata.EdgeDefault {
			dc.SetLineWidth(3)
		}
		dc.DrawLine(px(s.X), py(s.Y), px(t.X), py(t.Y))
		dc.Stroke()

		// Weight label at the midpoint, nudged off the line.
		dc.SetColor(color.Black)
		dc.DrawStringAnchored(fmt.Sprintf("%d", e.Weight),
			(px(s.X)+px(t.X))/2, (py(s.Y)+py(t.Y))/2-6, 0.5, 0.5)
	}

	for _, n := range g.Nodes {
		fill, ok := nodeFills[n.State]
		if !ok {
			fill = nodeFills[graphdata.NodeDefault]
		}
		dc.SetColor(fill)
		dc.DrawCircle(px(n.X), py(n.Y), cfg.NodeRadius)
		dc.Fill()

		dc.SetColor(color.Black)
		dc.SetLineWidth(1)
		dc.DrawCircle(px(n.X), py(n.Y), cfg.NodeRadius)
		dc.Stroke()
		dc.DrawStringAnchored(n.ID, px(n.X), py(n.Y), 0.5, 0.5)
	}

	return dc.SavePNG(path)
}

// extent computes the bounding box of all node centers.
func extent(g graphdata.Graph) (minX, minY, maxX, maxY float64) {
	minX, minY = g.Nodes[0].X, g.Nodes[0].Y
	maxX, maxY = minX, minY
	for _, n := range g.Nodes[1:] {
		if n.X < minX {
			minX = n.X
		}
		if n.Y < minY {
			minY = n.Y
		}
		if n.X > maxX {
			maxX = n.X
		}
		if n.Y > maxY {
			maxY = n.Y
		}
	}

	return minX, minY, maxX, maxY
}
