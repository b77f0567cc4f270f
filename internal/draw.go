package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/skeleton/geom"
	"github.com/osuushi/skeleton/shape"
)

// Padding around the drawing so spokes at the edge stay visible
const drawPadding = 40

// Render the spokes, waves and any live wavefronts into a new context, with
// the origin at the bottom left.
func (p *Processor) Render(scale float64) *gg.Context {
	bounds := geom.RectangleEmpty()
	for _, spoke := range p.Spokes {
		bounds = bounds.ExpandPoint(spoke.Start.XY()).ExpandPoint(spoke.End.XY())
	}
	for _, wave := range p.Waves {
		bounds = bounds.Expand(wave.Path.BoundingBox())
	}
	for _, w := range p.wavefronts {
		bounds = bounds.Expand(w.ToPath().BoundingBox())
	}
	if math.IsInf(bounds.Left(), 0) {
		bounds = geom.RectanglePoint(geom.Vector2{})
	}

	width := int(scale*(bounds.Right()-bounds.Left())) + drawPadding*2
	height := int(scale*(bounds.Bottom()-bounds.Top())) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-bounds.Left(), -bounds.Top())

	c.SetLineWidth(2)
	p.draw(c)
	return c
}

func (p *Processor) draw(c *gg.Context) {
	maxTime := 0.0
	for _, spoke := range p.Spokes {
		maxTime = math.Max(maxTime, spoke.End.Z)
	}

	for _, wave := range p.Waves {
		r, g, b := sideColor(wave.Side)
		c.SetRGB(r, g, b)
		drawPath(c, wave.Path)
		c.Stroke()
	}

	for _, w := range p.wavefronts {
		c.SetRGBA(0.7, 0.7, 1, 0.5)
		drawPath(c, w.ToPath())
		c.Stroke()
	}

	// Spokes shade from dim to bright as time passes
	for _, spoke := range p.Spokes {
		shade := 0.3
		if maxTime > 0 {
			shade += 0.7 * spoke.End.Z / maxTime
		}
		c.SetRGB(shade, shade*0.4, shade*0.8)
		c.MoveTo(spoke.Start.X, spoke.Start.Y)
		c.LineTo(spoke.End.X, spoke.End.Y)
		c.Stroke()
	}
}

func drawPath(c *gg.Context, path *shape.Path) {
	for i, point := range path.Points() {
		if i == 0 {
			c.MoveTo(point.X, point.Y)
		} else {
			c.LineTo(point.X, point.Y)
		}
	}
	if path.IsClosed() {
		c.ClosePath()
	}
}

func sideColor(side EdgeSide) (r, g, b float64) {
	switch side {
	case InnerEdge:
		return 0, 1, 0.3
	case OuterEdge:
		return 0, 0.8, 1
	case StartCapEdge, EndCapEdge:
		return 1, 1, 0
	}
	return 1, 0, 0
}

func (p *Processor) SavePNG(filename string, scale float64) error {
	return p.Render(scale).SavePNG(filename)
}

// Helper to draw and print the processor state in the terminal (iTerm only)
// for debugging.
func (p *Processor) dbgDraw(scale float64) {
	const filename = "/tmp/skeleton.png"
	if err := p.SavePNG(filename, scale); err != nil {
		Logger().Warn("could not save debug drawing", "error", err)
		return
	}
	imgcat.CatFile(filename, os.Stdout)
}
