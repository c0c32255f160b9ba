package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/chart"
)

var (
	// ErrEmptyPath is returned when FillPath is given a path with no vertices.
	ErrEmptyPath = errors.New("raster: empty path")

	// ErrNilBrush is returned when FillPath is given no brush.
	ErrNilBrush = errors.New("raster: nil brush")
)

// Canvas is a CPU canvas that fills chart paths into an *image.RGBA.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

var _ chart.Canvas = (*Canvas)(nil)

// New creates a transparent canvas with the given dimensions.
// Non-positive dimensions are clamped to 1.
func New(width, height int) *Canvas {
	width = max(width, 1)
	height = max(height, 1)
	return NewFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewFromImage creates a canvas that draws directly into img.
// Path coordinates are in img's coordinate space.
func NewFromImage(img *image.RGBA) *Canvas {
	b := img.Bounds()
	return &Canvas{
		img: img,
		z:   vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Width returns the canvas width.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Clear fills the entire canvas with the given color.
func (c *Canvas) Clear(col chart.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// FillPath implements chart.Canvas. Subpaths are closed implicitly.
// alpha is clamped to [0, 1] and multiplies the brush alpha.
func (c *Canvas) FillPath(p *chart.Path, b chart.Brush, alpha float64) error {
	if p == nil || p.IsEmpty() {
		return ErrEmptyPath
	}
	if b == nil {
		return ErrNilBrush
	}
	alpha = min(max(alpha, 0), 1)
	if alpha == 0 {
		chart.Logger().Debug("raster: skipping transparent fill", "vertices", p.Len())
		return nil
	}

	bounds := c.img.Bounds()
	c.z.Reset(bounds.Dx(), bounds.Dy())
	c.z.DrawOp = draw.Over

	origin := bounds.Min
	open := false
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case chart.MoveTo:
			if open {
				c.z.ClosePath()
			}
			c.z.MoveTo(float32(e.Point.X-float64(origin.X)), float32(e.Point.Y-float64(origin.Y)))
			open = true
		case chart.LineTo:
			c.z.LineTo(float32(e.Point.X-float64(origin.X)), float32(e.Point.Y-float64(origin.Y)))
		case chart.Close:
			c.z.ClosePath()
			open = false
		default:
			return fmt.Errorf("raster: unsupported path element %T", elem)
		}
	}
	if open {
		c.z.ClosePath()
	}

	c.z.Draw(c.img, bounds, source(b, alpha, bounds), origin)
	return nil
}

// Image returns the underlying image.
// This is a direct reference, not a copy.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("raster: close %s: %w", path, cerr)
		}
	}()
	return c.WritePNG(f)
}

// source returns the image sampled for a fill. Solid brushes use a uniform
// image so the rasterizer can take its fast path.
func source(b chart.Brush, alpha float64, bounds image.Rectangle) image.Image {
	if s, ok := b.(chart.SolidBrush); ok {
		col := s.Color
		return image.NewUniform(col.WithAlpha(col.A * alpha).Color())
	}
	return &brushImage{brush: b, alpha: alpha, bounds: bounds}
}

// brushImage adapts a chart.Brush to image.Image.
type brushImage struct {
	brush  chart.Brush
	alpha  float64
	bounds image.Rectangle
}

func (b *brushImage) ColorModel() color.Model { return color.NRGBAModel }

func (b *brushImage) Bounds() image.Rectangle { return b.bounds }

// At samples the brush at the pixel centre.
func (b *brushImage) At(x, y int) color.Color {
	col := b.brush.ColorAt(float64(x)+0.5, float64(y)+0.5)
	return col.WithAlpha(col.A * b.alpha).Color()
}
