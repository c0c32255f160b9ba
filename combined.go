package chart

import (
	"errors"
	"fmt"
	"slices"
)

// Kind tags the chart type a layer draws.
type Kind uint8

const (
	// KindBar draws bar series.
	KindBar Kind = iota
	// KindBubble draws bubble series.
	KindBubble
	// KindLine draws line series and their area fills.
	KindLine
	// KindCandle draws candlestick series.
	KindCandle
	// KindScatter draws scatter series.
	KindScatter
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindBar:
		return "bar"
	case KindBubble:
		return "bubble"
	case KindLine:
		return "line"
	case KindCandle:
		return "candle"
	case KindScatter:
		return "scatter"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// DefaultDrawOrder is the back-to-front order used by a new Combined view.
var DefaultDrawOrder = []Kind{KindBar, KindBubble, KindLine, KindCandle, KindScatter}

// ErrNilLayer is returned when registering a nil layer.
var ErrNilLayer = errors.New("chart: layer must not be nil")

// Layer draws one chart type into a canvas.
type Layer interface {
	Kind() Kind
	Draw(c Canvas, vp Viewport, phaseY float64) error
}

// Combined composes layers of several chart types into one view.
// Layers are dispatched by their Kind tag in draw order; kinds left out of
// the draw order are not drawn.
type Combined struct {
	order  []Kind
	layers map[Kind][]Layer
}

// NewCombined creates an empty view using DefaultDrawOrder.
func NewCombined() *Combined {
	return &Combined{
		order:  slices.Clone(DefaultDrawOrder),
		layers: make(map[Kind][]Layer),
	}
}

// Register adds a layer. Layers of the same kind draw in registration order.
func (c *Combined) Register(l Layer) error {
	if l == nil {
		return ErrNilLayer
	}
	c.layers[l.Kind()] = append(c.layers[l.Kind()], l)
	return nil
}

// SetDrawOrder replaces the draw order. Duplicate kinds keep their first
// position.
func (c *Combined) SetDrawOrder(order ...Kind) {
	c.order = c.order[:0]
	for _, k := range order {
		if !slices.Contains(c.order, k) {
			c.order = append(c.order, k)
		}
	}
}

// DrawOrder returns a copy of the current draw order.
func (c *Combined) DrawOrder() []Kind {
	return slices.Clone(c.order)
}

// Layers returns the registered layers in the order they are drawn.
func (c *Combined) Layers() []Layer {
	var out []Layer
	for _, k := range c.order {
		out = append(out, c.layers[k]...)
	}
	return out
}

// Draw draws every layer in draw order. A failing layer does not stop the
// others; all failures are returned joined.
func (c *Combined) Draw(canvas Canvas, vp Viewport, phaseY float64) error {
	var errs []error
	for _, l := range c.Layers() {
		if err := l.Draw(canvas, vp, phaseY); err != nil {
			errs = append(errs, fmt.Errorf("chart: %s layer: %w", l.Kind(), err))
		}
	}
	return errors.Join(errs...)
}

// LineLayer draws the fills of a group of line series.
type LineLayer struct {
	Renderer *LineRenderer
	Series   []*Series
}

// Kind implements Layer.
func (LineLayer) Kind() Kind { return KindLine }

// Draw implements Layer. A nil Renderer uses NewLineRenderer defaults.
func (l LineLayer) Draw(c Canvas, vp Viewport, phaseY float64) error {
	r := l.Renderer
	if r == nil {
		r = NewLineRenderer()
	}
	return r.DrawFills(c, l.Series, vp, phaseY)
}
