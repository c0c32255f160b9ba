package chart

// Brush represents what a fill is painted with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single solid color
//   - *LinearGradientBrush: a color ramp along a line in screen space
//
// Example:
//
//	fill := chart.FillStyle{Brush: chart.SolidHex("#4285f4"), Alpha: 0.35}
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ColorAt returns the color at the given screen coordinates.
	// For solid brushes, this returns the same color regardless of position.
	ColorAt(x, y float64) RGBA
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidHex creates a SolidBrush from a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#' prefix.
func SolidHex(hex string) SolidBrush {
	return SolidBrush{Color: Hex(hex)}
}

// WithAlpha returns a new SolidBrush with the specified alpha value.
func (b SolidBrush) WithAlpha(alpha float64) SolidBrush {
	return SolidBrush{Color: b.Color.WithAlpha(alpha)}
}
