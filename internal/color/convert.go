// Package color provides the sRGB transfer functions used for gradient
// interpolation in linear light.
package color

import "math"

// Linear is a colour whose RGB components are linear-light values in [0,1].
// Alpha is always linear.
type Linear struct {
	R, G, B, A float64
}

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// FromSRGB converts sRGB-encoded components to linear light.
func FromSRGB(r, g, b, a float64) Linear {
	return Linear{
		R: SRGBToLinear(r),
		G: SRGBToLinear(g),
		B: SRGBToLinear(b),
		A: a,
	}
}

// SRGB returns the sRGB-encoded components of c.
func (c Linear) SRGB() (r, g, b, a float64) {
	return LinearToSRGB(c.R), LinearToSRGB(c.G), LinearToSRGB(c.B), c.A
}

// Mix interpolates between two linear colours. t=0 returns c, t=1 returns d.
func (c Linear) Mix(d Linear, t float64) Linear {
	return Linear{
		R: c.R + t*(d.R-c.R),
		G: c.G + t*(d.G-c.G),
		B: c.B + t*(d.B-c.B),
		A: c.A + t*(d.A-c.A),
	}
}
