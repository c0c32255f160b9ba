// Package raster provides a software chart.Canvas backed by an *image.RGBA.
//
// Fill paths are scan-converted with golang.org/x/image/vector using the
// non-zero winding rule and anti-aliased coverage, then composited over the
// image with the fill brush sampled at pixel centres.
//
// Example:
//
//	c := raster.New(640, 480)
//	c.Clear(chart.White)
//	r := chart.NewLineRenderer()
//	if err := r.DrawFills(c, series, vp, 1); err != nil {
//	    log.Fatal(err)
//	}
//	if err := c.SavePNG("fill.png"); err != nil {
//	    log.Fatal(err)
//	}
package raster
