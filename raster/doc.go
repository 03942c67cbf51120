// Package raster draws nodify scenes into an *image.RGBA.
//
// Context implements nodify.DrawContext on the CPU. Paths are flattened to
// polylines and filled with golang.org/x/image/vector; strokes are expanded
// into segment quads plus cap and join polygons before filling. Labels are
// drawn with a golang.org/x/image font.Drawer using the Go Regular face,
// scaled with the current transform so text follows the camera zoom.
//
// Basic usage:
//
//	dc := raster.NewContext(1280, 720)
//	view.Render(dc)
//	if err := dc.EncodePNG(w); err != nil {
//	    return err
//	}
package raster
