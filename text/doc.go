// Package text supplies fonts and label measurers for nodify.
//
// Node minimum sizes are derived from the rendered size of their labels,
// so the measurer plugged into a Scene decides how tight nodes may be.
// Two implementations are provided:
//
//   - FaceMeasurer (in package nodify), built here from a FontSource at a
//     given size, measures with golang.org/x/image glyph advances.
//   - ShapingMeasurer runs HarfBuzz shaping through go-text/typesetting,
//     so kerning and ligatures are reflected in the measured width.
//
// # Example usage
//
//	src := text.Regular()
//	m, err := text.NewShapingMeasurer(src, 13)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s := nodify.NewScene(nodify.WithMeasurer(m))
//
// Labels are normalized to NFC before measuring so canonically equivalent
// strings always yield the same node size.
package text
