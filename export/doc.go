// Package export renders graph snapshots to PNG images.
//
// Graph snapshots carry x/y layout coordinates precisely so any
// renderer can draw them without a layout pass; GraphPNG maps those
// coordinates onto a raster canvas, painting edges first so nodes sit
// on top, and colors both by render state. The built-in bitmap font is
// used for labels, so no font files need shipping.
package export
