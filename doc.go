// Package figures draws a small catalog of cartoon figures (a lion, two
// dogs and a trumpeter) as SVG shapes placed at a caller supplied origin,
// and animates two of them trading places.
//
// Every shape of a figure is a constant offset from its origin. Figures
// are drawn into groups handed out by a Surface; Document is the
// retained in-memory surface, which can Encode itself as SVG (with the
// swap as a SMIL animation) and Decode such files back.
package figures
