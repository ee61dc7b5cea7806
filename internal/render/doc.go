// Package render draws [figure.Figure] values.
//
// Two backends are provided:
//
//   - [File]: gonum/plot figures written as png, svg, pdf, eps, jpg or tif
//   - [Terminal]: asciigraph time series and braille phase portraits, handed
//     to a [Presenter] that shows them one at a time
//
// Every failure is returned as a [*RenderError] matching [ErrRender].
package render
