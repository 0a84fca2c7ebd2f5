// Package contour computes filled contour bands and contour lines for
// scalar samples on a rectilinear grid.
//
// The z-range of the samples is divided by equally spaced levels into
// bands.  Inside every grid cell the samples are interpolated along the
// cell edges, and each band contributes the polygons where the
// interpolated value lies between its two levels.  Together the band
// polygons of a cell cover the cell exactly once: a value equal to a level
// belongs to the band above it, except for the largest sample value which
// belongs to the topmost band.  Contour lines are the boundaries between
// neighbouring bands, as line segments per cell.
//
// Cells where the level pattern is ambiguous (saddles) are resolved using
// the mean of the four corner values, in the same way for bands and lines.
//
// The package does not draw anything.  See the plot package for rendering
// a Result to an image or a PDF file.
package contour
