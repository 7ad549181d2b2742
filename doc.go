// Package chart turns series of numbers into draw calls.
//
// It uses gonum.org/v1/plot for ticks and text alignment and leaves the
// actual pixels to package shade and a canvas.Canvas.
//
// # Scales
//
// An Axis has one of four scale kinds:
//   - Linear: values are placed as they are.
//   - Log: values are placed by their base 10 logarithm. Values <= 0
//     cannot be placed and are dropped.
//   - SymLog: like Log but symmetric around 0, sign(v)*log10(1+|v|).
//     Zero and negative values are fine.
//   - Time: Unix timestamps in seconds. Placement is linear; only the
//     ticks and their labels know about days and hours.
//
// All positioning happens in transformed space: a Mapper transforms a
// value, normalizes it against the transformed axis range and scales the
// result into its PlotArea. The y axis grows upwards, pixels grow
// downwards.
//
// # Drawing
//
// A Plot owns two axes, a list of Geoms and some annotations. Plot.Draw
// fits the axes to all data, lays out title, labels and legend, and hands
// each geom a Panel to draw on. Geoms live in package geom. They turn
// their data into shade primitives (segments, markers, rectangles,
// slices, triangles) which are filled on the canvas.
//
// # Interaction
//
// Pan and zoom state is kept in a View. It rewrites the axis limits of a
// Mapper in transformed space; the next Draw simply uses them.
package chart
