// Package render visualizes road graphs.
//
// Two views are provided:
//
//   - [ToDOT] / [RenderSVG] / [RenderPNG]: a node-link topology diagram via
//     Graphviz, useful for inspecting small derived graphs (coverage
//     subgraphs, cycle filters).
//   - [MapPNG]: a planar map render drawing every edge's polyline in its
//     true Web-Mercator position, colored by road classification - the
//     whole-country view.
package render
