// Package vegagerdin talks to the Icelandic Road Administration data
// service (gagnaveita.vegagerdin.is).
//
// Two feeds are consumed:
//
//   - The traffic-camera registry (vefmyndavelar), listing an image URL and
//     position per camera; the client picks the camera nearest to a target
//     point and can download its current frame.
//   - The traffic-counter feed (umferd), producing the nine-field volume
//     observations that [roadgraph.Graph.AssignTraffic] matches onto road
//     edges.
package vegagerdin
