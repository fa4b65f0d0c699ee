// Package vedur looks up weather observations from the Icelandic Met
// Office feed by nearest station to a target coordinate.
//
// Observations carry the station name, wind speed (F, m/s), and air
// temperature (T, °C) - the fields the traffic-visibility demo surfaces
// next to camera imagery.
package vedur
