// Package pkg provides the core libraries of vegakort.
//
// # Overview
//
// Vegakort builds a road-network graph for Iceland from IS 50V vector data
// and augments it with live observations from Icelandic road services. The
// pkg directory is organized into five areas:
//
//  1. [roadgraph] - Domain logic (graph construction, filters, spatial query,
//     traffic attachment, coverage subgraph)
//  2. [io] - Graph persistence (JSON round-trip)
//  3. [integrations] - External API clients (WFS, weather, cameras, counters)
//  4. [render] - Visualization (DOT/SVG topology, planar map PNG)
//  5. [pipeline] - Orchestration (fetch → build → attach → save)
//
// # Architecture
//
// The typical data flow through vegakort:
//
//	IS 50V WFS (gis.lmi.is)
//	         ↓
//	    [integrations/wfs] (fetch GeoJSON road features)
//	         ↓
//	    [roadgraph] (explode geometries, build graph)
//	         ↓
//	    [integrations/vegagerdin] (traffic counts → nearest edges)
//	         ↓
//	    [io] / [render] (persist or visualize)
//
// Supporting packages [cache] and [httputil] provide response caching and
// retry behavior for the integration clients.
package pkg
