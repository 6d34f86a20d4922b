// Package core's Graph exists solely to validate external vertex/edge
// names and hold per-vertex weights before Compile hands a dense
// wgraph.Graph to the search core. It is not a general-purpose graph
// library; callers needing directed edges, multigraphs, or loops should
// look elsewhere in this module's history, not here.
package core
