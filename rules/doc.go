// Package rules translates a decoded puzzle.Puzzle into boolean and integer
// constraints posted to a csp.Solver (spec section 4.3 - the rule compiler,
// component C). Compile runs a two-pass walk: the first pass collects
// globals (the off-by-X relaxation and aggregated area-number/region-area
// state per cell), the second posts tile pre-encoding, connections, and
// every rule kind's constraints.
//
// The package is laid out one file per rule family, mirroring
// builder's impl_*.go-per-topology layout: impl_tiles.go (always-posted
// tile/connection encoding), impl_connectall.go, impl_forbiddenpattern.go,
// impl_minesweeper.go, impl_dart.go, impl_viewpoint.go, impl_area.go
// (AreaNumber + RegionArea via add_graph_division), impl_letter.go,
// impl_lotus_galaxy.go, impl_sameshape.go, impl_cellcount.go. common.go
// holds helpers shared across families (ray casting, neighborhoods, the
// off-by-X count relaxation).
package rules
