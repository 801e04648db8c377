// Package pathfinder finds the fastest routes between stations of a walking
// or transit network, from the station model up to a batch command line tool.
//
// 🚀 What is pathfinder?
//
//	A small, dependency-light toolkit that brings together:
//		• Core primitives: stations, connections with travel times, an index-arena network
//		• Traversals: BFS reachability, exhaustive DFS over simple paths
//		• Shortest times: Dijkstra, used as a lower bound for pruning
//		• Ranking: a bounded top-k selector with a deterministic tie-break
//		• Orchestration: a query runner with a worker pool and a result cache
//
// ✨ Why pathfinder?
//
//   - Exact – every simple route is considered, pruning never changes the answer
//   - Deterministic – ties are broken by length, then by station sequence
//   - Observable – structured logs with per-query enumeration statistics
//   - Extensible – collectors and hooks (OnOffer, OnVisit) plug into the walkers
//
// Layout:
//
//	core/      - Station, Connection, Path, Network and Build
//	bfs/       - breadth-first traversal and reachability
//	dfs/       - simple-path enumeration with pluggable collectors
//	dijkstra/  - single-source shortest travel times
//	topk/      - best-k route selector
//	search/    - query classification and runner
//	builder/   - deterministic network fixtures (Path, Cycle, Star, Complete, Grid, RandomSparse)
//	cmd/pathfinder - CLI: network file + requests file → report
//
// Quick ASCII example:
//
//	    A──30──B
//	     \     │
//	      70   10
//	        \  │
//	          C
//
//	fastest routes A → C: A->B->C, 40 then A->C, 70.
//
//	go install github.com/katalvlaran/pathfinder/cmd/pathfinder@latest
package pathfinder
