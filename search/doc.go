// Package search answers "three fastest routes" queries over a core.Network.
//
// A Runner classifies each requested pair by display name:
//
//   - either name unknown      → SourceOutOfNetwork / DestinationOutOfNetwork / BothOutOfNetwork
//   - same station both ends   → Found, one zero-weight single-station path
//   - otherwise                → dijkstra lower bounds from the destination
//     (or, with bounds off, an optional bfs.Reachable pre-check), then
//     dfs.Enumerate feeding a topk.Selector; an empty result is NoCommunication
//
// Out-of-network and no-communication answers are statuses, never errors. The
// enumerator is never invoked for a station that is not in the network.
//
// Run preserves request order. WithWorkers fans queries out over a fixed pool
// of goroutines sharing the read-only network; WithCache memoises outcomes of
// repeated requests with go-cache.
package search
