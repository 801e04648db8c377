// Package dfs enumerates simple paths between two stations of a core.Network.
//
// What:
//
//   - Enumerate: recursive depth-first search over simple paths (no station
//     repeats) from a start to an end station. Every complete path is offered
//     to a Collector; before expanding a node the Collector may declare the
//     accumulated weight dominated, which abandons the branch.
//
// Why:
//   - Exhaustive enumeration with a bounded top-k collector yields the k
//     fastest routes together with a deterministic tie-break, which a
//     single-shortest-path algorithm does not provide.
//
// Key Types:
//
//   - Collector: Offer(core.Path), Dominated(weight int64) bool
//   - Option / DFSOptions: Ctx, Pruning, OnOffer, LowerBound
//   - Stats: Offered, Pruned, Expanded, Explored
//
// Invariants:
//
//   - Neighbours are expanded in adjacency insertion order.
//   - A branch that reaches the end station is offered and not extended.
//   - Recursion depth is bounded by the number of stations.
//   - Disabling pruning (WithPruning(false)) never changes what a monotone
//     Collector such as topk.Selector finally holds. Neither does a valid
//     lower bound (WithLowerBound), it only abandons branches earlier.
//
// Errors:
//
//   - ErrNilNetwork, ErrNilCollector
//   - ErrBadLowerBound        lower bound does not cover the network
//   - core.ErrUnknownStation  start or end not in the network
//   - context.Canceled        enumeration cancelled via context
package dfs
