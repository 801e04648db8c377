// Package bfs provides breadth-first search over a core.Network,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore stations in non-decreasing hop count from a start station.
//   - BFS returns a BFSResult with Order, Depth and Parent; PathTo rebuilds
//     the fewest-hop route to any reached station.
//   - Reachable answers a single connectivity question and stops as soon as
//     the target is dequeued.
//   - OnVisit hook (may abort with an error) and MaxDepth limit.
//
// Why
//
//   - Exhaustive route enumeration is exponential; a linear-time reachability
//     check answers "do not communicate" queries without enumerating anything.
//
// Determinism
//
//	Neighbours are enqueued in adjacency insertion order, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = stations, E = connections)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the network pointer is nil.
//   - ErrStartVertexNotFound  if the start station does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - core.ErrUnknownStation  (wrapped) if the Reachable target does not exist.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
