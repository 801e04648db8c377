// Package core defines the station network model used by the route search:
// Station, Time, Connection, Path and the index-arena Network.
//
// The Network is an undirected weighted graph N = (V, E):
//
//   - Stations are unique by (ID, Name) and receive dense indices in insertion order.
//   - Adjacency is stored per index as an ordered []Neighbor; every connection
//     appears in both endpoints' lists, in the order connections were added.
//   - Duplicate connections and self-loops are preserved as declared.
//   - A Network is built once (Build or AddStation/AddConnection) and is
//     read-only afterwards, so concurrent searches need no locking.
//
// Core Methods:
//
//	AddStation(s Station) error                 // O(1)
//	AddConnection(c Connection) error           // O(1)
//	Contains(s Station) bool                    // O(1)
//	Neighbors(s Station) ([]Neighbor, error)    // O(1), shared slice
//	NeighborsOf(i int) []Neighbor               // O(1), index form
//	LookupName(name string) (Station, bool)     // O(1)
//	Build(stations, connections) (*Network, error)
//
// Ranking:
//
//	ComparePaths(a, b Path) int  // weight asc, length desc, station sequence asc
//
// Errors:
//
//	ErrDuplicateStation  – equal station inserted twice
//	ErrUnknownStation    – connection endpoint or lookup not in the network
//	ErrEmptyStationName  – station without a display name
//	ErrBadTime           – negative or non-integer travel time
package core
