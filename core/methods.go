// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Network construction and queries over the index arena.
//
// Determinism:
//   - Stations() returns stations in insertion order.
//   - NeighborsOf()/Neighbors() return adjacency in connection insertion order.
//
// Concurrency:
//   - Mutators (AddStation, AddConnection) are for the build step only.
//   - Once built, a Network is read-only and safe for concurrent readers without locks.

package core

import (
	"fmt"
	"strings"
)

// Network is an undirected weighted station graph stored as an index arena.
//
// Every station receives a dense index in insertion order. adjacency[i] lists
// the neighbours of station i in the order connections were added; an edge
// between i and j appears once in adjacency[i] and once in adjacency[j].
// Duplicate edges and self-loops are kept as declared.
type Network struct {
	stations  []Station       // index → station
	index     map[Station]int // station → index
	byName    map[string]int  // display name → index (latest registration wins)
	adjacency [][]Neighbor    // index → ordered neighbour list

	connections int // number of AddConnection calls accepted
}

// NewNetwork returns an empty network.
// Complexity: O(1).
func NewNetwork() *Network {
	return &Network{
		index:  make(map[Station]int),
		byName: make(map[string]int),
	}
}

// AddStation registers s with an empty adjacency list.
//
// Errors:
//   - ErrEmptyStationName if s.Name is empty.
//   - ErrDuplicateStation if an equal station (same ID and Name) is already registered.
//
// Complexity: O(1) amortized.
func (n *Network) AddStation(s Station) error {
	if s.Name == "" {
		return ErrEmptyStationName
	}
	if _, exists := n.index[s]; exists {
		return fmt.Errorf("%w: %s (%s)", ErrDuplicateStation, s.Name, s.ID)
	}

	i := len(n.stations)
	n.stations = append(n.stations, s)
	n.adjacency = append(n.adjacency, nil)
	n.index[s] = i
	n.byName[s.Name] = i

	return nil
}

// AddConnection links c.Source and c.Destination in both directions with c.Time.
//
// Errors:
//   - ErrUnknownStation if either endpoint is not registered.
//   - ErrBadTime if the time is negative.
//
// Complexity: O(1) amortized.
func (n *Network) AddConnection(c Connection) error {
	src, ok := n.index[c.Source]
	if !ok {
		return fmt.Errorf("%w: %s (%s)", ErrUnknownStation, c.Source.Name, c.Source.ID)
	}
	dst, ok := n.index[c.Destination]
	if !ok {
		return fmt.Errorf("%w: %s (%s)", ErrUnknownStation, c.Destination.Name, c.Destination.ID)
	}
	if c.Time.Minutes < 0 {
		return fmt.Errorf("%w: %d", ErrBadTime, c.Time.Minutes)
	}

	n.adjacency[src] = append(n.adjacency[src], Neighbor{Index: dst, Time: c.Time})
	n.adjacency[dst] = append(n.adjacency[dst], Neighbor{Index: src, Time: c.Time})
	n.connections++

	return nil
}

// Contains reports whether s (by ID and Name) is registered.
func (n *Network) Contains(s Station) bool {
	_, ok := n.index[s]

	return ok
}

// Index returns the arena index of s.
func (n *Network) Index(s Station) (int, bool) {
	i, ok := n.index[s]

	return i, ok
}

// StationAt returns the station stored at arena index i.
// It panics if i is out of range, like a slice access.
func (n *Network) StationAt(i int) Station { return n.stations[i] }

// Len returns the number of stations.
func (n *Network) Len() int { return len(n.stations) }

// ConnectionCount returns the number of accepted connections (each counted once).
func (n *Network) ConnectionCount() int { return n.connections }

// Stations returns a copy of all stations in insertion order.
// Complexity: O(V).
func (n *Network) Stations() []Station {
	out := make([]Station, len(n.stations))
	copy(out, n.stations)

	return out
}

// LookupName finds a station by display name.
// When several stations share a name, the most recently registered one is returned.
func (n *Network) LookupName(name string) (Station, bool) {
	i, ok := n.byName[name]
	if !ok {
		return Station{}, false
	}

	return n.stations[i], true
}

// Neighbors returns the adjacency list of s in insertion order.
// The returned slice is shared with the network and must not be modified.
//
// Errors:
//   - ErrUnknownStation if s is not registered.
func (n *Network) Neighbors(s Station) ([]Neighbor, error) {
	i, ok := n.index[s]
	if !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnknownStation, s.Name, s.ID)
	}

	return n.adjacency[i], nil
}

// NeighborsOf is the index-based form of Neighbors used on hot paths.
// The returned slice is shared with the network and must not be modified.
func (n *Network) NeighborsOf(i int) []Neighbor { return n.adjacency[i] }

// String renders the network in the input line format:
//
//	A, Caldeirão Verde, [(B, 30), (C, 70)]
//
// one line per station in insertion order.
// Complexity: O(V+E).
func (n *Network) String() string {
	var sb strings.Builder
	for i, s := range n.stations {
		sb.WriteString(s.ID)
		sb.WriteString(", ")
		sb.WriteString(s.Name)
		sb.WriteString(", [")
		for j, nb := range n.adjacency[i] {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "(%s, %s)", n.stations[nb.Index].ID, nb.Time)
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
