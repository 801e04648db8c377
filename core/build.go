// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Atomic network construction from ordered station and connection records.
// Policy:
//   - Build either returns a complete network or nil plus the first error.
//   - No partially built network ever escapes.

package core

import "fmt"

// StationRecord is a parsed station line: identifier and display name.
type StationRecord struct {
	ID   string
	Name string
}

// ConnectionRecord is a parsed link between two station identifiers.
type ConnectionRecord struct {
	SourceID      string
	DestinationID string
	Time          Time
}

// Build constructs a Network in one step.
//
// Implementation:
//   - Stage 1: register every station in record order.
//   - Stage 2: resolve connection endpoints by ID and add connections in record order.
//
// Errors (wrapped with the offending record, match with errors.Is):
//   - ErrDuplicateStation, ErrEmptyStationName from stage 1.
//   - ErrUnknownStation, ErrBadTime from stage 2.
//
// Complexity: O(V+E).
func Build(stations []StationRecord, connections []ConnectionRecord) (*Network, error) {
	n := NewNetwork()
	byID := make(map[string]Station, len(stations))

	for _, r := range stations {
		s := Station{ID: r.ID, Name: r.Name}
		if err := n.AddStation(s); err != nil {
			return nil, fmt.Errorf("core: Build: station %q: %w", r.ID, err)
		}
		// First registration of an ID is the one connections resolve to.
		if _, seen := byID[r.ID]; !seen {
			byID[r.ID] = s
		}
	}

	for _, r := range connections {
		src, ok := byID[r.SourceID]
		if !ok {
			return nil, fmt.Errorf("core: Build: connection %s-%s: %w: id %q", r.SourceID, r.DestinationID, ErrUnknownStation, r.SourceID)
		}
		dst, ok := byID[r.DestinationID]
		if !ok {
			return nil, fmt.Errorf("core: Build: connection %s-%s: %w: id %q", r.SourceID, r.DestinationID, ErrUnknownStation, r.DestinationID)
		}
		if err := n.AddConnection(Connection{Source: src, Destination: dst, Time: r.Time}); err != nil {
			return nil, fmt.Errorf("core: Build: connection %s-%s: %w", r.SourceID, r.DestinationID, err)
		}
	}

	return n, nil
}
