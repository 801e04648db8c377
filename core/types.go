// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Value types of the station network (Station, Time, Connection, Neighbor, Path)
// and the sentinel errors returned by network construction and lookup.
// Policy:
//   - All types are plain values; equality is structural (==) wherever Go allows it.
//   - Sentinels are never formatted at definition site; context is added with %w.

package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for core network operations.
var (
	// ErrDuplicateStation indicates that a station equal (same ID and Name) to an
	// already registered one was inserted. Fatal to a build.
	ErrDuplicateStation = errors.New("core: duplicate station")

	// ErrUnknownStation indicates that an operation referenced a station that is
	// not registered in the network.
	ErrUnknownStation = errors.New("core: station not in network")

	// ErrEmptyStationName indicates that a station without a display name was inserted.
	ErrEmptyStationName = errors.New("core: station name is empty")

	// ErrBadTime indicates that a travel time is negative or not an integer.
	ErrBadTime = errors.New("core: invalid travel time")
)

// Station is a named node of the network.
//
// Two stations are equal iff both ID and Name are equal, so Station can be
// compared with == and used directly as a map key. A station with an empty
// ID is a placeholder for a requested name that is not part of the network.
type Station struct {
	// ID is the opaque identifier used by connection records.
	ID string

	// Name is the display name; requests refer to stations by Name.
	Name string
}

// Placeholder returns a synthetic station for a name that is absent from the network.
func Placeholder(name string) Station {
	return Station{Name: name}
}

// IsPlaceholder reports whether s carries no identifier.
func (s Station) IsPlaceholder() bool { return s.ID == "" }

// String returns the display name.
func (s Station) String() string { return s.Name }

// CompareStations orders stations lexicographically by Name.
// The ID breaks residual ties so the order is total and deterministic.
// Returns -1, 0 or +1.
func CompareStations(a, b Station) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}

	return strings.Compare(a.ID, b.ID)
}

// Time is a travel duration in whole minutes.
//
// Minutes is authoritative for ordering and arithmetic; Text keeps the textual
// form read from input and is used for display only.
type Time struct {
	Minutes int64
	Text    string
}

// Minutes builds a Time from an integer count, deriving its textual form.
func Minutes(m int64) Time {
	return Time{Minutes: m, Text: strconv.FormatInt(m, 10)}
}

// ParseTime parses the textual minutes form (e.g. "30").
// Negative or non-integer input yields ErrBadTime.
// Complexity: O(len(text)).
func ParseTime(text string) (Time, error) {
	m, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || m < 0 {
		return Time{}, fmt.Errorf("%w: %q", ErrBadTime, text)
	}

	return Time{Minutes: m, Text: text}, nil
}

// Less reports whether t is strictly shorter than o.
func (t Time) Less(o Time) bool { return t.Minutes < o.Minutes }

// Equal compares by numeric value; the textual form is ignored.
func (t Time) Equal(o Time) bool { return t.Minutes == o.Minutes }

// String returns the original textual form, or the decimal minutes when none was recorded.
func (t Time) String() string {
	if t.Text != "" {
		return t.Text
	}

	return strconv.FormatInt(t.Minutes, 10)
}

// Connection is an undirected, timed link between two stations.
// Source and Destination only record the order in which the link was declared.
type Connection struct {
	Source      Station
	Destination Station
	Time        Time
}

// Less orders connections by travel time.
func (c Connection) Less(o Connection) bool { return c.Time.Less(o.Time) }

// Equal reports component-wise equality (time compared numerically).
func (c Connection) Equal(o Connection) bool {
	return c.Source == o.Source && c.Destination == o.Destination && c.Time.Equal(o.Time)
}

// String renders "Source -> Destination, time".
func (c Connection) String() string {
	return c.Source.Name + " -> " + c.Destination.Name + ", " + c.Time.String()
}

// Neighbor is one adjacency entry: the arena index of the adjacent station and the link time.
type Neighbor struct {
	Index int
	Time  Time
}

// Path is a simple route (no repeated station) with its accumulated weight in minutes.
// A single-station path is valid and weighs 0.
type Path struct {
	Stations []Station
	Weight   int64
}

// Len returns the number of stations on the path.
func (p Path) Len() int { return len(p.Stations) }

// Equal reports whether both paths visit the same station sequence with the same weight.
func (p Path) Equal(o Path) bool {
	if p.Weight != o.Weight || len(p.Stations) != len(o.Stations) {
		return false
	}
	for i := range p.Stations {
		if p.Stations[i] != o.Stations[i] {
			return false
		}
	}

	return true
}

// String renders the report form "A->B->C, 40".
func (p Path) String() string {
	var sb strings.Builder
	for i, s := range p.Stations {
		if i > 0 {
			sb.WriteString("->")
		}
		sb.WriteString(s.Name)
	}
	sb.WriteString(", ")
	sb.WriteString(strconv.FormatInt(p.Weight, 10))

	return sb.String()
}

// ComparePaths orders paths by the ranking key used for the top-k result:
//
//  1. total weight ascending;
//  2. number of stations descending (among equally fast routes the longer one ranks first);
//  3. station sequence ascending, element-wise by CompareStations.
//
// Returns -1, 0 or +1.
// Complexity: O(min(len(a), len(b))).
func ComparePaths(a, b Path) int {
	switch {
	case a.Weight < b.Weight:
		return -1
	case a.Weight > b.Weight:
		return 1
	}

	switch la, lb := len(a.Stations), len(b.Stations); {
	case la > lb:
		return -1
	case la < lb:
		return 1
	}

	for i := range a.Stations {
		if c := CompareStations(a.Stations[i], b.Stations[i]); c != 0 {
			return c
		}
	}

	return 0
}
