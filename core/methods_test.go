// SPDX-License-Identifier: MIT
// Package core_test verifies Network construction and query contracts.

package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/core"
)

var (
	stA = core.Station{ID: "A", Name: "Caldeirão Verde"}
	stB = core.Station{ID: "B", Name: "Tornos"}
	stC = core.Station{ID: "C", Name: "Barreiro"}
)

// triangle builds A–B (30), B–C (10), A–C (70).
func triangle(t *testing.T) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	for _, s := range []core.Station{stA, stB, stC} {
		require.NoError(t, n.AddStation(s))
	}
	require.NoError(t, n.AddConnection(core.Connection{Source: stA, Destination: stB, Time: core.Minutes(30)}))
	require.NoError(t, n.AddConnection(core.Connection{Source: stB, Destination: stC, Time: core.Minutes(10)}))
	require.NoError(t, n.AddConnection(core.Connection{Source: stA, Destination: stC, Time: core.Minutes(70)}))

	return n
}

func TestNetwork_AddStation(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddStation(stA))
	assert.True(t, n.Contains(stA))
	assert.Equal(t, 1, n.Len())

	err := n.AddStation(stA)
	assert.ErrorIs(t, err, core.ErrDuplicateStation)
	assert.Equal(t, 1, n.Len(), "duplicate must not be registered")

	// Same name, different ID is a different station.
	require.NoError(t, n.AddStation(core.Station{ID: "Z", Name: stA.Name}))
	assert.Equal(t, 2, n.Len())

	assert.ErrorIs(t, n.AddStation(core.Station{ID: "Q"}), core.ErrEmptyStationName)
}

func TestNetwork_AddConnectionSymmetry(t *testing.T) {
	n := triangle(t)

	fromA, err := n.Neighbors(stA)
	require.NoError(t, err)
	fromC, err := n.Neighbors(stC)
	require.NoError(t, err)

	iA, _ := n.Index(stA)
	iC, _ := n.Index(stC)

	// A lists C with 70 and C lists A with 70.
	assert.Contains(t, fromA, core.Neighbor{Index: iC, Time: core.Minutes(70)})
	assert.Contains(t, fromC, core.Neighbor{Index: iA, Time: core.Minutes(70)})
	assert.Equal(t, 3, n.ConnectionCount())
}

func TestNetwork_AdjacencyInsertionOrder(t *testing.T) {
	n := triangle(t)
	fromA, err := n.Neighbors(stA)
	require.NoError(t, err)
	require.Len(t, fromA, 2)
	assert.Equal(t, stB, n.StationAt(fromA[0].Index))
	assert.Equal(t, stC, n.StationAt(fromA[1].Index))
}

func TestNetwork_UnknownStation(t *testing.T) {
	n := triangle(t)
	ghost := core.Station{ID: "X", Name: "Ghost"}

	err := n.AddConnection(core.Connection{Source: stA, Destination: ghost, Time: core.Minutes(1)})
	assert.ErrorIs(t, err, core.ErrUnknownStation)

	err = n.AddConnection(core.Connection{Source: ghost, Destination: stA, Time: core.Minutes(1)})
	assert.ErrorIs(t, err, core.ErrUnknownStation)

	_, err = n.Neighbors(ghost)
	assert.ErrorIs(t, err, core.ErrUnknownStation)
	assert.False(t, n.Contains(ghost))

	// Membership is by (ID, Name), not by name alone.
	assert.False(t, n.Contains(core.Station{ID: "other", Name: stA.Name}))
}

func TestNetwork_DuplicateEdgesAndLoops(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.AddStation(stA))
	require.NoError(t, n.AddStation(stB))
	c := core.Connection{Source: stA, Destination: stB, Time: core.Minutes(5)}
	require.NoError(t, n.AddConnection(c))
	require.NoError(t, n.AddConnection(c))
	require.NoError(t, n.AddConnection(core.Connection{Source: stA, Destination: stA, Time: core.Minutes(1)}))

	fromB, err := n.Neighbors(stB)
	require.NoError(t, err)
	assert.Len(t, fromB, 2, "duplicate edges are kept")

	fromA, err := n.Neighbors(stA)
	require.NoError(t, err)
	assert.Len(t, fromA, 4, "two duplicates plus both directions of the loop")
}

func TestNetwork_LookupName(t *testing.T) {
	n := triangle(t)
	s, ok := n.LookupName("Tornos")
	require.True(t, ok)
	assert.Equal(t, stB, s)

	_, ok = n.LookupName("Nowhere")
	assert.False(t, ok)

	later := core.Station{ID: "B2", Name: "Tornos"}
	require.NoError(t, n.AddStation(later))
	s, _ = n.LookupName("Tornos")
	assert.Equal(t, later, s, "latest registration wins")
}

func TestNetwork_String(t *testing.T) {
	n := triangle(t)
	want := strings.Join([]string{
		"A, Caldeirão Verde, [(B, 30), (C, 70)]",
		"B, Tornos, [(A, 30), (C, 10)]",
		"C, Barreiro, [(B, 10), (A, 70)]",
		"",
	}, "\n")
	assert.Equal(t, want, n.String())
}

func TestBuild(t *testing.T) {
	stations := []core.StationRecord{{ID: "A", Name: "Alpha"}, {ID: "B", Name: "Beta"}}

	t.Run("ok", func(t *testing.T) {
		n, err := core.Build(stations, []core.ConnectionRecord{{SourceID: "A", DestinationID: "B", Time: core.Minutes(3)}})
		require.NoError(t, err)
		assert.Equal(t, 2, n.Len())
		assert.Equal(t, 1, n.ConnectionCount())
	})

	t.Run("duplicate station aborts", func(t *testing.T) {
		n, err := core.Build(append(stations, core.StationRecord{ID: "A", Name: "Alpha"}), nil)
		assert.Nil(t, n)
		assert.ErrorIs(t, err, core.ErrDuplicateStation)
	})

	t.Run("unknown endpoint aborts", func(t *testing.T) {
		n, err := core.Build(stations, []core.ConnectionRecord{{SourceID: "A", DestinationID: "Z", Time: core.Minutes(3)}})
		assert.Nil(t, n)
		assert.True(t, errors.Is(err, core.ErrUnknownStation))
	})

	t.Run("negative time aborts", func(t *testing.T) {
		n, err := core.Build(stations, []core.ConnectionRecord{{SourceID: "A", DestinationID: "B", Time: core.Time{Minutes: -1}}})
		assert.Nil(t, n)
		assert.ErrorIs(t, err, core.ErrBadTime)
	})
}
