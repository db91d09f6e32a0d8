// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psmatch

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireFeasible(t *testing.T, items, participants []string, a Assignment) {
	t.Helper()
	itemSet := make(map[string]bool, len(items))
	for _, item := range items {
		itemSet[item] = true
	}
	pSet := make(map[string]bool, len(participants))
	for _, p := range participants {
		pSet[p] = true
	}

	used := make(map[string]bool, len(a))
	for p, item := range a {
		require.True(t, pSet[p], "unknown participant %s", p)
		require.True(t, itemSet[item], "unknown item %s", item)
		require.False(t, used[item], "item %s assigned twice", item)
		used[item] = true
	}
}

// 1. scenarios
func TestWeightedRounder_Scenarios(t *testing.T) {
	items := []string{"X", "Y"}
	participants := []string{"A", "B"}

	t.Run("Deterministic", func(t *testing.T) {
		probs := Probabilities{
			"A": {"X": 1, "Y": 0},
			"B": {"X": 0, "Y": 1},
		}
		for i := 0; i < 200; i++ {
			a := Round(items, participants, probs, NewSeededRandSource(fmt.Sprint(i)))
			assert.Equal(t, Assignment{"A": "X", "B": "Y"}, a)
		}
	})

	t.Run("EvenSplit", func(t *testing.T) {
		probs := Probabilities{
			"A": {"X": 0.5, "Y": 0.5},
			"B": {"X": 0.5, "Y": 0.5},
		}
		rnd := NewSeededRandSource("even split")

		const trials = 10000
		aGetsX := 0
		for i := 0; i < trials; i++ {
			a := WeightedRounder().Round(items, participants, probs, rnd)
			requireFeasible(t, items, participants, a)
			require.Len(t, a, 2)
			if a["A"] == "X" {
				aGetsX++
			}
		}
		assert.InDelta(t, 0.5, float64(aGetsX)/trials, 0.05)
	})
}

// 2. feasibility on solved random instances
func TestWeightedRounder_Feasibility(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	rnd := NewSeededRandSource("feasibility")

	for _, n := range []int{2, 4, 7, 12} {
		for trial := 0; trial < 25; trial++ {
			items, participants, rankings := randomInstance(rng, n)
			probs, err := Solve(items, participants, rankings)
			require.NoError(t, err)

			a := Round(items, participants, probs, rnd)
			requireFeasible(t, items, participants, a)
			assert.Len(t, a, n)
		}
	}
}

func TestWeightedRounder_ZeroProbability(t *testing.T) {
	items := []string{"X", "Y"}
	participants := []string{"A", "B", "C"}
	probs := Probabilities{
		"A": {"X": 1},
		"B": {"Y": 1},
		"C": {},
	}

	for i := 0; i < 200; i++ {
		a := Round(items, participants, probs, NewSeededRandSource(fmt.Sprint("zero", i)))
		assert.Equal(t, Assignment{"A": "X", "B": "Y"}, a)
	}
}

func TestWeightedRounder_Fallback(t *testing.T) {
	items := []string{"X", "Y", "Z"}
	participants := []string{"A", "B", "C"}
	probs := Probabilities{
		"A": {"X": 1},
		"B": {"Y": 1},
		"C": {},
	}

	sawFallback := false
	for i := 0; i < 200; i++ {
		a := Round(items, participants, probs, NewSeededRandSource(fmt.Sprint("fallback", i)))
		requireFeasible(t, items, participants, a)
		require.Len(t, a, 3)
		if a["A"] != "X" {
			sawFallback = true
		}
	}
	assert.True(t, sawFallback)
}

func TestWeightedRounder_UnequalCounts(t *testing.T) {
	t.Run("MoreItems", func(t *testing.T) {
		items := []string{"X", "Y", "Z"}
		participants := []string{"A", "B"}
		probs, err := Solve(items, participants, rankingsOf(map[string][]string{
			"A": items, "B": {"Z", "Y", "X"},
		}))
		require.NoError(t, err)

		a := Round(items, participants, probs, NewSeededRandSource("more items"))
		requireFeasible(t, items, participants, a)
		assert.Len(t, a, 2)
	})

	t.Run("MoreParticipants", func(t *testing.T) {
		items := []string{"X", "Y"}
		participants := []string{"A", "B", "C"}
		probs, err := Solve(items, participants, rankingsOf(map[string][]string{
			"A": items, "B": items, "C": {"Y", "X"},
		}))
		require.NoError(t, err)

		a := Round(items, participants, probs, nil)
		requireFeasible(t, items, participants, a)
		assert.Len(t, a, 2)
		assert.Len(t, a.Holders(), 2)
	})
}

func TestWeightedRounder_Reproducible(t *testing.T) {
	items, participants, rankings := randomInstance(rand.New(rand.NewSource(3)), 9)
	probs, err := Solve(items, participants, rankings)
	require.NoError(t, err)

	a1 := Round(items, participants, probs, NewSeededRandSource("same"))
	a2 := Round(items, participants, probs, NewSeededRandSource("same"))
	assert.Equal(t, a1, a2)
}

func TestPick(t *testing.T) {
	cumulative := []candidate{{"A", 0.25}, {"B", 0.75}, {"C", 1.0}}

	assert.Equal(t, "A", pick(cumulative, 0.0))
	assert.Equal(t, "A", pick(cumulative, 0.25))
	assert.Equal(t, "B", pick(cumulative, 0.26))
	assert.Equal(t, "C", pick(cumulative, 0.99))
	assert.Equal(t, "C", pick(cumulative, 1.0000001))
}
