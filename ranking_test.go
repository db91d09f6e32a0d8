// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositions(t *testing.T) {
	positions, err := ParsePositions(" 3, 1,2 ,")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, positions)

	_, err = ParsePositions("1,two,3")
	e, ok := IsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, OutOfRange, e.Reason)
}

func TestRankingFromPositions(t *testing.T) {
	items := []string{"apple", "pear", "plum"}

	t.Run("Valid", func(t *testing.T) {
		ranking, err := RankingFromPositions(items, []int{3, 1, 2})
		require.NoError(t, err)
		assert.Equal(t, Ranking{"plum", "apple", "pear"}, ranking)
		assert.Equal(t, []int{3, 1, 2}, ranking.Positions(items))
	})

	cases := []struct {
		name      string
		positions []int
		reason    Reason
	}{
		{"Short", []int{1, 2}, WrongLength},
		{"Long", []int{1, 2, 3, 1}, WrongLength},
		{"Zero", []int{0, 1, 2}, OutOfRange},
		{"TooBig", []int{1, 2, 4}, OutOfRange},
		{"Repeated", []int{1, 1, 2}, RepeatedEntry},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := RankingFromPositions(items, c.positions)
			e, ok := IsInvalidInput(err)
			require.True(t, ok)
			assert.Equal(t, c.reason, e.Reason)
		})
	}
}

func TestSeededRandSource(t *testing.T) {
	a, b := NewSeededRandSource("seed"), NewSeededRandSource("seed")
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	assert.NotEqual(t, NewSeededRandSource("x").Float64(), NewSeededRandSource("y").Float64())
}
