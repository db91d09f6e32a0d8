// Copyright 2022 someonegg. All rights reserscoreed.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psmatch

import (
	"strconv"
	"strings"
)

// ParsePositions parses a comma separated submission such as "3,1,2".
// Blank entries are ignored. Range and uniqueness are checked later by
// RankingFromPositions.
func ParsePositions(s string) ([]int, error) {
	var positions []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, invalid(OutOfRange, "", "%q is not a number", f)
		}
		positions = append(positions, n)
	}
	return positions, nil
}

// RankingFromPositions converts 1-based item positions, most preferred first,
// into a Ranking. positions must be a permutation of 1..len(items).
func RankingFromPositions(items []string, positions []int) (Ranking, error) {
	n := len(items)
	if len(positions) != n {
		return nil, invalid(WrongLength, "", "want %d positions, got %d", n, len(positions))
	}

	seen := make([]bool, n)
	ranking := make(Ranking, n)
	for i, pos := range positions {
		if pos < 1 || pos > n {
			return nil, invalid(OutOfRange, "", "position %d not in 1..%d", pos, n)
		}
		if seen[pos-1] {
			return nil, invalid(RepeatedEntry, "", "position %d given twice", pos)
		}
		seen[pos-1] = true
		ranking[i] = items[pos-1]
	}
	return ranking, nil
}

// Positions is the inverse of RankingFromPositions.
func (r Ranking) Positions(items []string) []int {
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[item] = i + 1
	}
	positions := make([]int, len(r))
	for i, item := range r {
		positions[i] = index[item]
	}
	return positions
}

// Validate checks the solver preconditions: at least two unique items, a
// non-empty set of unique participants, and for each participant a ranking
// that is a permutation of items.
func Validate(items []string, participants []string, rankings Rankings) error {
	if err := ValidateItems(items); err != nil {
		return err
	}
	if len(participants) == 0 {
		return invalid(NoParticipants, "", "need at least 1 participant")
	}

	itemSet := make(map[string]struct{}, len(items))
	for _, item := range items {
		itemSet[item] = struct{}{}
	}

	pSet := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		if _, ok := pSet[p]; ok {
			return invalid(DuplicateParticipant, p, "")
		}
		pSet[p] = struct{}{}

		ranking, ok := rankings[p]
		if !ok || ranking == nil {
			return invalid(MissingRanking, p, "")
		}
		if len(ranking) != len(items) {
			return invalid(WrongLength, p, "want %d items, got %d", len(items), len(ranking))
		}
		ranked := make(map[string]struct{}, len(ranking))
		for _, item := range ranking {
			if _, ok := itemSet[item]; !ok {
				return invalid(OutOfRange, p, "unknown item %q", item)
			}
			if _, ok := ranked[item]; ok {
				return invalid(RepeatedEntry, p, "item %q ranked twice", item)
			}
			ranked[item] = struct{}{}
		}
	}
	return nil
}

// ValidateItems checks that there are at least two items and no duplicates.
func ValidateItems(items []string) error {
	if len(items) < 2 {
		return invalid(TooFewItems, "", "need at least 2 items, got %d", len(items))
	}
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			return invalid(DuplicateItem, "", "%q", item)
		}
		seen[item] = struct{}{}
	}
	return nil
}
