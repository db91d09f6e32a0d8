// Copyright 2022 someonegg. All rights reserscoreed.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psmatch

import (
	"sort"
)

type weightedRounder struct{}

// WeightedRounder returns a Rounder that visits the items in random order and
// gives each one to an unassigned participant drawn with weight equal to its
// probability for that item. Participants with zero probability are only
// considered when nobody left has a positive one, and then uniformly; that
// fallback is a tie-breaking policy, not part of the serial mechanism.
func WeightedRounder() Rounder {
	return weightedRounder{}
}

// Round runs a WeightedRounder. A nil rnd uses NewRandSource.
func Round(items []string, participants []string, probs Probabilities, rnd RandSource) Assignment {
	return weightedRounder{}.Round(items, participants, probs, rnd)
}

type candidate struct {
	participant string
	threshold   float64
}

func (weightedRounder) Round(items []string, participants []string, probs Probabilities, rnd RandSource) Assignment {
	if rnd == nil {
		rnd = NewRandSource()
	}

	order := make([]string, len(items))
	copy(order, items)
	rnd.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	assignment := make(Assignment, min(len(items), len(participants)))
	assigned := make(map[string]bool, len(participants))
	cumulative := make([]candidate, 0, len(participants))

	for _, item := range order {
		cumulative = cumulative[:0]
		total := 0.0
		for _, p := range participants {
			if assigned[p] {
				continue
			}
			if prob := probs[p][item]; prob > 0 {
				total += prob
				cumulative = append(cumulative, candidate{p, total})
			}
		}

		var (
			chosen string
			found  bool
		)
		if total > 0 {
			chosen, found = pick(cumulative, rnd.Float64()*total), true
		} else {
			var available []string
			for _, p := range participants {
				if !assigned[p] {
					available = append(available, p)
				}
			}
			if len(available) > 0 {
				chosen, found = available[rnd.Intn(len(available))], true
			}
		}

		if found {
			assignment[chosen] = item
			assigned[chosen] = true
		}
	}

	return assignment
}

// pick returns the first candidate whose threshold is >= r.
func pick(cumulative []candidate, r float64) string {
	i := sort.Search(len(cumulative), func(i int) bool {
		return cumulative[i].threshold >= r
	})
	if i == len(cumulative) {
		i-- // float drift on the last threshold
	}
	return cumulative[i].participant
}
