// Copyright 2022 someonegg. All rights reserscoreed.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psmatch

import (
	"sort"
)

type greedyRounder struct {
	sens float64
}

// GreedyRounder returns a Rounder that hands out the largest probabilities
// first. Probabilities falling in the same sensitivity bucket are ties and are
// visited in random order. Items left over once no positive pair fits go to
// random unassigned participants.
func GreedyRounder(sensitivity float64) Rounder {
	if sensitivity <= 0 {
		sensitivity = 1e-9
	}
	return greedyRounder{sensitivity}
}

type greedyPair struct {
	participant string
	item        string
	bucket      int
}

func (m greedyRounder) bucket(prob float64) int {
	return int(prob / m.sens)
}

func (m greedyRounder) Round(items []string, participants []string, probs Probabilities, rnd RandSource) Assignment {
	if rnd == nil {
		rnd = NewRandSource()
	}

	pl := make([]greedyPair, 0, len(items)*len(participants))
	for _, p := range participants {
		for _, item := range items {
			if prob := probs[p][item]; prob > 0 {
				pl = append(pl, greedyPair{p, item, m.bucket(prob)})
			}
		}
	}

	rnd.Shuffle(len(pl), func(i, j int) {
		pl[i], pl[j] = pl[j], pl[i]
	})
	sort.SliceStable(pl, func(i, j int) bool {
		return pl[i].bucket > pl[j].bucket
	})

	assignment := make(Assignment, min(len(items), len(participants)))
	taken := make(map[string]bool, len(items))
	for _, a := range pl {
		if _, ok := assignment[a.participant]; ok || taken[a.item] {
			continue
		}
		assignment[a.participant] = a.item
		taken[a.item] = true
	}

	var rest []string
	for _, item := range items {
		if !taken[item] {
			rest = append(rest, item)
		}
	}
	rnd.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})
	for _, item := range rest {
		var available []string
		for _, p := range participants {
			if _, ok := assignment[p]; !ok {
				available = append(available, p)
			}
		}
		if len(available) == 0 {
			break
		}
		assignment[available[rnd.Intn(len(available))]] = item
	}

	return assignment
}
