// Copyright 2022 someonegg. All rights reserscoreed.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psmatch

import (
	"math"

	log "github.com/sirupsen/logrus"
)

// Remaining capacity at or below this is treated as exhausted.
const exhaustedCapacity = 1e-10

type serialSolver struct {
	verbose bool
}

// SerialSolver returns the probabilistic serial solver. Every participant
// eats its most preferred remaining item at unit rate; the share eaten is the
// probability of receiving it. The simulation jumps from one exhaustion event
// to the next, so it takes at most len(items) rounds.
func SerialSolver(verbose bool) Solver {
	return serialSolver{verbose}
}

// Solve runs a non-verbose SerialSolver.
func Solve(items []string, participants []string, rankings Rankings) (Probabilities, error) {
	return serialSolver{}.Solve(items, participants, rankings)
}

func (s serialSolver) Solve(items []string, participants []string, rankings Rankings) (Probabilities, error) {
	if err := Validate(items, participants, rankings); err != nil {
		return nil, err
	}
	probs, _ := s.eat(items, participants, rankings)
	return probs, nil
}

func (s serialSolver) eat(items []string, participants []string, rankings Rankings) (probs Probabilities, rounds int) {
	remaining := make(map[string]float64, len(items))
	for _, item := range items {
		remaining[item] = 1.0
	}

	probs = make(Probabilities, len(participants))
	for _, p := range participants {
		row := make(map[string]float64, len(items))
		for _, item := range items {
			row[item] = 0.0
		}
		probs[p] = row
	}

	pointers := make([]int, len(participants))
	rates := make(map[string]int, len(items))

	for len(remaining) > 0 {
		for item := range rates {
			delete(rates, item)
		}

		for i, p := range participants {
			pref := rankings[p]
			for pointers[i] < len(pref) {
				if _, ok := remaining[pref[pointers[i]]]; ok {
					break
				}
				pointers[i]++
			}
			if pointers[i] < len(pref) {
				rates[pref[pointers[i]]]++
			}
		}

		minTime := math.Inf(1)
		for _, item := range items {
			rate := rates[item]
			if rate == 0 {
				continue
			}
			if t := remaining[item] / float64(rate); t < minTime {
				minTime = t
			}
		}
		if math.IsInf(minTime, 1) {
			break
		}
		rounds++

		for i, p := range participants {
			pref := rankings[p]
			if pointers[i] >= len(pref) {
				continue
			}
			item := pref[pointers[i]]
			probs[p][item] += minTime
			remaining[item] -= minTime
		}

		var exhausted []string
		for _, item := range items {
			if c, ok := remaining[item]; ok && c <= exhaustedCapacity {
				delete(remaining, item)
				exhausted = append(exhausted, item)
			}
		}

		if s.verbose {
			log.WithFields(log.Fields{
				"round":     rounds,
				"elapsed":   minTime,
				"exhausted": exhausted,
				"remaining": len(remaining),
			}).Info("eating round")
		}
	}

	return
}
