// Copyright 2022 someonegg. All rights reserscoreed.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package psmatch provides the probabilistic serial (Bogomolnaia-Moulin)
// assignment of indivisible items and the randomized rounding of its result.
package psmatch

type Solver interface {
	Solve(items []string, participants []string, rankings Rankings) (Probabilities, error)
}

type Rounder interface {
	Round(items []string, participants []string, probs Probabilities, rnd RandSource) Assignment
}

// Ranking is a strict preference order over items, most preferred first.
type Ranking []string

type Rankings map[string]Ranking // participantID

// Probabilities is the fractional assignment, participant -> item -> share.
type Probabilities map[string]map[string]float64

func (p Probabilities) Of(participant, item string) float64 {
	return p[participant][item]
}

// Clone returns a deep copy.
func (p Probabilities) Clone() Probabilities {
	c := make(Probabilities, len(p))
	for participant, row := range p {
		r := make(map[string]float64, len(row))
		for item, v := range row {
			r[item] = v
		}
		c[participant] = r
	}
	return c
}

func (p Probabilities) RowSum(participant string) float64 {
	sum := 0.0
	for _, v := range p[participant] {
		sum += v
	}
	return sum
}

func (p Probabilities) ColumnSum(item string) float64 {
	sum := 0.0
	for _, row := range p {
		sum += row[item]
	}
	return sum
}

type Assignment map[string]string // participantID -> item

// Holders returns the item -> participant view of the assignment.
func (a Assignment) Holders() map[string]string {
	h := make(map[string]string, len(a))
	for p, item := range a {
		h[item] = p
	}
	return h
}

// RandSource is satisfied by *math/rand.Rand and *frand.RNG.
type RandSource interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}
