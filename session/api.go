// Copyright 2022 someonegg. All rights reserscoreed.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package session drives psmatch through the collect-rank-solve-assign
// workflow of one assignment session.
package session

import (
	"github.com/pkg/errors"

	"github.com/someonegg/psmatch"
)

type Step int

const (
	StepSetup Step = iota
	StepParticipants
	StepRankings
	StepResults
	StepAssignments
)

func (s Step) String() string {
	switch s {
	case StepSetup:
		return "setup"
	case StepParticipants:
		return "participants"
	case StepRankings:
		return "rankings"
	case StepResults:
		return "results"
	case StepAssignments:
		return "assignments"
	}
	return "unknown"
}

var (
	ErrWrongStep            = errors.New("operation not allowed in current step")
	ErrEmptyName            = errors.New("empty participant name")
	ErrDuplicateParticipant = errors.New("participant already exists")
	ErrUnknownParticipant   = errors.New("unknown participant")
	ErrRankingLocked        = errors.New("ranking already confirmed")
)

type Options struct {
	// When set, the default solver traces every eating round.
	Verbose bool

	Solver  psmatch.Solver  // can be nil
	Rounder psmatch.Rounder // can be nil
}

func (o *Options) init() {
	if o.Solver == nil {
		o.Solver = psmatch.SerialSolver(o.Verbose)
	}
	if o.Rounder == nil {
		o.Rounder = psmatch.WeightedRounder()
	}
}

type Status struct {
	ID           string   `json:"id"`
	Step         string   `json:"step"`
	Items        []string `json:"items"`
	Participants []string `json:"participants"`
	Ranked       int      `json:"ranked"`
}
