// Copyright 2022 someonegg. All rights reserscoreed.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/someonegg/psmatch"
)

// Session holds the data of one assignment session. It is not safe for
// concurrent use.
type Session struct {
	opts Options

	id           string
	step         Step
	items        []string
	participants []string
	rankings     psmatch.Rankings // nil value until confirmed
	probs        psmatch.Probabilities
	assignment   psmatch.Assignment
}

// New returns a session in StepSetup. opts can be nil.
func New(opts *Options) *Session {
	s := &Session{}
	if opts != nil {
		s.opts = *opts
	}
	s.opts.init()
	s.Reset()
	return s
}

// ParseItems splits a comma separated item list, trimming blanks.
func ParseItems(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (s *Session) ID() string { return s.id }

func (s *Session) Step() Step { return s.step }

func (s *Session) Reset() {
	s.id = uuid.New().String()
	s.items = nil
	s.participants = nil
	s.rankings = make(psmatch.Rankings)
	s.probs = nil
	s.assignment = nil
	s.setStep(StepSetup)
}

func (s *Session) setStep(step Step) {
	log.WithFields(log.Fields{
		"session": s.id,
		"from":    s.step,
		"to":      step,
	}).Debug("session step")
	s.step = step
}

func (s *Session) Start(items []string) error {
	if s.step != StepSetup {
		return errors.Wrapf(ErrWrongStep, "start in step %s", s.step)
	}

	var trimmed []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			trimmed = append(trimmed, item)
		}
	}
	if err := psmatch.ValidateItems(trimmed); err != nil {
		return err
	}

	s.items = trimmed
	s.setStep(StepParticipants)
	return nil
}

func (s *Session) AddParticipant(name string) error {
	if s.step != StepParticipants && s.step != StepRankings {
		return errors.Wrapf(ErrWrongStep, "add participant in step %s", s.step)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := s.rankings[name]; ok {
		return errors.Wrap(ErrDuplicateParticipant, name)
	}

	s.participants = append(s.participants, name)
	s.rankings[name] = nil
	if s.step == StepParticipants {
		s.setStep(StepRankings)
	}
	return nil
}

func (s *Session) RemoveParticipant(name string) error {
	if s.step != StepParticipants && s.step != StepRankings {
		return errors.Wrapf(ErrWrongStep, "remove participant in step %s", s.step)
	}
	if _, ok := s.rankings[name]; !ok {
		return errors.Wrap(ErrUnknownParticipant, name)
	}

	delete(s.rankings, name)
	for i, p := range s.participants {
		if p == name {
			s.participants = append(s.participants[:i], s.participants[i+1:]...)
			break
		}
	}

	if len(s.participants) == 0 {
		s.setStep(StepParticipants)
		return nil
	}
	return s.solveIfComplete()
}

// SubmitRanking confirms a participant's ranking, given as 1-based item
// positions, most preferred first. Once every participant has confirmed, the
// session is solved and moves to StepResults.
func (s *Session) SubmitRanking(name string, positions []int) error {
	if s.step != StepRankings {
		return errors.Wrapf(ErrWrongStep, "submit ranking in step %s", s.step)
	}
	ranking, ok := s.rankings[name]
	if !ok {
		return errors.Wrap(ErrUnknownParticipant, name)
	}
	if ranking != nil {
		return errors.Wrap(ErrRankingLocked, name)
	}

	ranking, err := psmatch.RankingFromPositions(s.items, positions)
	if err != nil {
		if e, ok := psmatch.IsInvalidInput(err); ok {
			e.Participant = name
		}
		return err
	}
	s.rankings[name] = ranking

	return s.solveIfComplete()
}

func (s *Session) solveIfComplete() error {
	if s.Ranked() < len(s.participants) {
		return nil
	}

	probs, err := s.opts.Solver.Solve(s.items, s.participants, s.rankings)
	if err != nil {
		return errors.Wrap(err, "solve")
	}
	s.probs = probs
	s.setStep(StepResults)
	return nil
}

func (s *Session) Ranked() int {
	n := 0
	for _, p := range s.participants {
		if s.rankings[p] != nil {
			n++
		}
	}
	return n
}

// Ranking returns the confirmed ranking of a participant, or nil.
func (s *Session) Ranking(name string) psmatch.Ranking {
	return s.rankings[name]
}

// Probabilities returns a copy of the solved matrix; the session's own copy
// is never modified after solving.
func (s *Session) Probabilities() (psmatch.Probabilities, error) {
	if s.probs == nil {
		return nil, errors.Wrapf(ErrWrongStep, "no results in step %s", s.step)
	}
	return s.probs.Clone(), nil
}

// Assign draws a fresh assignment from the solved probabilities, replacing
// the previous one. A nil rnd uses psmatch.NewRandSource.
func (s *Session) Assign(rnd psmatch.RandSource) (psmatch.Assignment, error) {
	if s.step != StepResults && s.step != StepAssignments {
		return nil, errors.Wrapf(ErrWrongStep, "assign in step %s", s.step)
	}
	if rnd == nil {
		rnd = psmatch.NewRandSource()
	}

	s.assignment = s.opts.Rounder.Round(s.items, s.participants, s.probs, rnd)
	s.setStep(StepAssignments)
	return s.assignment, nil
}

func (s *Session) Assignment() psmatch.Assignment { return s.assignment }

func (s *Session) Items() []string {
	return append([]string(nil), s.items...)
}

func (s *Session) Participants() []string {
	return append([]string(nil), s.participants...)
}

func (s *Session) Status() Status {
	return Status{
		ID:           s.id,
		Step:         s.step.String(),
		Items:        s.Items(),
		Participants: s.Participants(),
		Ranked:       s.Ranked(),
	}
}
