// Copyright 2022 someonegg. All rights reserscoreed.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package psmatch

import (
	"errors"
	"fmt"
)

type Reason int

const (
	TooFewItems Reason = iota + 1
	NoParticipants
	DuplicateItem
	DuplicateParticipant
	MissingRanking
	WrongLength
	OutOfRange
	RepeatedEntry
)

var reasonNames = map[Reason]string{
	TooFewItems:          "too few items",
	NoParticipants:       "no participants",
	DuplicateItem:        "duplicate item",
	DuplicateParticipant: "duplicate participant",
	MissingRanking:       "missing ranking",
	WrongLength:          "wrong ranking length",
	OutOfRange:           "out of range",
	RepeatedEntry:        "repeated entry",
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// InvalidInputError reports a violated precondition. It is returned before
// any computation starts.
type InvalidInputError struct {
	Reason      Reason
	Participant string // empty when not participant specific
	Detail      string
}

func (e *InvalidInputError) Error() string {
	msg := "invalid input: " + e.Reason.String()
	if e.Participant != "" {
		msg += " (participant " + e.Participant + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func invalid(reason Reason, participant, format string, args ...interface{}) error {
	return &InvalidInputError{
		Reason:      reason,
		Participant: participant,
		Detail:      fmt.Sprintf(format, args...),
	}
}

// IsInvalidInput reports whether err (or anything it wraps) is an
// InvalidInputError, and returns it.
func IsInvalidInput(err error) (*InvalidInputError, bool) {
	var e *InvalidInputError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
