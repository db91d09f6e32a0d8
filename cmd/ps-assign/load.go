// Copyright 2022 someonegg. All rights reserscoreed.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/someonegg/psmatch/session"
)

type File struct {
	Items        []string       `json:"items" yaml:"items"`
	Participants []*Participant `json:"participants" yaml:"participants"`
}

type Participant struct {
	Name    string `json:"name" yaml:"name"`
	Ranking []int  `json:"ranking" yaml:"ranking"` // 1-based item positions
}

func loadFile(file string) (*File, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var f File

	if strings.EqualFold(filepath.Ext(file), ".json") {
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		err = decoder.Decode(&f)
	} else {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		err = decoder.Decode(&f)
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// loadSession replays the file through a session, leaving it solved.
func loadSession(file string, opts *session.Options) (*session.Session, error) {
	f, err := loadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "load session file failed")
	}

	s := session.New(opts)
	if err := s.Start(f.Items); err != nil {
		return nil, errors.Wrap(err, "items")
	}
	for _, p := range f.Participants {
		if err := s.AddParticipant(p.Name); err != nil {
			return nil, errors.Wrapf(err, "participant %q", p.Name)
		}
	}
	for _, p := range f.Participants {
		if err := s.SubmitRanking(strings.TrimSpace(p.Name), p.Ranking); err != nil {
			return nil, errors.Wrapf(err, "ranking of %q", p.Name)
		}
	}

	if s.Step() != session.StepResults {
		return nil, errors.Errorf("session incomplete: %d of %d rankings",
			s.Ranked(), len(s.Participants()))
	}
	return s, nil
}
