// Copyright 2022 someonegg. All rights reserscoreed.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/someonegg/psmatch"
	"github.com/someonegg/psmatch/session"
)

func doSolve(w io.Writer, inputFile, format string, verbose bool) error {
	s, err := loadSession(inputFile, &session.Options{Verbose: verbose})
	if err != nil {
		return err
	}

	probs, err := s.Probabilities()
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"session":      s.ID(),
		"items":        len(s.Items()),
		"participants": len(s.Participants()),
	}).Debug("solved")

	return writeProbabilities(w, s.Items(), s.Participants(), probs, format)
}

func doAssign(w io.Writer, inputFile, seed string, trials int, outputFile string,
	rounder psmatch.Rounder, verbose bool) error {

	s, err := loadSession(inputFile, &session.Options{Verbose: verbose, Rounder: rounder})
	if err != nil {
		return err
	}

	rnd := psmatch.NewRandSource()
	if seed != "" {
		rnd = psmatch.NewSeededRandSource(seed)
	}

	var (
		a      psmatch.Assignment
		counts = make(map[string]map[string]int)
	)
	for i := 0; i < trials; i++ {
		if a, err = s.Assign(rnd); err != nil {
			return err
		}
		for p, item := range a {
			if counts[p] == nil {
				counts[p] = make(map[string]int)
			}
			counts[p][item]++
		}
	}

	if trials == 1 {
		err = writeAssignment(w, s.Participants(), a)
	} else {
		probs, _ := s.Probabilities()
		err = writeFrequencies(w, s.Items(), s.Participants(), probs, counts, trials)
	}
	if err != nil {
		return errors.Wrap(err, "write table failed")
	}

	if outputFile != "" {
		if err := saveAssignment(outputFile, a); err != nil {
			return errors.Wrap(err, "write assignment file failed")
		}
		fmt.Fprintln(w, "assignment written to", outputFile)
	}
	return nil
}

func saveAssignment(file string, a psmatch.Assignment) error {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "   ")
	if err := encoder.Encode(a); err != nil {
		return err
	}

	return os.WriteFile(file, buf.Bytes(), 0644)
}
