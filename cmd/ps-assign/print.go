// Copyright 2022 someonegg. All rights reserscoreed.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/someonegg/psmatch"
)

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func cells(ss ...string) []any {
	cs := make([]any, len(ss))
	for i, s := range ss {
		cs[i] = s
	}
	return cs
}

func writeProbabilities(w io.Writer, items, participants []string, probs psmatch.Probabilities, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "   ")
		return encoder.Encode(probs)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(probs)
	}

	var table = tablewriter.NewWriter(w)
	table.Header(cells(append([]string{"Participant"}, items...)...)...)

	for _, p := range participants {
		var row = []string{p}
		for _, item := range items {
			row = append(row, percent(probs.Of(p, item)))
		}
		if err := table.Append(cells(row...)...); err != nil {
			return err
		}
	}
	return table.Render()
}

func writeAssignment(w io.Writer, participants []string, a psmatch.Assignment) error {
	var table = tablewriter.NewWriter(w)
	table.Header(cells("Participant", "Item")...)

	for _, p := range participants {
		item, ok := a[p]
		if !ok {
			item = "<none>"
		}
		if err := table.Append(cells(p, item)...); err != nil {
			return err
		}
	}
	return table.Render()
}

func writeFrequencies(w io.Writer, items, participants []string, probs psmatch.Probabilities,
	counts map[string]map[string]int, trials int) error {

	var table = tablewriter.NewWriter(w)
	table.Header(cells("Participant", "Item", "Probability", "Drawn")...)

	for _, p := range participants {
		for _, item := range items {
			prob, n := probs.Of(p, item), counts[p][item]
			if prob == 0 && n == 0 {
				continue
			}
			drawn := percent(float64(n) / float64(trials))
			if err := table.Append(cells(p, item, percent(prob), drawn)...); err != nil {
				return err
			}
		}
	}
	return table.Render()
}
