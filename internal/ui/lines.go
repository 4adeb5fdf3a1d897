package ui

import (
	"strings"

	"ca-engine/pkg/core"
)

// Lines flattens a parameter snapshot into the text rows of a status panel:
// each group gets a header followed by "Label: value" rows.
func Lines(title string, snap core.ParameterSnapshot) []string {
	lines := make([]string, 0, 1+2*len(snap.Groups))
	if title != "" {
		lines = append(lines, title)
	}
	for _, group := range snap.Groups {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.ToUpper(group.Name))
		for _, p := range group.Params {
			lines = append(lines, p.Label+": "+p.Value)
		}
	}
	return lines
}

// Hint is the key reference shown under the status rows.
var Hint = []string{
	"space pause  n step",
	"r reset  s new seed",
	"c clear  m mode",
	"+/- speed",
	"arrows steer  q quit",
}
