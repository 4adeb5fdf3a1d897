package ui

import (
	"slices"
	"testing"

	"ca-engine/pkg/core"
)

func TestLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "World", Params: []core.Parameter{core.IntParam("w", "Width", 8)}},
		{Name: "Snake", Params: []core.Parameter{core.TextParam("action", "Action", "move")}},
	}}
	got := Lines("Snake", snap)
	want := []string{"Snake", "", "WORLD", "Width: 8", "", "SNAKE", "Action: move"}
	if !slices.Equal(got, want) {
		t.Fatalf("Lines = %q, want %q", got, want)
	}
}

func TestLinesWithoutTitle(t *testing.T) {
	if got := Lines("", core.ParameterSnapshot{}); len(got) != 0 {
		t.Fatalf("Lines of empty snapshot = %q", got)
	}
}
