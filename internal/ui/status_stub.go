//go:build !ebiten

package ui

import "ca-engine/pkg/core"

// Status is a no-op placeholder for headless builds.
type Status struct{}

// NewStatus returns nil in the headless build.
func NewStatus(core.Sim, int) *Status { return nil }

// Width is zero in the headless build.
func (s *Status) Width() int { return 0 }

// Update is a no-op in the headless build.
func (s *Status) Update(bool) {}

// Draw is a no-op in the headless build.
func (s *Status) Draw(any, int, int) {}
