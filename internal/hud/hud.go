// Package hud formats the population line shown by both hosts.
package hud

import "fmt"

// Stats is the simulation state the hosts report. *physics.World satisfies it.
type Stats interface {
	Len() int
	MaxBalls() int
	Splits() int
	Steps() int
}

// Text formats the population line, e.g. "Balls: 12/512  Splits: 11  Step: 340".
func Text(s Stats, paused bool) string {
	text := fmt.Sprintf("Balls: %d/%d  Splits: %d  Step: %d", s.Len(), s.MaxBalls(), s.Splits(), s.Steps())
	if paused {
		text += "  [paused]"
	}
	return text
}
