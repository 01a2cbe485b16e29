package game

import "github.com/tomz197/asteroid-shooter/internal/object"

// Input is what a front-end collected since the previous tick. The embedded
// Controls are held keys; the remaining flags are edge-triggered commands.
type Input struct {
	object.Controls

	Fire         bool
	ShowReport   bool
	StartNewGame bool
	AdvanceLevel bool

	// Any is set when any key was pressed this frame, including keys that
	// map to nothing. It dismisses the report.
	Any bool
}

// commanded reports whether any edge-triggered command is set.
func (in Input) commanded() bool {
	return in.Fire || in.ShowReport || in.StartNewGame || in.AdvanceLevel
}
