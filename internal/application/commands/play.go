package commands

import (
	"context"
	"fmt"

	"journeydeck/internal/application"
)

// Frame is the state after one scripted step
type Frame struct {
	Step     application.Step
	Snapshot application.Snapshot
}

// PlayCommand replays a script of "action[:arg]" tokens on a fresh session
type PlayCommand struct {
	Script []string
}

// NewPlayCommand creates a new PlayCommand
func NewPlayCommand(script []string) *PlayCommand {
	return &PlayCommand{Script: script}
}

// Execute parses the whole script first, then applies it step by step.
// A malformed token aborts before any step runs.
func (c *PlayCommand) Execute(ctx context.Context) ([]Frame, error) {
	steps := make([]application.Step, 0, len(c.Script))
	for i, tok := range c.Script {
		step, err := application.ParseStep(tok)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, step)
	}

	session := application.NewSession()
	frames := make([]Frame, 0, len(steps))
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		snap, err := session.Apply(step)
		if err != nil {
			return frames, fmt.Errorf("step %d: %w", i+1, err)
		}
		frames = append(frames, Frame{Step: step, Snapshot: snap})
	}
	return frames, nil
}
