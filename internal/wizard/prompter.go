package wizard

import "errors"

// ErrAborted is returned by a Prompter when the user interrupts a prompt.
var ErrAborted = errors.New("wizard aborted")

// Question is everything a prompt primitive needs to render one step.
type Question struct {
	Step        Step
	Title       string
	Options     []string // single- and multi-select
	Hints       []string // optional secondary line per option
	Default     int      // pre-highlighted option for single-select
	DefaultText string   // shown for free-text; returned by the engine on empty input
}

// Prompter is the interaction capability the engine drives. Every method
// blocks until the user answers.
//
// Select returns exactly one index into q.Options. MultiSelect returns any
// subset of indices in no particular order. Input returns the literal text
// entered, which may be empty.
type Prompter interface {
	Select(q Question) (int, error)
	MultiSelect(q Question) ([]int, error)
	Input(q Question) (string, error)
}
