package config

import (
	"errors"
	"slices"

	"framer/internal/fault"
	"framer/internal/naming"
)

// ErrNoTerminal is returned when prompting is required but impossible.
var ErrNoTerminal = errors.New("not set and no interactive terminal to ask")

// Prompter asks the user for values.
type Prompter interface {
	Text(question, initial string) (string, error)
	Confirm(question string, def bool) (bool, error)
	Select(question string, choices []naming.Choice, def naming.Policy) (naming.Policy, error)
}

// Questions shown for each prompted field.
const (
	QuestionInput      = "Where are the images?"
	QuestionOutput     = "Where should the images be saved?"
	QuestionWidth      = "Max width of image"
	QuestionHeight     = "Max height of image"
	QuestionCropping   = "Should the images be cropped?"
	QuestionNaming     = "How should output images be named?"
	QuestionCreateJSON = "Should a json with image data be generated?"
)

// Resolve completes in through p when needed and returns the normalized
// RunConfig. p may be nil when no terminal is attached; then any missing
// required field is a ValidationError.
func Resolve(in Input, p Prompter) (RunConfig, error) {
	if !in.NeedsPrompt() {
		return in.Normalize()
	}
	if p == nil {
		if missing := in.Missing(); len(missing) > 0 {
			return RunConfig{}, fault.Invalid(missing[0], ErrNoTerminal.Error())
		}
		return in.Normalize()
	}

	missing := in.Missing()
	ask := func(field string) bool {
		return in.ForceInteractive || slices.Contains(missing, field)
	}

	for _, q := range []struct {
		field    string
		question string
		value    *string
	}{
		{FieldInput, QuestionInput, &in.Input},
		{FieldOutput, QuestionOutput, &in.Output},
		{FieldWidth, QuestionWidth, &in.Width},
		{FieldHeight, QuestionHeight, &in.Height},
	} {
		if !ask(q.field) {
			continue
		}
		answer, err := p.Text(q.question, *q.value)
		if err != nil {
			return RunConfig{}, err
		}
		if answer == "" {
			return RunConfig{}, fault.Invalid(q.field, "can not be empty")
		}
		*q.value = answer
	}

	var err error
	if in.Cropping, err = p.Confirm(QuestionCropping, in.Cropping); err != nil {
		return RunConfig{}, err
	}

	def, err := naming.ParsePolicy(in.Naming)
	if err != nil {
		def = naming.Same
	}
	policy, err := p.Select(QuestionNaming, naming.Choices, def)
	if err != nil {
		return RunConfig{}, err
	}
	in.Naming = string(policy)

	if in.CreateJSON, err = p.Confirm(QuestionCreateJSON, in.CreateJSON); err != nil {
		return RunConfig{}, err
	}

	return in.Normalize()
}
