// Package config resolves the settings of one resize run.
//
// Values come from three places, highest precedence first:
//   - command-line flags the user actually set
//   - an optional YAML file (--config)
//   - interactive prompts, for required fields still missing (or for
//     everything when --forceInteractive is set)
//
// The result is an immutable RunConfig handed to every stage.
package config

import (
	"strconv"
	"strings"

	"framer/internal/fault"
	"framer/internal/fsutil"
	"framer/internal/naming"
	"framer/internal/transform"
)

// Field names, shared by flags, the YAML file and validation errors.
const (
	FieldInput       = "input"
	FieldOutput      = "output"
	FieldWidth       = "width"
	FieldHeight      = "height"
	FieldCropping    = "cropping"
	FieldNaming      = "naming"
	FieldCreateJSON  = "createJson"
	FieldConcurrency = "concurrency"
	FieldQuality     = "quality"
)

// RunConfig is the resolved configuration of a run. Both directories end
// with a path separator.
type RunConfig struct {
	InputDir     string
	OutputDir    string
	MaxWidth     int
	MaxHeight    int
	Crop         bool
	Naming       naming.Policy
	EmitManifest bool
	Concurrency  int
	Quality      int
}

// Input holds raw, not yet validated values. An empty string means the
// field was not supplied.
type Input struct {
	Input            string
	Output           string
	Width            string
	Height           string
	Cropping         bool
	Naming           string
	CreateJSON       bool
	ForceInteractive bool
	Concurrency      int
	Quality          int
}

// DefaultInput returns the values used when nothing is supplied.
func DefaultInput() Input {
	return Input{
		Cropping: true,
		Naming:   string(naming.Same),
		Quality:  transform.DefaultQuality,
	}
}

// Missing lists the required fields that are still empty, in prompt order.
func (in Input) Missing() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{FieldInput, in.Input},
		{FieldOutput, in.Output},
		{FieldWidth, in.Width},
		{FieldHeight, in.Height},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// NeedsPrompt reports whether the interactive prompt has to run.
func (in Input) NeedsPrompt() bool {
	return in.ForceInteractive || len(in.Missing()) > 0
}

// Normalize validates the raw input and builds a RunConfig.
func (in Input) Normalize() (RunConfig, error) {
	if missing := in.Missing(); len(missing) > 0 {
		return RunConfig{}, fault.Invalid(missing[0], "can not be empty")
	}

	width, err := parseBound(FieldWidth, in.Width)
	if err != nil {
		return RunConfig{}, err
	}
	height, err := parseBound(FieldHeight, in.Height)
	if err != nil {
		return RunConfig{}, err
	}

	policy, err := naming.ParsePolicy(in.Naming)
	if err != nil {
		return RunConfig{}, fault.Invalid(FieldNaming, err.Error())
	}

	if in.Concurrency < 0 {
		return RunConfig{}, fault.Invalid(FieldConcurrency, "must not be negative")
	}
	quality := in.Quality
	if quality == 0 {
		quality = transform.DefaultQuality
	}
	if quality < 1 || quality > 100 {
		return RunConfig{}, fault.Invalid(FieldQuality, "must be between 1 and 100")
	}

	return RunConfig{
		InputDir:     fsutil.EnsureTrailingSeparator(strings.TrimSpace(in.Input)),
		OutputDir:    fsutil.EnsureTrailingSeparator(strings.TrimSpace(in.Output)),
		MaxWidth:     width,
		MaxHeight:    height,
		Crop:         in.Cropping,
		Naming:       policy,
		EmitManifest: in.CreateJSON,
		Concurrency:  in.Concurrency,
		Quality:      quality,
	}, nil
}

func parseBound(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fault.Invalid(field, "must be a whole number of pixels")
	}
	if n < 0 {
		return 0, fault.Invalid(field, "must not be negative")
	}
	return n, nil
}

// TransformOptions returns the per-image options of the run.
func (c RunConfig) TransformOptions() transform.Options {
	return transform.Options{
		MaxWidth:  c.MaxWidth,
		MaxHeight: c.MaxHeight,
		Crop:      c.Crop,
		Quality:   c.Quality,
	}
}
