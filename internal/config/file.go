package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// File is the optional YAML configuration. Keys match the long flag names.
type File struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Cropping    *bool  `yaml:"cropping"`
	Naming      string `yaml:"naming"`
	CreateJSON  *bool  `yaml:"createJson"`
	Concurrency int    `yaml:"concurrency"`
	Quality     int    `yaml:"quality"`
}

// LoadFile reads configuration from a YAML file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &f, nil
}

// Apply fills in values from f for every field not explicitly set on the
// command line. set reports whether a flag was given.
func (in *Input) Apply(f *File, set func(field string) bool) {
	if f == nil {
		return
	}
	if set == nil {
		set = func(string) bool { return false }
	}

	if !set(FieldInput) && f.Input != "" {
		in.Input = f.Input
	}
	if !set(FieldOutput) && f.Output != "" {
		in.Output = f.Output
	}
	if !set(FieldWidth) && f.Width != 0 {
		in.Width = strconv.Itoa(f.Width)
	}
	if !set(FieldHeight) && f.Height != 0 {
		in.Height = strconv.Itoa(f.Height)
	}
	if !set(FieldCropping) && f.Cropping != nil {
		in.Cropping = *f.Cropping
	}
	if !set(FieldNaming) && f.Naming != "" {
		in.Naming = f.Naming
	}
	if !set(FieldCreateJSON) && f.CreateJSON != nil {
		in.CreateJSON = *f.CreateJSON
	}
	if !set(FieldConcurrency) && f.Concurrency != 0 {
		in.Concurrency = f.Concurrency
	}
	if !set(FieldQuality) && f.Quality != 0 {
		in.Quality = f.Quality
	}
}
