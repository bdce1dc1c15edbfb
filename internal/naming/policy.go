package naming

import (
	"fmt"
	"strings"
)

// Policy selects how output files are named.
type Policy string

const (
	// Same keeps the input file name.
	Same Policy = "same"
	// Numerical names outputs by their position in the listing: 000.jpg, 001.png, ...
	Numerical Policy = "numerical"
	// Slug is reserved. It is accepted for compatibility and currently
	// behaves like Same.
	Slug Policy = "slug"
)

// Choices are the policies offered interactively.
var Choices = []Choice{
	{Label: "Same as input", Policy: Same},
	{Label: `Numerical ("001.jpg" etc.)`, Policy: Numerical},
}

// Choice pairs a policy with its menu label.
type Choice struct {
	Label  string
	Policy Policy
}

// ParsePolicy maps a flag or config value onto a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case Same, Numerical, Slug:
		return p, nil
	case "":
		return Same, nil
	default:
		return "", fmt.Errorf("unknown naming policy %q (want same or numerical)", s)
	}
}

func (p Policy) String() string { return string(p) }
