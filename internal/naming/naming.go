// Package naming derives output file names from input names.
package naming

import (
	"fmt"
	"strconv"
	"strings"
)

// numericalWidth is the minimum digit count of a Numerical name: index 0
// is "000.jpg", matching the "001.jpg" menu label. The older resizer padded
// to four digits ("0000.jpg"); keep three.
const numericalWidth = 3

// Name returns the output file name for original, the index-th image of
// the filtered listing.
func Name(original string, policy Policy, index int) (string, error) {
	switch policy {
	case Same, Slug, "":
		return original, nil
	case Numerical:
		ext, ok := Extension(original)
		if !ok {
			return "", fmt.Errorf("name %q has no extension", original)
		}
		return Pad(index, numericalWidth-1) + "." + ext, nil
	default:
		return "", fmt.Errorf("unknown naming policy %q", policy)
	}
}

// Pad left-pads n with zeros to a length of size+1, or leaves it alone
// when it is already at least that long.
func Pad(n, size int) string {
	s := strconv.Itoa(n)
	if missing := size + 1 - len(s); missing > 0 {
		return strings.Repeat("0", missing) + s
	}
	return s
}

// Extension returns the suffix after the last dot of name, with jpeg
// normalized to jpg. The part before the dot must be non-empty.
func Extension(name string) (string, bool) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 || idx == len(name)-1 {
		return "", false
	}
	ext := name[idx+1:]
	if ext == "jpeg" {
		return "jpg", true
	}
	return ext, true
}
