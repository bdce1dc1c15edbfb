package fsutil

import (
	"os"
	"regexp"

	"github.com/rs/zerolog/log"

	"framer/internal/fault"
)

var imageName = regexp.MustCompile(`^[^.].*\.(jpg|jpeg|png)$`)

// List returns the names of all entries in dir, in the order the
// filesystem reports them.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fault.IO("list", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	log.Debug().Str("dir", dir).Int("entries", len(names)).Msg("Listed directory")
	return names, nil
}

// FilterImages keeps the names that look like jpg, jpeg or png files.
// Matching is case-sensitive and relative order is preserved.
func FilterImages(names []string) []string {
	images := make([]string, 0, len(names))
	for _, name := range names {
		if IsImageName(name) {
			images = append(images, name)
		}
	}
	return images
}

// IsImageName reports whether name has a non-empty prefix followed by a
// supported image extension.
func IsImageName(name string) bool {
	return imageName.MatchString(name)
}
