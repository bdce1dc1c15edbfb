package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"framer/internal/fault"
)

var errNotDir = errors.New("exists and is not a directory")

// EnsureDir creates every missing segment of path, shortest prefix first.
// Segments that already exist are left alone, so calling it twice is a
// no-op. The first segment that cannot be created aborts with an IOError.
func EnsureDir(path string) error {
	sep := string(filepath.Separator)
	clean := filepath.Clean(path)

	built := ""
	if filepath.IsAbs(clean) {
		built = filepath.VolumeName(clean) + sep
	}
	rest := strings.TrimPrefix(clean, built)

	for _, segment := range strings.Split(rest, sep) {
		if segment == "" || segment == "." {
			continue
		}
		built = filepath.Join(built, segment)

		info, err := os.Stat(built)
		if err == nil {
			if !info.IsDir() {
				return fault.IO("mkdir", built, errNotDir)
			}
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fault.IO("stat", built, err)
		}

		if err := os.Mkdir(built, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
			return fault.IO("mkdir", built, fmt.Errorf("create segment: %w", err))
		}
		log.Debug().Str("dir", built).Msg("Created directory")
	}

	return nil
}
