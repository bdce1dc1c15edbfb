// Package manifest builds and writes images.json, the sidecar that lists
// every resized image with its dimensions and size.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"framer/internal/fault"
	"framer/internal/processor"
)

// FileName is the manifest's name inside the output directory.
const FileName = "images.json"

// Entry describes one written image.
type Entry struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"`
}

// Collect turns settled results into manifest entries, in result order.
// If any job failed, the first failure in that order is returned and no
// entries are produced.
func Collect(results []processor.Result) ([]Entry, error) {
	if err := processor.FirstError(results); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(results))
	for _, res := range results {
		entries = append(entries, Entry{
			Name:   res.OutputName,
			Width:  res.Info.Width,
			Height: res.Info.Height,
			Size:   res.Info.Size,
		})
	}
	return entries, nil
}

// Write stores entries as a JSON array at path, replacing any previous file.
func Write(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fault.IO("write", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".images-*.json")
	if err != nil {
		return fault.IO("write", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fault.IO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fault.IO("write", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fault.IO("write", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fault.IO("write", path, err)
	}

	log.Info().Str("path", path).Int("entries", len(entries)).Msg("Manifest written")
	return nil
}
