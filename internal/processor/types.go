package processor

import (
	"framer/internal/naming"
	"framer/internal/transform"
)

type Options struct {
	InputDir    string
	OutputDir   string
	Naming      naming.Policy
	Transform   transform.Options
	Concurrency int
}

// Job is one image to resize. Index is its position in the filtered
// listing and decides both its output name and its manifest slot.
type Job struct {
	Index      int
	Name       string
	SourcePath string
	DestPath   string
	OutputName string
}

type Result struct {
	Job
	Info transform.Info
	Err  error
}

type Summary struct {
	Total        int
	Processed    int
	Errors       int
	BytesWritten int64
}

type ProgressUpdate struct {
	TotalDelta        int
	ProcessedDelta    int
	ErrorDelta        int
	BytesWrittenDelta int64
}
