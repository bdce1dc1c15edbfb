// Package processor runs the transform stage of a resize run: one job per
// image, all started together and joined, with results kept in listing
// order.
package processor

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"framer/internal/fault"
	"framer/internal/naming"
	"framer/internal/transform"
)

// Plan builds one job per image name. Names must already be filtered to
// supported images; the index of each name is its position in images.
func Plan(images []string, opts Options) ([]Job, error) {
	jobs := make([]Job, 0, len(images))
	for i, image := range images {
		outputName, err := naming.Name(image, opts.Naming, i)
		if err != nil {
			return nil, fault.Image(image, err)
		}
		jobs = append(jobs, Job{
			Index:      i,
			Name:       image,
			SourcePath: filepath.Join(opts.InputDir, image),
			DestPath:   filepath.Join(opts.OutputDir, outputName),
			OutputName: outputName,
		})
	}
	return jobs, nil
}

// Run transforms every job and waits for all of them. A failing job never
// stops its siblings; its error is kept in its Result. Results are indexed
// like jobs. updates may be nil.
func Run(ctx context.Context, jobs []Job, t transform.Transformer, opts Options, updates chan<- ProgressUpdate) (Summary, []Result) {
	results := make([]Result, len(jobs))
	started := time.Now()

	if updates != nil && len(jobs) > 0 {
		updates <- ProgressUpdate{TotalDelta: len(jobs)}
	}

	var g errgroup.Group
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	for i, job := range jobs {
		g.Go(func() error {
			results[i] = runJob(ctx, job, t, opts.Transform)
			if updates != nil {
				updates <- progressFor(results[i])
			}
			return nil
		})
	}
	_ = g.Wait()

	summary := Summarize(results)
	log.Info().
		Int("total", summary.Total).
		Int("processed", summary.Processed).
		Int("errors", summary.Errors).
		Int64("bytes_written", summary.BytesWritten).
		Dur("elapsed", time.Since(started)).
		Msg("Transform stage complete")

	return summary, results
}

func runJob(ctx context.Context, job Job, t transform.Transformer, opts transform.Options) Result {
	res := Result{Job: job}

	info, err := t.Transform(ctx, job.SourcePath, job.DestPath, opts)
	if err != nil {
		res.Err = err
		log.Error().Err(err).Str("file", job.Name).Msg("Failed to resize image")
		return res
	}

	res.Info = info
	log.Debug().
		Str("file", job.Name).
		Str("output", job.OutputName).
		Int("width", info.Width).
		Int("height", info.Height).
		Int64("size", info.Size).
		Msg("Image written")
	return res
}

func progressFor(res Result) ProgressUpdate {
	if res.Err != nil {
		return ProgressUpdate{ProcessedDelta: 1, ErrorDelta: 1}
	}
	return ProgressUpdate{ProcessedDelta: 1, BytesWrittenDelta: res.Info.Size}
}

// Summarize totals a set of results.
func Summarize(results []Result) Summary {
	summary := Summary{Total: len(results)}
	for _, res := range results {
		summary.Processed++
		if res.Err != nil {
			summary.Errors++
			continue
		}
		summary.BytesWritten += res.Info.Size
	}
	return summary
}

// FirstError returns the error of the earliest failed job in listing
// order, or nil.
func FirstError(results []Result) error {
	for _, res := range results {
		if res.Err != nil {
			return res.Err
		}
	}
	return nil
}
