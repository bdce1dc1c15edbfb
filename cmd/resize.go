package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"framer/internal/config"
	"framer/internal/fsutil"
	"framer/internal/manifest"
	"framer/internal/processor"
	"framer/internal/transform"
	"framer/internal/tui"
)

// runner drives one resize run from a resolved config to Done.
type runner struct {
	transformer  transform.Transformer
	out          io.Writer
	showProgress bool
	// progress shows updates until the channel closes. nil means the
	// bubbletea progress model.
	progress func(<-chan processor.ProgressUpdate) error
}

func (r runner) run(ctx context.Context, cfg config.RunConfig) error {
	log.Info().
		Str("input", cfg.InputDir).
		Str("output", cfg.OutputDir).
		Int("max_width", cfg.MaxWidth).
		Int("max_height", cfg.MaxHeight).
		Bool("crop", cfg.Crop).
		Str("naming", cfg.Naming.String()).
		Bool("manifest", cfg.EmitManifest).
		Msg("Starting resize run")

	names, err := fsutil.List(cfg.InputDir)
	if err != nil {
		return err
	}
	images := fsutil.FilterImages(names)
	log.Info().Int("images", len(images)).Int("skipped", len(names)-len(images)).Msg("Filtered input listing")

	if err := fsutil.EnsureDir(cfg.OutputDir); err != nil {
		return err
	}

	opts := processor.Options{
		InputDir:    cfg.InputDir,
		OutputDir:   cfg.OutputDir,
		Naming:      cfg.Naming,
		Transform:   cfg.TransformOptions(),
		Concurrency: cfg.Concurrency,
	}
	jobs, err := processor.Plan(images, opts)
	if err != nil {
		return err
	}

	summary, results := r.transform(ctx, jobs, opts)

	if cfg.EmitManifest {
		entries, err := manifest.Collect(results)
		if err != nil {
			return err
		}
		if err := manifest.Write(filepath.Join(cfg.OutputDir, manifest.FileName), entries); err != nil {
			return err
		}
	} else if err := processor.FirstError(results); err != nil {
		return err
	}

	rows := []tui.SummaryRow{
		{Label: "Images written", Value: fmt.Sprintf("%d", summary.Processed-summary.Errors)},
		{Label: "Skipped (not an image)", Value: fmt.Sprintf("%d", len(names)-len(images))},
		{Label: "Bytes written", Value: tui.FormatBytes(summary.BytesWritten)},
	}
	fmt.Fprintln(r.out, tui.RenderSummary(rows))
	fmt.Fprintln(r.out, "Done!")
	return nil
}

// transform runs the processor, streaming progress into the bubbletea
// model when a terminal is attached.
func (r runner) transform(ctx context.Context, jobs []processor.Job, opts processor.Options) (processor.Summary, []processor.Result) {
	if !r.showProgress {
		return processor.Run(ctx, jobs, r.transformer, opts, nil)
	}

	progress := r.progress
	if progress == nil {
		progress = runProgressUI
	}

	updates := make(chan processor.ProgressUpdate, 64)

	uiDone := make(chan struct{})
	go func() {
		if err := progress(updates); err != nil {
			log.Warn().Err(err).Msg("Progress display stopped")
		}
		close(uiDone)
		// keep jobs from blocking once the display is gone
		for range updates {
		}
	}()

	summary, results := processor.Run(ctx, jobs, r.transformer, opts, updates)
	close(updates)
	<-uiDone

	return summary, results
}

func runProgressUI(updates <-chan processor.ProgressUpdate) error {
	_, err := tea.NewProgram(tui.NewModel(updates)).Run()
	return err
}
