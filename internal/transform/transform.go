// Package transform resizes a single image file and writes the result.
//
// The pipeline for one image is:
//  1. sniff the header so non-image bytes fail fast
//  2. decode and apply the EXIF orientation
//  3. scale down to fit (or, when cropping, to cover) the target box
//  4. entropy-crop to the target box when cropping
//  5. encode by destination extension into a temp file, then rename
package transform

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"

	"framer/internal/fault"
	"framer/pkg/imgutil"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 80

// Options bound a single transform.
type Options struct {
	MaxWidth  int
	MaxHeight int
	Crop      bool
	Quality   int
}

// Info describes a written output image.
type Info struct {
	Width  int
	Height int
	Size   int64
}

// Transformer resizes src into dst.
type Transformer interface {
	Transform(ctx context.Context, src, dst string, opts Options) (Info, error)
}

// Imaging is the Transformer backed by github.com/disintegration/imaging.
type Imaging struct {
	// Filter is the resampling filter. Zero value means Lanczos.
	Filter imaging.ResampleFilter
}

var _ Transformer = Imaging{}

// Transform implements Transformer.
func (t Imaging) Transform(ctx context.Context, src, dst string, opts Options) (Info, error) {
	if err := ctx.Err(); err != nil {
		return Info{}, err
	}

	img, err := load(src)
	if err != nil {
		return Info{}, fault.Image(src, err)
	}

	orig := img.Bounds()
	img = t.resize(img, opts)

	log.Debug().
		Str("path", src).
		Int("orig_width", orig.Dx()).
		Int("orig_height", orig.Dy()).
		Int("new_width", img.Bounds().Dx()).
		Int("new_height", img.Bounds().Dy()).
		Bool("crop", opts.Crop).
		Msg("Resized image")

	return write(img, dst, opts.Quality)
}

func (t Imaging) resize(img image.Image, opts Options) image.Image {
	filter := t.Filter
	if filter.Support == 0 && filter.Kernel == nil {
		filter = imaging.Lanczos
	}

	b := img.Bounds()
	var w, h int
	if opts.Crop {
		w, h = CoverSize(b.Dx(), b.Dy(), opts.MaxWidth, opts.MaxHeight)
	} else {
		w, h = FitSize(b.Dx(), b.Dy(), opts.MaxWidth, opts.MaxHeight)
	}
	if w != b.Dx() || h != b.Dy() {
		img = imaging.Resize(img, w, h, filter)
	}

	if opts.Crop {
		img = EntropyCrop(img, opts.MaxWidth, opts.MaxHeight)
	}
	return img
}

func load(src string) (image.Image, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	kind, err := imgutil.SniffReader(f)
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if kind == imgutil.KindUnknown {
		return nil, errors.New("unsupported image format")
	}
	if !kind.MatchesExtension(filepath.Ext(src)) {
		log.Warn().Str("path", src).Str("detected", kind.String()).Msg("File extension does not match image contents")
	}

	orientation, err := readOrientation(f)
	if err != nil {
		log.Warn().Err(err).Str("path", src).Msg("Could not read EXIF orientation, assuming upright")
		orientation = orientationNormal
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return applyOrientation(img, orientation), nil
}

func write(img image.Image, dst string, quality int) (Info, error) {
	format, err := imaging.FormatFromFilename(dst)
	if err != nil {
		return Info{}, fault.Image(dst, err)
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	dir := filepath.Dir(dst)
	tmp, err := os.CreateTemp(dir, ".framer-*.tmp")
	if err != nil {
		return Info{}, fault.IO("write", dst, err)
	}
	defer os.Remove(tmp.Name())

	if err := imaging.Encode(tmp, img, format, imaging.JPEGQuality(quality)); err != nil {
		_ = tmp.Close()
		return Info{}, fault.Image(dst, fmt.Errorf("encode: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return Info{}, fault.IO("write", dst, err)
	}
	if err := tmp.Close(); err != nil {
		return Info{}, fault.IO("write", dst, err)
	}
	if err := replaceFile(tmp.Name(), dst); err != nil {
		return Info{}, fault.IO("write", dst, err)
	}

	stat, err := os.Stat(dst)
	if err != nil {
		return Info{}, fault.IO("stat", dst, err)
	}

	b := img.Bounds()
	return Info{Width: b.Dx(), Height: b.Dy(), Size: stat.Size()}, nil
}

func replaceFile(tmpPath, destPath string) error {
	if err := os.Rename(tmpPath, destPath); err == nil {
		return nil
	}
	if err := os.Remove(destPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tmpPath, destPath)
}
