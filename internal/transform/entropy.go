package transform

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// sliceDivisor sets how much of the remaining extent one trimming step
// may remove.
const sliceDivisor = 16

// EntropyCrop crops img to width×height, keeping the busiest region. The
// axis with excess is trimmed from both ends a slice at a time, always
// dropping the slice whose greyscale histogram carries less entropy. A
// target of zero or one larger than the image leaves that axis alone.
func EntropyCrop(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if width <= 0 || width > b.Dx() {
		width = b.Dx()
	}
	if height <= 0 || height > b.Dy() {
		height = b.Dy()
	}
	if width == b.Dx() && height == b.Dy() {
		return img
	}

	gray := imaging.Grayscale(img)
	r := gray.Bounds()
	r = trim(gray, r, width, true)
	r = trim(gray, r, height, false)

	return imaging.Crop(img, r.Add(b.Min))
}

func trim(gray *image.NRGBA, r image.Rectangle, target int, horizontal bool) image.Rectangle {
	for {
		size := r.Dy()
		if horizontal {
			size = r.Dx()
		}
		excess := size - target
		if excess <= 0 {
			return r
		}

		slice := size / sliceDivisor
		if slice > excess {
			slice = excess
		}
		if slice < 1 {
			slice = 1
		}

		var lo, hi image.Rectangle
		if horizontal {
			lo = image.Rect(r.Min.X, r.Min.Y, r.Min.X+slice, r.Max.Y)
			hi = image.Rect(r.Max.X-slice, r.Min.Y, r.Max.X, r.Max.Y)
		} else {
			lo = image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+slice)
			hi = image.Rect(r.Min.X, r.Max.Y-slice, r.Max.X, r.Max.Y)
		}

		// ties drop the far edge, keeping the top-left
		dropLow := entropy(gray, lo) < entropy(gray, hi)
		switch {
		case horizontal && dropLow:
			r.Min.X += slice
		case horizontal:
			r.Max.X -= slice
		case dropLow:
			r.Min.Y += slice
		default:
			r.Max.Y -= slice
		}
	}
}

// entropy returns the Shannon entropy, in bits, of the luminance values
// inside r. gray must come from imaging.Grayscale so R holds the luminance.
func entropy(gray *image.NRGBA, r image.Rectangle) float64 {
	var hist [256]int
	total := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			hist[gray.Pix[gray.PixOffset(x, y)]]++
			total++
		}
	}
	if total == 0 {
		return 0
	}

	var e float64
	for _, n := range hist {
		if n == 0 {
			continue
		}
		p := float64(n) / float64(total)
		e -= p * math.Log2(p)
	}
	return e
}
