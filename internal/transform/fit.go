package transform

import "math"

// FitSize scales w×h down to fit inside maxW×maxH, keeping the aspect
// ratio. It never enlarges. A bound of zero or less leaves that axis free.
func FitSize(w, h, maxW, maxH int) (int, int) {
	ratio := 1.0
	if maxW > 0 && w > 0 {
		ratio = math.Min(ratio, float64(maxW)/float64(w))
	}
	if maxH > 0 && h > 0 {
		ratio = math.Min(ratio, float64(maxH)/float64(h))
	}
	return scale(w, h, ratio)
}

// CoverSize scales w×h down so that it just covers maxW×maxH, keeping the
// aspect ratio. It never enlarges, so a source smaller than the box stays
// as is and is cropped to whatever of the box it can fill.
func CoverSize(w, h, maxW, maxH int) (int, int) {
	ratio := 0.0
	if maxW > 0 && w > 0 {
		ratio = math.Max(ratio, float64(maxW)/float64(w))
	}
	if maxH > 0 && h > 0 {
		ratio = math.Max(ratio, float64(maxH)/float64(h))
	}
	if ratio == 0 || ratio > 1 {
		ratio = 1
	}
	return scale(w, h, ratio)
}

func scale(w, h int, ratio float64) (int, int) {
	if ratio >= 1 {
		return w, h
	}
	nw := int(math.Round(float64(w) * ratio))
	nh := int(math.Round(float64(h) * ratio))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}
