package transform

import (
	"errors"
	"image"
	"io"

	"github.com/disintegration/imaging"
	exif "github.com/dsoprea/go-exif/v3"
)

// EXIF orientation values (TIFF tag 0x0112).
const (
	orientationNormal     = 1
	orientationFlipH      = 2
	orientationRotate180  = 3
	orientationFlipV      = 4
	orientationTranspose  = 5
	orientationRotate270  = 6
	orientationTransverse = 7
	orientationRotate90   = 8
)

// readOrientation returns the IFD0 Orientation tag, or orientationNormal
// when the file carries no EXIF block.
func readOrientation(rs io.ReadSeeker) (int, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return orientationNormal, err
	}

	raw, err := exif.SearchAndExtractExifWithReader(rs)
	if err != nil {
		if errors.Is(err, exif.ErrNoExif) {
			return orientationNormal, nil
		}
		return orientationNormal, err
	}

	tags, _, err := exif.GetFlatExifData(raw, nil)
	if err != nil {
		return orientationNormal, err
	}

	for _, tag := range tags {
		if tag.TagName != "Orientation" || tag.IfdPath != "IFD" {
			continue
		}
		switch v := tag.Value.(type) {
		case []uint16:
			if len(v) > 0 {
				return validOrientation(int(v[0])), nil
			}
		case uint16:
			return validOrientation(int(v)), nil
		}
	}

	return orientationNormal, nil
}

func validOrientation(o int) int {
	if o < orientationNormal || o > orientationRotate90 {
		return orientationNormal
	}
	return o
}

// applyOrientation turns img upright according to an EXIF orientation.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case orientationFlipH:
		return imaging.FlipH(img)
	case orientationRotate180:
		return imaging.Rotate180(img)
	case orientationFlipV:
		return imaging.FlipV(img)
	case orientationTranspose:
		return imaging.Transpose(img)
	case orientationRotate270:
		return imaging.Rotate270(img)
	case orientationTransverse:
		return imaging.Transverse(img)
	case orientationRotate90:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
