// Package imgutil recognizes the image containers framer can resize by
// their leading signature bytes.
package imgutil

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
)

// Kind identifies a supported image type.
type Kind int

const (
	KindUnknown Kind = iota
	KindJPEG
	KindPNG
)

func (k Kind) String() string {
	switch k {
	case KindJPEG:
		return "jpeg"
	case KindPNG:
		return "png"
	default:
		return "unknown"
	}
}

// MatchesExtension reports whether ext (with or without the leading dot,
// any case) is a file extension normally used for k.
func (k Kind) MatchesExtension(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch k {
	case KindJPEG:
		return ext == "jpg" || ext == "jpeg"
	case KindPNG:
		return ext == "png"
	default:
		return false
	}
}

const headerLen = 8

var (
	pngSig  = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	jpegSig = []byte{0xff, 0xd8, 0xff}
)

// ErrShortHeader is returned when fewer than 8 bytes are available.
var ErrShortHeader = errors.New("header too short")

// DetectHeader inspects the first 8 bytes of a file for known signatures.
func DetectHeader(header []byte) (Kind, error) {
	if len(header) < headerLen {
		return KindUnknown, ErrShortHeader
	}

	switch {
	case bytes.HasPrefix(header, jpegSig):
		return KindJPEG, nil
	case bytes.HasPrefix(header, pngSig):
		return KindPNG, nil
	default:
		return KindUnknown, nil
	}
}

// SniffFile reads the first 8 bytes of a file to determine its type.
func SniffFile(path string) (Kind, error) {
	f, err := os.Open(path)
	if err != nil {
		return KindUnknown, err
	}
	defer f.Close()

	return SniffReader(f)
}

// SniffReader reads the first 8 bytes from r and determines its type.
func SniffReader(r io.Reader) (Kind, error) {
	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return KindUnknown, ErrShortHeader
		}
		return KindUnknown, err
	}

	return DetectHeader(header)
}
