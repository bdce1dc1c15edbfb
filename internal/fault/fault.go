// Package fault defines the error kinds a resize run can end with.
//
// Every failure surfaced to the command line is one of:
//   - [IOError]: listing, creating or writing files and directories
//   - [ImageProcessingError]: sniffing, decoding, resizing or encoding an image
//   - [ValidationError]: empty or malformed run configuration
//
// Callers classify with errors.As.
package fault

import "fmt"

// IOError reports a filesystem operation that failed.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ImageProcessingError reports an image that could not be transformed.
type ImageProcessingError struct {
	Path string
	Err  error
}

func (e *ImageProcessingError) Error() string {
	return fmt.Sprintf("process image %s: %v", e.Path, e.Err)
}

func (e *ImageProcessingError) Unwrap() error { return e.Err }

// ValidationError reports a configuration field that was missing or invalid.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IO is shorthand for constructing an *IOError.
func IO(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}

// Image is shorthand for constructing an *ImageProcessingError.
func Image(path string, err error) error {
	return &ImageProcessingError{Path: path, Err: err}
}

// Invalid is shorthand for constructing a *ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
