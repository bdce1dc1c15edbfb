package fault

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorsAsThroughWrapping(t *testing.T) {
	base := IO("list", "/missing", fs.ErrNotExist)
	wrapped := fmt.Errorf("listing input: %w", base)

	var ioErr *IOError
	if !errors.As(wrapped, &ioErr) {
		t.Fatalf("expected IOError in chain, got %v", wrapped)
	}
	if ioErr.Op != "list" || ioErr.Path != "/missing" {
		t.Fatalf("unexpected fields: %+v", ioErr)
	}
	if !errors.Is(wrapped, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist in chain")
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"io", IO("mkdir", "out/a", errors.New("denied")), "mkdir out/a: denied"},
		{"image", Image("in/a.jpg", errors.New("bad header")), "process image in/a.jpg: bad header"},
		{"validation", Invalid("width", "can not be empty"), "invalid width: can not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
