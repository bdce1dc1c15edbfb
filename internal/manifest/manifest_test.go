package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"framer/internal/fault"
	"framer/internal/processor"
	"framer/internal/transform"
)

func result(i int, name string, w, h int, size int64, err error) processor.Result {
	return processor.Result{
		Job:  processor.Job{Index: i, OutputName: name},
		Info: transform.Info{Width: w, Height: h, Size: size},
		Err:  err,
	}
}

func TestCollectKeepsOrder(t *testing.T) {
	results := []processor.Result{
		result(0, "000.jpg", 100, 50, 1200, nil),
		result(1, "001.png", 80, 100, 3400, nil),
	}

	entries, err := Collect(results)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	want := []Entry{
		{Name: "000.jpg", Width: 100, Height: 50, Size: 1200},
		{Name: "001.png", Width: 80, Height: 100, Size: 3400},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestCollectPropagatesFirstFailure(t *testing.T) {
	first := fault.Image("b.jpg", errors.New("corrupt"))
	results := []processor.Result{
		result(0, "a.jpg", 1, 1, 1, nil),
		result(1, "b.jpg", 0, 0, 0, first),
		result(2, "c.jpg", 0, 0, 0, fault.Image("c.jpg", errors.New("also corrupt"))),
	}

	entries, err := Collect(results)
	if !errors.Is(err, first) {
		t.Fatalf("expected the first failure, got %v", err)
	}
	if entries != nil {
		t.Fatalf("expected no entries, got %v", entries)
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	entries := []Entry{{Name: "000.jpg", Width: 100, Height: 100, Size: 2048}}

	if err := Write(path, entries); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := `[{"name":"000.jpg","width":100,"height":100,"size":2048}]`
	if string(data) != want {
		t.Fatalf("manifest = %s, want %s", data, want)
	}

	var decoded []Entry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
}

func TestWriteEmptyIsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := Write(path, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "[]" {
		t.Fatalf("expected empty array, got %s", data)
	}
}

func TestWriteMissingDirectory(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", FileName), nil)
	var ioErr *fault.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %v", err)
	}
}
