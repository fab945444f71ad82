package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	if err := os.MkdirAll(otherDir, 0o755); err != nil {
		t.Fatalf("failed to create other dir: %v", err)
	}

	target := filepath.Join(otherDir, "index.html")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(target)
	if got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}

	target := filepath.Join(baseDir, "nested", "index.html")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(filepath.Join("nested", "index.html"))
	if got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}

func TestToLineCol(t *testing.T) {
	// "ab\ncd\n\nef"
	idx := buildLineIndex([]byte("ab\ncd\n\nef"))

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{name: "start of file", off: 0, want: LineCol{Line: 1, Col: 1}},
		{name: "before first newline", off: 2, want: LineCol{Line: 1, Col: 3}},
		{name: "start of second line", off: 3, want: LineCol{Line: 2, Col: 1}},
		{name: "empty line", off: 6, want: LineCol{Line: 3, Col: 1}},
		{name: "start of last line", off: 7, want: LineCol{Line: 4, Col: 1}},
		{name: "last byte", off: 8, want: LineCol{Line: 4, Col: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toLineCol(idx, tt.off); got != tt.want {
				t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
			}
		})
	}
}

func TestToLineColNoNewlines(t *testing.T) {
	idx := buildLineIndex([]byte("plain"))
	if got, want := toLineCol(idx, 4), (LineCol{Line: 1, Col: 5}); got != want {
		t.Errorf("toLineCol(4) = %+v, want %+v", got, want)
	}
}
