package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"bookmark-extension/internal/config"
)

func readIcons(t *testing.T, root string) map[int][]byte {
	t.Helper()
	out := map[int][]byte{}
	dir := config.IconsDir(root)
	for _, size := range config.IconSizes {
		data, err := os.ReadFile(config.IconFile(dir, size))
		if err != nil {
			t.Fatalf("icon%d missing: %v", size, err)
		}
		out[size] = data
	}
	return out
}

func TestRunCreatesIconSet(t *testing.T) {
	root := t.TempDir()
	if err := run(root, ""); err != nil {
		t.Fatalf("run: %v", err)
	}

	for size, data := range readIcons(t, root) {
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("icon%d: %v", size, err)
		}
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("icon%d decoded as %dx%d", size, b.Dx(), b.Dy())
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	root := t.TempDir()
	if err := run(root, ""); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := readIcons(t, root)

	// A sibling file in the icons directory must survive a rerun
	sibling := filepath.Join(config.IconsDir(root), "notes.txt")
	if err := os.WriteFile(sibling, []byte("keep me"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := run(root, ""); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second := readIcons(t, root)

	for size := range first {
		if !bytes.Equal(first[size], second[size]) {
			t.Errorf("icon%d differs between runs", size)
		}
	}

	data, err := os.ReadFile(sibling)
	if err != nil || string(data) != "keep me" {
		t.Errorf("sibling file was disturbed: %v", err)
	}
}

func TestRunReportsMissingLogo(t *testing.T) {
	root := t.TempDir()
	if err := run(root, filepath.Join(root, "no-such-logo.png")); err == nil {
		t.Error("run with a missing logo succeeded, want error")
	}
}
