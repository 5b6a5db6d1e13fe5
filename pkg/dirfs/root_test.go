package dirfs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenRoot_ReadOnlyRejectsWrite(t *testing.T) {
	r, err := OpenRoot(t.TempDir(), ModeRead)
	if err != nil {
		t.Fatalf("OpenRoot: %v", err)
	}
	if err := r.RequireWrite(); !errors.Is(err, ErrPermission) {
		t.Errorf("RequireWrite on read-only root = %v, want ErrPermission", err)
	}
}

func TestOpenRoot_ReadWrite(t *testing.T) {
	r, err := OpenRoot(t.TempDir(), ModeReadWrite)
	if err != nil {
		t.Fatalf("OpenRoot: %v", err)
	}
	if err := r.RequireWrite(); err != nil {
		t.Errorf("RequireWrite: %v", err)
	}
	if r.Mode() != ModeReadWrite {
		t.Errorf("Mode = %v, want ModeReadWrite", r.Mode())
	}
}

func TestRoot_DescendsIntoSubdirectory(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "nes", "covers"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "nes", "covers", "Zelda.jpg"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := OpenRoot(base, ModeRead)
	if err != nil {
		t.Fatalf("OpenRoot: %v", err)
	}

	entries, err := r.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "nes" || entries[0].Kind != KindDir {
		t.Fatalf("List = %v, want one nes directory", entries)
	}

	// Root's Dir method must resolve to the subdirectory call, not the
	// underlying field.
	console, err := r.Dir("nes")
	if err != nil {
		t.Fatalf("Dir(nes): %v", err)
	}
	covers, err := console.Dir("covers")
	if err != nil {
		t.Fatalf("Dir(covers): %v", err)
	}
	ref, err := covers.Open("Zelda.jpg")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if ref.Name() != "Zelda.jpg" {
		t.Errorf("Name = %q, want Zelda.jpg", ref.Name())
	}

	if _, err := r.Dir("snes"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Dir(missing) = %v, want ErrNotFound", err)
	}
}

func TestModeString(t *testing.T) {
	if got := ModeRead.String(); got != "read" {
		t.Errorf("ModeRead.String() = %q", got)
	}
	if got := ModeReadWrite.String(); got != "readwrite" {
		t.Errorf("ModeReadWrite.String() = %q", got)
	}
}
