package preprocess

import (
	"errors"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func writeFixture(t *testing.T, name string, w, h int, c color.Color) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := imaging.Save(imaging.New(w, h, c), p); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
	return p
}

func TestLoadPNG(t *testing.T) {
	p := writeFixture(t, "receipt.png", 12, 9, color.NRGBA{10, 20, 30, 255})
	img, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 9 {
		t.Fatalf("unexpected size %v", img.Bounds())
	}
}

func TestLoadJPEG(t *testing.T) {
	p := writeFixture(t, "receipt.jpg", 8, 8, color.NRGBA{200, 200, 200, 255})
	if _, err := Load(p); err != nil {
		t.Fatalf("load jpeg: %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.png")
	_, err := Load(p)
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError got %T %v", err, err)
	}
	if le.Kind != LoadNotFound {
		t.Fatalf("expected %s got %s", LoadNotFound, le.Kind)
	}
	if le.Path != p || !strings.Contains(err.Error(), p) {
		t.Fatalf("error does not carry path: %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected errors.Is(fs.ErrNotExist)")
	}
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	var le *LoadError
	if !errors.As(err, &le) || le.Kind != LoadUnreadable {
		t.Fatalf("expected unreadable LoadError got %v", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	p := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(p, []byte("definitely not an image"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(p)
	var le *LoadError
	if !errors.As(err, &le) || le.Kind != LoadFormat {
		t.Fatalf("expected bad_format LoadError got %v", err)
	}
	if !IsLoadError(err) || IsSaveError(err) {
		t.Fatalf("classification helpers disagree for %v", err)
	}
}
