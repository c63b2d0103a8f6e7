package preprocess

import (
	"errors"
	"image"
	"os"
	"syscall"

	"github.com/disintegration/imaging"
)

// TempPattern is the os.CreateTemp pattern used for processed outputs.
const TempPattern = "receiptor-*.png"

// Save encodes img as PNG at path, replacing any existing file.
func Save(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &SaveError{Path: path, Kind: writeKind(err, SaveUnwritable), Err: err}
	}
	return writePNG(f, img)
}

// SaveTemp writes img to a new uniquely named PNG in dir (os.TempDir() when
// dir is empty) and returns its path. Nothing is left behind on failure.
func SaveTemp(img image.Image, dir string) (string, error) {
	f, err := os.CreateTemp(dir, TempPattern)
	if err != nil {
		path := dir
		if path == "" {
			path = os.TempDir()
		}
		return "", &SaveError{Path: path, Kind: writeKind(err, SaveUnwritable), Err: err}
	}
	if err := writePNG(f, img); err != nil {
		return "", err
	}
	return f.Name(), nil
}

// writePNG encodes into f and closes it. The file is removed if either step
// fails.
func writePNG(f *os.File, img image.Image) error {
	path := f.Name()
	err := imaging.Encode(f, img, imaging.PNG)
	cerr := f.Close()
	if err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return &SaveError{Path: path, Kind: writeKind(err, SaveEncode), Err: err}
	}
	return nil
}

func writeKind(err error, fallback SaveKind) SaveKind {
	switch {
	case errors.Is(err, syscall.ENOSPC):
		return SaveNoSpace
	case errors.Is(err, os.ErrPermission), errors.Is(err, os.ErrNotExist):
		return SaveUnwritable
	}
	return fallback
}
