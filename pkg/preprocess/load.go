package preprocess

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"

	// webp is not covered by imaging's own decoders.
	_ "golang.org/x/image/webp"
)

// Load opens and decodes the image at path. EXIF orientation is applied so
// phone captures come out upright.
func Load(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: openKind(err), Err: err}
	}
	if info.IsDir() {
		return nil, &LoadError{Path: path, Kind: LoadUnreadable, Err: errIsDir}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Kind: openKind(err), Err: err}
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &LoadError{Path: path, Kind: LoadFormat, Err: fmt.Errorf("decode: %w", err)}
	}
	return img, nil
}

var errIsDir = errors.New("is a directory")

func openKind(err error) LoadKind {
	if errors.Is(err, fs.ErrNotExist) {
		return LoadNotFound
	}
	return LoadUnreadable
}
