package preprocess

import (
	"errors"
	"fmt"
)

// LoadKind classifies why a source image could not be loaded.
type LoadKind string

const (
	LoadNotFound   LoadKind = "not_found"
	LoadUnreadable LoadKind = "unreadable"
	LoadFormat     LoadKind = "bad_format"
)

// SaveKind classifies why a processed image could not be persisted.
type SaveKind string

const (
	SaveUnwritable SaveKind = "unwritable"
	SaveNoSpace    SaveKind = "no_space"
	SaveEncode     SaveKind = "encode"
)

// LoadError is returned when the source image cannot be opened or decoded.
type LoadError struct {
	Path string
	Kind LoadKind
	Err  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("load image %q: %s", e.Path, e.Kind)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SaveError is returned when the processed image cannot be written.
type SaveError struct {
	Path string
	Kind SaveKind
	Err  error
}

func (e *SaveError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("save image %q: %s", e.Path, e.Kind)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *SaveError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsLoadError reports whether err (or anything it wraps) is a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// IsSaveError reports whether err (or anything it wraps) is a *SaveError.
func IsSaveError(err error) bool {
	var se *SaveError
	return errors.As(err, &se)
}
