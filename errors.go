package stegmerge

import (
	"errors"
	"os"
)

var (
	// ErrDimensionMismatch is returned when the hidden image does not fit
	// inside the carrier image.
	ErrDimensionMismatch = errors.New("hidden image must be smaller than or equal to the carrier image in both dimensions")
	// ErrUnsupportedColorMode is returned for any image that is not 3
	// channel 8-bit RGB.
	ErrUnsupportedColorMode = errors.New("image must be in RGB mode")
	// ErrUnsupportedFormat is returned when an output path has an extension
	// that cannot be written losslessly.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// Kind categorizes an error for reporting.
type Kind int

const (
	// KindUnexpected covers anything not otherwise classified, such as
	// I/O failures or undecodable files.
	KindUnexpected Kind = iota
	// KindFileNotFound is an input that does not exist.
	KindFileNotFound
	// KindValue is a violated precondition on the images or arguments.
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindFileNotFound:
		return "file not found"
	case KindValue:
		return "value error"
	default:
		return "unexpected error"
	}
}

// KindOf classifies err.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrDimensionMismatch), errors.Is(err, ErrUnsupportedColorMode), errors.Is(err, ErrUnsupportedFormat):
		return KindValue
	case errors.Is(err, os.ErrNotExist):
		return KindFileNotFound
	default:
		return KindUnexpected
	}
}

// MissingPath returns the path named by a file not found error, if any.
func MissingPath(err error) (string, bool) {
	var pe *os.PathError
	if errors.As(err, &pe) && errors.Is(pe.Err, os.ErrNotExist) {
		return pe.Path, true
	}
	return "", false
}
