package images

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failure so callers can branch on it with errors.Is.
type Kind string

// Error kinds. Each is itself an error so it can be used as an errors.Is target.
const (
	// ErrIO is returned when a path cannot be read or written.
	ErrIO Kind = "io error"
	// ErrDecode is returned when image data cannot be parsed.
	ErrDecode Kind = "decode error"
	// ErrFormatMismatch is returned when two inputs carry different encodings.
	ErrFormatMismatch Kind = "format mismatch"
	// ErrInvalidDimensions is returned for zero-sized or mismatched pixel grids.
	ErrInvalidDimensions Kind = "invalid dimensions"
	// ErrBufferTooSmall is returned when data exceeds a destination's capacity.
	ErrBufferTooSmall Kind = "buffer too small"
	// ErrEncode is returned when an image cannot be serialized.
	ErrEncode Kind = "encode error"
)

func (k Kind) Error() string {
	return string(k)
}

// Error is a failure of a single operation, tagged with its Kind.
type Error struct {
	// Kind is the failure class.
	Kind Kind
	// Path is the file involved, if any.
	Path string
	// Err is the underlying cause, if any.
	Err error
}

// NewError builds an *Error of the given kind.
func NewError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the error against its Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the Kind carried by err, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return ""
}

func dimensionsError(width, height int) error {
	return errors.Errorf("invalid image dimensions: %dx%d", width, height)
}

func bufferLengthError(got, want int) error {
	return errors.Errorf("pixel buffer holds %d bytes, want %d", got, want)
}
