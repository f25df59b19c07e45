package bigramcount

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding matches any encoding failure via errors.Is.
var ErrInvalidEncoding = errors.New("input is not valid UTF-8")

// EncodingError reports the first invalid UTF-8 sequence in an input
// file.
type EncodingError struct {
	Path   string
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: invalid UTF-8 sequence at byte %d", e.Path, e.Offset)
}

func (e *EncodingError) Unwrap() error {
	return ErrInvalidEncoding
}
