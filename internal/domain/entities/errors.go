package entities

import "errors"

var (
	// ErrNilDocument is returned when extraction is asked to process a nil document
	ErrNilDocument = errors.New("document is nil")

	// ErrInvalidEncoding is returned for documents that are not valid UTF-8
	ErrInvalidEncoding = errors.New("document is not valid UTF-8")

	// ErrParse is returned when the markdown tokenizer fails
	ErrParse = errors.New("markdown parse failed")
)

// IsInputError reports whether err was caused by the caller's document
func IsInputError(err error) bool {
	return errors.Is(err, ErrNilDocument) || errors.Is(err, ErrInvalidEncoding) || errors.Is(err, ErrParse)
}
