package mnemonic

import (
	"errors"
	"fmt"
)

// Validation errors. All of them are final: retrying with the same input
// yields the same error.
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrInvalidFormat        = errors.New("invalid mnemonic format")
	ErrInvalidEntropyLength = errors.New("invalid entropy length")
	ErrInvalidWordCount     = errors.New("invalid word count")
	ErrUnknownWord          = errors.New("unknown word")
	ErrUnknownLanguage      = errors.New("unknown language")
)

// WordError reports a phrase word that is missing from the word list.
type WordError struct {
	Word     string
	Position int
	Language Language
}

func (e *WordError) Error() string {
	return fmt.Sprintf("unknown word %q at position %d (%s)", e.Word, e.Position, e.Language)
}

// Unwrap lets errors.Is match ErrUnknownWord.
func (e *WordError) Unwrap() error {
	return ErrUnknownWord
}
