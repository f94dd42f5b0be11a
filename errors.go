package strsplit

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidPattern indicates a pre-filter or token filter expression
	// failed to compile.
	ErrInvalidPattern = errors.New("strsplit: invalid pattern")

	// ErrNormalize indicates Unicode normalization failed for a line.
	ErrNormalize = errors.New("strsplit: normalization failed")

	// ErrDictNotFound indicates the dictionary or user dictionary file does
	// not exist.
	ErrDictNotFound = errors.New("strsplit: dictionary not found")

	// ErrInputNotFound indicates the input file does not exist.
	ErrInputNotFound = errors.New("strsplit: input file not found")
)
