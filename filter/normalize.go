package filter

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrMalformed is returned by Normalize for input that is not valid UTF-8.
var ErrMalformed = errors.New("filter: malformed unicode input")

// Normalize applies NFKC compatibility normalization and Unicode case
// folding. The result is stable: normalizing it again returns it unchanged.
func Normalize(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if !utf8.ValidString(s) {
		return "", ErrMalformed
	}

	// Folding can produce sequences that are no longer NFKC, hence the
	// second pass.
	t := transform.Chain(norm.NFKC, cases.Fold(), norm.NFKC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return "", fmt.Errorf("normalizing: %w", err)
	}
	return out, nil
}
