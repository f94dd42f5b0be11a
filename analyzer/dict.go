package analyzer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
)

// IPA names the embedded IPA dictionary.
const IPA = "ipa"

// LoadDict loads a system dictionary. An empty path or "ipa" selects the
// embedded IPA dictionary; anything else is read as a kagome dictionary zip.
func LoadDict(path string) (*dict.Dict, error) {
	if path == "" || path == IPA {
		return ipa.Dict(), nil
	}
	if err := checkFile(path); err != nil {
		return nil, err
	}
	d, err := dict.LoadDictFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary %s: %w", path, err)
	}
	return d, nil
}

// LoadUserDict loads a kagome user dictionary. An empty path yields nil.
func LoadUserDict(path string) (*dict.UserDict, error) {
	if path == "" {
		return nil, nil
	}
	if err := checkFile(path); err != nil {
		return nil, err
	}
	u, err := dict.NewUserDict(path)
	if err != nil {
		return nil, fmt.Errorf("loading user dictionary %s: %w", path, err)
	}
	return u, nil
}

func checkFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrDictNotFound, path)
		}
		return fmt.Errorf("dictionary file: %w", err)
	}
	return nil
}
