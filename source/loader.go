package source

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a file is not valid UTF-8 text
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Load reads the whole file into memory as text
func Load(file string) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", file, ErrInvalidUTF8)
	}

	return string(data), nil
}
