package output

import (
	"errors"
	"fmt"
	"os"
)

// DefaultPath is relative to the working directory.
const DefaultPath = "output.txt"

var ErrIO = errors.New("failed to write output")

// Write creates or truncates path and writes text to it.
func Write(path, text string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIO, path, err)
	}

	return nil
}
