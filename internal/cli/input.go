package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var errNoInput = errors.New("no input: pass a file or pipe data on stdin")

// readInput reads path, or stdin when path is empty. A terminal on stdin is
// not read.
func readInput(path string, stdin io.Reader) ([]byte, string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("reading file: %w", err)
		}
		return data, path, nil
	}

	if f, ok := stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return nil, "", fmt.Errorf("checking stdin: %w", err)
		}
		if stat.Mode()&os.ModeCharDevice != 0 {
			return nil, "", errNoInput
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, "", fmt.Errorf("reading from stdin: %w", err)
	}
	return data, "stdin", nil
}
