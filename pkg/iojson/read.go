package iojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Read decodes a JSON value of type T from the file at path, or from
// stdin when path is empty. Reading stdin requires piped input; an
// interactive terminal is rejected rather than hanging on a read.
func Read[T any](path string) (T, error) {
	var v T

	var r io.Reader
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return v, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	} else {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return v, errors.New("no input provided (stdin is a terminal); pass --file or pipe JSON")
		}
		r = os.Stdin
	}

	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return v, fmt.Errorf("decode JSON: %w", err)
	}

	return v, nil
}
