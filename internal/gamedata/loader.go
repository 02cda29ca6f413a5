// Package gamedata provides the data-driven entity definitions and
// population tables embedded with the game, plus utilities for loading them.
package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/samdwyer/embercrypt/data"
)

// Load decodes one of the embedded JSON files.
func Load[T any](filename string) (T, error) {
	return LoadFS[T](data.FS(), filename)
}

// LoadFS decodes a JSON file from fsys. Unknown fields are rejected so a
// typo in a template surfaces at startup instead of as a silent zero value.
func LoadFS[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("read %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("parse %s: %w", filename, err)
	}
	return result, nil
}
