package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Load decodes a JSON file from the embedded filesystem into T.
// Unknown fields are rejected so a typo in a data file fails loudly.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("gamedata: read %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("gamedata: decode %s: %w", filename, err)
	}

	return result, nil
}
