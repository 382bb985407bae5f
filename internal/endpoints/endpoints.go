// Package endpoints serves the static description of the API's routes.
package endpoints

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

//go:embed endpoints.json
var document []byte

// ErrMissingDescription is returned when an entry lacks a description.
var ErrMissingDescription = errors.New("endpoint entry has no description")

// Descriptions maps "METHOD /path" to the raw JSON describing that endpoint.
// Entries are kept as raw JSON so they are served exactly as written.
type Descriptions map[string]json.RawMessage

type entry struct {
	Description string `json:"description"`
}

// Load parses the embedded document.
func Load() (Descriptions, error) {
	return Parse(document)
}

// Parse decodes and checks an endpoint document. Every entry must be an
// object with a non-empty description.
func Parse(data []byte) (Descriptions, error) {
	var d Descriptions
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode endpoint document: %w", err)
	}

	for key, raw := range d {
		var e entry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decode endpoint %q: %w", key, err)
		}
		if e.Description == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingDescription, key)
		}
	}
	return d, nil
}
