// Package fs writes extracted incidents to local files.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/blotter"
)

// DefaultJSONPath is where the JSON artifact is written unless configured otherwise.
const DefaultJSONPath = "incidents.json"

// Ensure JSONWriter implements blotter.IncidentWriter at compile time.
var _ blotter.IncidentWriter = (*JSONWriter)(nil)

// JSONWriter writes incidents as an indented JSON array.
// The file is written to path.tmp and renamed into place, so readers never
// see a partial artifact.
type JSONWriter struct {
	path string
}

// NewJSONWriter creates a JSONWriter targeting path.
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

// Path returns the artifact path.
func (w *JSONWriter) Path() string {
	return w.path
}

// WriteIncidents validates the encoded incidents against the artifact
// schema and replaces the file at the configured path.
func (w *JSONWriter) WriteIncidents(ctx context.Context, incidents []*blotter.Incident) error {
	if incidents == nil {
		incidents = []*blotter.Incident{}
	}

	data, err := json.MarshalIndent(incidents, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal incidents: %w", err)
	}
	if err := validate(data); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, w.path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func validate(data []byte) error {
	v, err := jsonschemaValue(data)
	if err != nil {
		return err
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("incidents do not match schema: %w", err)
	}
	return nil
}

// jsonschemaValue decodes data the way the validator expects, with
// numbers kept as json.Number.
func jsonschemaValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("unmarshal incidents: %w", err)
	}
	return v, nil
}
