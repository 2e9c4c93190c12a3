package export

import (
	"encoding/json"
	"fmt"
)

// JSONExporter renders records into a pretty-printed JSON array. Unlike the
// CSV and PDF paths it keeps the original value types, so exporting and
// re-parsing yields the in-memory collection unchanged.
type JSONExporter struct{}

// NewJSONExporter builds a JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Render produces an indented JSON array for the records.
func (e *JSONExporter) Render(records []map[string]interface{}) ([]byte, error) {
	if records == nil {
		records = []map[string]interface{}{}
	}
	encoded, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render json: %w", err)
	}
	return encoded, nil
}
