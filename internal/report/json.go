package report

import (
	"encoding/json"
	"fmt"
	"io"

	"ddl-extract/internal/schema"
)

type JSONWriter struct{}

func (j *JSONWriter) Format() string {
	return "json"
}

func (j *JSONWriter) Write(w io.Writer, m *schema.Map) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(buildDocument(m)); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}
