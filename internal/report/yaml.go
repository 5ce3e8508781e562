package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"ddl-extract/internal/schema"
)

type YAMLWriter struct{}

func (y *YAMLWriter) Format() string {
	return "yaml"
}

func (y *YAMLWriter) Write(w io.Writer, m *schema.Map) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(buildDocument(m)); err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}
	return enc.Close()
}
