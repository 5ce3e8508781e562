package report

import (
	"bytes"
	"fmt"
	"os"

	"ddl-extract/internal/schema"
)

// TableDoc is the structured form shared by the yaml and json writers.
type TableDoc struct {
	Table   string      `yaml:"table" json:"table"`
	Columns []ColumnDoc `yaml:"columns" json:"columns"`
}

type ColumnDoc struct {
	Name     string `yaml:"name" json:"name"`
	Type     string `yaml:"type" json:"type"`
	Nullable bool   `yaml:"nullable" json:"nullable"`
}

func buildDocument(m *schema.Map) []TableDoc {
	doc := make([]TableDoc, 0, m.Len())
	for _, t := range m.Tables() {
		cols := make([]ColumnDoc, 0, len(t.Columns))
		for _, c := range t.Columns {
			cols = append(cols, ColumnDoc{
				Name:     c.Name,
				Type:     c.Type,
				Nullable: c.Nullable == schema.Null,
			})
		}
		doc = append(doc, TableDoc{Table: t.Key(), Columns: cols})
	}
	return doc
}

// WriteFile renders m fully in memory, then creates or truncates path and
// writes the result.
func WriteFile(path string, w Writer, m *schema.Map) error {
	var buf bytes.Buffer
	if err := w.Write(&buf, m); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
