package report

import (
	"fmt"
	"strings"
)

// GetWriter returns the Writer for a format name. An empty name selects text.
func GetWriter(format string) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text", "txt":
		return &TextWriter{}, nil
	case "yaml", "yml":
		return &YAMLWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q (available: %s)", format, strings.Join(Formats(), ", "))
	}
}

// Formats lists the canonical format names.
func Formats() []string {
	return []string{"text", "yaml", "json"}
}

// Ensure interface implementation
var _ Writer = (*TextWriter)(nil)
var _ Writer = (*YAMLWriter)(nil)
var _ Writer = (*JSONWriter)(nil)
