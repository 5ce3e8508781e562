package report

import (
	"io"

	"ddl-extract/internal/schema"
)

// Writer renders an extracted schema map in one output format.
type Writer interface {
	// Format is the name accepted by GetWriter.
	Format() string

	// Write renders every table of m in key order, columns in declaration
	// order. The same map always renders to the same bytes.
	Write(w io.Writer, m *schema.Map) error
}
