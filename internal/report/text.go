package report

import (
	"fmt"
	"io"
	"strings"

	"ddl-extract/internal/schema"
)

// TextWriter renders the plain report:
//
//	[public.users]
//	- id: uuid (NOT NULL)
//	- name: text (NULL)
//
// with a blank line after every table.
type TextWriter struct{}

func (t *TextWriter) Format() string {
	return "text"
}

func (t *TextWriter) Write(w io.Writer, m *schema.Map) error {
	var b strings.Builder
	for _, tbl := range m.Tables() {
		fmt.Fprintf(&b, "[%s]\n", tbl.Key())
		for _, c := range tbl.Columns {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", c.Name, c.Type, c.Nullable)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
