package schema

import (
	"regexp"
	"strings"
)

// LineKind tags a dump line for the extraction pass.
type LineKind int

const (
	KindOther LineKind = iota
	KindTableHeader
	KindSkippable
	KindColumn
	KindTerminator
)

func (k LineKind) String() string {
	switch k {
	case KindTableHeader:
		return "table-header"
	case KindSkippable:
		return "skippable"
	case KindColumn:
		return "column"
	case KindTerminator:
		return "terminator"
	default:
		return "other"
	}
}

// Header is a matched CREATE TABLE line.
type Header struct {
	Schema string
	Table  string
	Inline string // text after the opening parenthesis, if any
}

func (h Header) Key() string {
	return TableKey(h.Schema, h.Table)
}

// Line is the classification of a single dump line.
type Line struct {
	Kind   LineKind
	Header Header // KindTableHeader
	Column Column // KindColumn
}

var (
	headerQuoted = regexp.MustCompile(`(?i)^CREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?(?:ONLY\s+)?(?:"([^"]+)"\.)?"([^"]+)"\s*\(`)
	headerBare   = regexp.MustCompile(`(?i)^CREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?(?:ONLY\s+)?(?:([\p{L}\p{N}_]+)\.)?([\p{L}\p{N}_]+)\s*\(`)

	tableConstraint = regexp.MustCompile(`(?i)^(?:CONSTRAINT|PRIMARY\s+KEY|UNIQUE|CHECK|FOREIGN\s+KEY)\b`)
	columnDef       = regexp.MustCompile(`^(?:"([^"]+)"|([^"\s]+))\s+(.+)$`)
	notNull         = regexp.MustCompile(`(?i)\bNOT\s+NULL\b`)

	// typeTail marks where the declared type ends and the column's
	// DEFAULT or inline constraints begin.
	typeTail = regexp.MustCompile(`(?i)\b(?:DEFAULT|NOT\s+NULL|NULL|CONSTRAINT|PRIMARY\s+KEY|UNIQUE|CHECK|REFERENCES|GENERATED)\b`)
)

// MatchHeader reports whether line opens a table definition. The quoted
// form is tried before the bare one; a missing schema becomes "public".
func MatchHeader(line string) (Header, bool) {
	s := strings.TrimSpace(line)
	for _, re := range []*regexp.Regexp{headerQuoted, headerBare} {
		loc := re.FindStringSubmatchIndex(s)
		if loc == nil {
			continue
		}
		h := Header{Schema: DefaultSchema, Table: s[loc[4]:loc[5]]}
		if loc[2] >= 0 {
			h.Schema = s[loc[2]:loc[3]]
		}
		h.Inline = strings.TrimSpace(s[loc[1]:])
		return h, true
	}
	return Header{}, false
}

// ClassifyLine classifies a line outside of any table body.
func ClassifyLine(line string) Line {
	if h, ok := MatchHeader(line); ok {
		return Line{Kind: KindTableHeader, Header: h}
	}
	return Line{Kind: KindOther}
}

// ClassifyBodyLine classifies a line inside a CREATE TABLE body. Lines that
// cannot be read as a column come back as KindOther.
func ClassifyBodyLine(line string) Line {
	s := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(s, ");"):
		return Line{Kind: KindTerminator}
	case s == "", strings.HasPrefix(s, "--"), tableConstraint.MatchString(s):
		return Line{Kind: KindSkippable}
	}
	col, ok := ParseColumn(s)
	if !ok {
		return Line{Kind: KindOther}
	}
	return Line{Kind: KindColumn, Column: col}
}

// ParseColumn reads a column definition such as
// `"created_at" timestamptz NOT NULL DEFAULT now(),`.
// Explicit NULL and a missing nullability clause both yield Null.
func ParseColumn(def string) (Column, bool) {
	s := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(def), ","))
	m := columnDef.FindStringSubmatch(s)
	if m == nil {
		return Column{}, false
	}

	name := m[1]
	if name == "" {
		name = m[2]
	}
	rest := m[3]

	col := Column{Name: name, Type: rest, Nullable: Null}
	if notNull.MatchString(rest) {
		col.Nullable = NotNull
	}
	if loc := typeTail.FindStringIndex(rest); loc != nil {
		col.Type = rest[:loc[0]]
	}
	col.Type = strings.TrimSpace(col.Type)
	return col, true
}

// splitInline splits the part of a body that shares a line with its header
// on top-level commas. closed is true when the body's closing parenthesis
// is on the same line.
func splitInline(body string) (items []string, closed bool) {
	depth, start := 0, 0
	var quote byte
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth == 0 {
				return append(items, body[start:i]), true
			}
			depth--
		case c == ',' && depth == 0:
			items = append(items, body[start:i])
			start = i + 1
		}
	}
	return append(items, body[start:]), false
}
