package schema

import (
	"sort"
	"strings"
)

// DefaultSchema is used for tables declared without a schema qualifier.
const DefaultSchema = "public"

type Nullability int

const (
	Null Nullability = iota
	NotNull
)

func (n Nullability) String() string {
	if n == NotNull {
		return "NOT NULL"
	}
	return "NULL"
}

type Column struct {
	Name     string
	Type     string // declared type, constraint tail stripped
	Nullable Nullability
}

type Table struct {
	Schema  string
	Name    string
	Columns []Column // declaration order
}

// Key returns the qualified "<schema>.<table>" name.
func (t *Table) Key() string {
	return TableKey(t.Schema, t.Name)
}

func TableKey(schemaName, table string) string {
	if schemaName == "" {
		schemaName = DefaultSchema
	}
	return schemaName + "." + table
}

// Map holds the extracted tables keyed by qualified name.
type Map struct {
	tables map[string]*Table
}

func NewMap() *Map {
	return &Map{tables: make(map[string]*Table)}
}

// Put stores t under its key. A later table with the same key replaces the
// earlier one; Put reports whether that happened.
func (m *Map) Put(t *Table) (replaced bool) {
	key := t.Key()
	_, replaced = m.tables[key]
	m.tables[key] = t
	return replaced
}

func (m *Map) Get(key string) (*Table, bool) {
	t, ok := m.tables[key]
	return t, ok
}

func (m *Map) Len() int {
	return len(m.tables)
}

// Keys returns all table keys in lexicographic order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.tables))
	for k := range m.tables {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Tables returns the tables in key order.
func (m *Map) Tables() []*Table {
	keys := m.Keys()
	out := make([]*Table, len(keys))
	for i, k := range keys {
		out[i] = m.tables[k]
	}
	return out
}

// Filter returns a map holding only the requested tables. A name matches a
// table's qualified key or its bare name, case-insensitively. An empty list
// keeps everything.
func (m *Map) Filter(names []string) *Map {
	if len(names) == 0 {
		return m
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[strings.ToLower(strings.TrimSpace(n))] = true
	}

	out := NewMap()
	for key, t := range m.tables {
		if want[strings.ToLower(key)] || want[strings.ToLower(t.Name)] {
			out.tables[key] = t
		}
	}
	return out
}

// Stats counts what the extraction pass saw. It never affects the report.
type Stats struct {
	Lines     int
	Tables    int
	Columns   int
	Skipped   int
	Malformed int
	Redefined int
}
