package schema

// ---------------------------------------------------------------------
// Extraction pass
// ---------------------------------------------------------------------

// Extractor runs the single pass over a dump's lines.
type Extractor struct {
	// Progress, if set, is called as the cursor advances.
	Progress func(done, total int)

	// Stats is reset and filled by Run.
	Stats Stats
}

// Extract is a convenience for (&Extractor{}).Run(lines).
func Extract(lines []string) *Map {
	return (&Extractor{}).Run(lines)
}

// Run scans lines once with a cursor. Every CREATE TABLE header starts a
// block that is consumed up to its ");" line; the harvested table replaces
// any earlier table with the same key. Nothing is ever backtracked.
func (e *Extractor) Run(lines []string) *Map {
	m := NewMap()
	e.Stats = Stats{Lines: len(lines)}

	for i := 0; i < len(lines); i++ {
		e.progress(i, len(lines))

		l := ClassifyLine(lines[i])
		if l.Kind != KindTableHeader {
			continue
		}

		t := &Table{Schema: l.Header.Schema, Name: l.Header.Table}
		i = e.consumeBlock(lines, i, l.Header.Inline, t)
		if m.Put(t) {
			e.Stats.Redefined++
		}
	}

	e.Stats.Tables = m.Len()
	for _, t := range m.tables {
		e.Stats.Columns += len(t.Columns)
	}
	e.progress(len(lines), len(lines))
	return m
}

// consumeBlock harvests the body of the table whose header sits at index
// header. It returns the index of the terminating line, the header index when
// the body closes on the header line, or len(lines) when the block is never
// terminated.
func (e *Extractor) consumeBlock(lines []string, header int, inline string, t *Table) int {
	if inline != "" {
		items, closed := splitInline(inline)
		for _, item := range items {
			e.take(ClassifyBodyLine(item), t)
		}
		if closed {
			return header
		}
	}

	for i := header + 1; i < len(lines); i++ {
		l := ClassifyBodyLine(lines[i])
		if l.Kind == KindTerminator {
			return i
		}
		e.take(l, t)
	}
	return len(lines)
}

func (e *Extractor) take(l Line, t *Table) {
	switch l.Kind {
	case KindColumn:
		t.Columns = append(t.Columns, l.Column)
	case KindSkippable:
		e.Stats.Skipped++
	default:
		e.Stats.Malformed++
	}
}

func (e *Extractor) progress(done, total int) {
	if e.Progress != nil {
		e.Progress(done, total)
	}
}
