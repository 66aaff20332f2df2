package htmltable

import "strings"

// filterMeta threads the extraction-time side information the filter
// layer needs but which the public Table/TRow/TCell types don't carry
// themselves (§3 intentionally keeps those types minimal): each Table's
// source <table> attributes, and which rows/cells were marked hidden by
// an inline "display: none" (§4.5).
type filterMeta struct {
	attrs      map[*Table]Attributes
	hiddenRow  map[*TRow]bool
	hiddenCell map[*TCell]bool
}

func newFilterMeta() *filterMeta {
	return &filterMeta{
		attrs:      make(map[*Table]Attributes),
		hiddenRow:  make(map[*TRow]bool),
		hiddenCell: make(map[*TCell]bool),
	}
}

func (m *filterMeta) tableHidden(t *Table) bool {
	return styleHidesDisplay(m.attrs[t].GetString("style"))
}

// applyDisplayedOnly elides hidden tables, rows, and cells in place (§4.5),
// severing TRef elements that point at a hidden nested table. Severed refs
// are left with a nil Table, to be resolved into an empty TText by the
// identity pass (§4.6). Elision happens at row/cell granularity *after*
// span expansion has already materialized duplicates, so a duplicate
// landing in a hidden row is dropped along with the rest of that row.
func applyDisplayedOnly(tables []*Table, meta *filterMeta) []*Table {
	visitedCells := make(map[*TCell]bool)
	visitedTables := make(map[*Table]bool)

	var prune func(t *Table)
	prune = func(t *Table) {
		if visitedTables[t] {
			return
		}
		visitedTables[t] = true

		rows := t.Rows[:0]
		for _, row := range t.Rows {
			if meta.hiddenRow[row] {
				continue
			}

			cells := row.Cells[:0]
			for _, cell := range row.Cells {
				if meta.hiddenCell[cell] {
					continue
				}
				if !visitedCells[cell] {
					visitedCells[cell] = true
					severHiddenRefs(cell, meta, prune)
				}
				cells = append(cells, cell)
			}
			row.Cells = cells
			rows = append(rows, row)
		}
		t.Rows = rows
	}

	out := make([]*Table, 0, len(tables))
	for _, t := range tables {
		if meta.tableHidden(t) {
			continue
		}
		prune(t)
		out = append(out, t)
	}
	return out
}

// severHiddenRefs rewrites cell's TRef elements that point at a hidden
// table into dangling (nil-Table) refs, and recurses into surviving
// nested tables via descend.
func severHiddenRefs(cell *TCell, meta *filterMeta, descend func(*Table)) {
	for i, el := range cell.Elements {
		ref, ok := el.(TRef)
		if !ok || ref.Table == nil {
			continue
		}
		if meta.tableHidden(ref.Table) {
			cell.Elements[i] = TRef{}
			continue
		}
		descend(ref.Table)
	}
}

// tableOwnText concatenates this table's direct text (TText.Text and
// TLink.Text), in document order, without descending into nested tables.
func tableOwnText(t *Table) string {
	var b strings.Builder
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			for _, el := range cell.Elements {
				switch v := el.(type) {
				case TText:
					b.WriteString(v.Text)
				case TLink:
					b.WriteString(v.Text)
				}
			}
		}
	}
	return b.String()
}

// matchesText reports whether t's own text matches m. A table whose own
// text is empty after trimming whitespace never matches, even an
// empty-string Literal matcher (§4.5).
func matchesText(t *Table, m Matcher) bool {
	txt := tableOwnText(t)
	if strings.TrimSpace(txt) == "" {
		return false
	}
	return m.MatchString(txt)
}

// attrsMatch reports whether t's source <table> attributes contain every
// required name with an equal value; a nil expected value matches only a
// bare attribute (§4.2, §4.5).
func attrsMatch(t *Table, required map[string]*string, meta *filterMeta) bool {
	live := meta.attrs[t]
	for name, want := range required {
		got, ok := live.Get(name)
		if !ok {
			return false
		}
		if want == nil {
			if got != nil {
				return false
			}
			continue
		}
		if got == nil || *got != *want {
			return false
		}
	}
	return true
}

// anySubtreeMatches reports whether pred holds for t or any table
// reachable from t via a (non-dangling) TRef, in depth-first order.
func anySubtreeMatches(t *Table, pred func(*Table) bool) bool {
	if pred(t) {
		return true
	}
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			for _, el := range cell.Elements {
				if ref, ok := el.(TRef); ok && ref.Table != nil {
					if anySubtreeMatches(ref.Table, pred) {
						return true
					}
				}
			}
		}
	}
	return false
}

func survivesText(t *Table, m Matcher) bool {
	return anySubtreeMatches(t, func(tt *Table) bool { return matchesText(tt, m) })
}

func survivesAttrs(t *Table, required map[string]*string, meta *filterMeta) bool {
	return anySubtreeMatches(t, func(tt *Table) bool { return attrsMatch(tt, required, meta) })
}

func filterTopLevel(tables []*Table, keep func(*Table) bool) []*Table {
	out := tables[:0]
	for _, t := range tables {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
