package htmltable

const (
	maxColSpan = 1000
	maxRowSpan = 65534
)

// overflowEntry is a cell carried forward into subsequent rows by a
// rowspan greater than 1.
type overflowEntry struct {
	remaining int
	cell      *TCell
}

// expandSpans materializes rowspan/colspan into sibling cell copies (§4.4).
// Row groups are expanded independently: contiguous runs of rows sharing a
// RowGroup are partitioned first, and overflow never crosses a run
// boundary, so a rowspan declared near the end of a thead can never bleed
// into the following tbody.
func expandSpans(rows []*rawRow, meta *filterMeta) []*TRow {
	var out []*TRow

	i := 0
	for i < len(rows) {
		j := i + 1
		for j < len(rows) && rows[j].group == rows[i].group {
			j++
		}
		out = append(out, expandRun(rows[i:j], meta)...)
		i = j
	}

	return out
}

// expandRun expands one contiguous run of rows sharing a single row group.
func expandRun(run []*rawRow, meta *filterMeta) []*TRow {
	result := make([]*TRow, len(run))
	for idx, r := range run {
		result[idx] = &TRow{Group: r.group}
		if r.hidden {
			meta.hiddenRow[result[idx]] = true
		}
	}

	overflow := make(map[int]*overflowEntry)

	for rowIdx, row := range run {
		trow := result[rowIdx]
		srcIdx := 0
		col := 0

		for {
			entry, hasOverflow := overflow[col]
			hasSrc := srcIdx < len(row.cells)

			if !hasOverflow && !hasSrc {
				later := false
				for k := range overflow {
					if k > col {
						later = true
						break
					}
				}
				if !later {
					break
				}
				// A column with nothing to place while a later column
				// still carries overflow from a previous row: skip it.
				col++
				continue
			}

			if hasOverflow {
				trow.Cells = append(trow.Cells, entry.cell)
				entry.remaining--
				if entry.remaining <= 0 {
					delete(overflow, col)
				}
				col++
				continue
			}

			rc := row.cells[srcIdx]
			srcIdx++

			w := rc.colSpan
			if w <= 0 {
				w = 1
			}
			if w > maxColSpan {
				w = maxColSpan
			}

			var h int
			if rc.rowSpan == 0 {
				h = len(run) - rowIdx // remaining rows, including this one
			} else {
				h = rc.rowSpan
			}
			if h > maxRowSpan {
				h = maxRowSpan
			}

			cell := &TCell{Header: rc.header, Elements: rc.elements}
			if rc.hidden {
				meta.hiddenCell[cell] = true
			}
			for k := 0; k < w; k++ {
				trow.Cells = append(trow.Cells, cell)
				if h > 1 {
					overflow[col] = &overflowEntry{remaining: h - 1, cell: cell}
				}
				col++
			}
		}
	}

	return result
}
