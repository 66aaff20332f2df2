package htmltable

// assignIdentity walks the surviving forest depth-first, assigning IDs in
// post-order: a table's descendants (reached via TRef) are numbered before
// the table itself, so nested tables always carry a lower ID than the
// table that references them (§4.6). Any TRef left dangling by display:none
// elision (§4.5) — its Table field nil — is replaced with an empty TText,
// since its target no longer exists in the result.
func assignIdentity(tables []*Table) {
	next := 0
	visited := make(map[*Table]bool)

	var visit func(t *Table)
	visit = func(t *Table) {
		if visited[t] {
			return
		}
		visited[t] = true

		for _, row := range t.Rows {
			for _, cell := range row.Cells {
				for i, el := range cell.Elements {
					ref, ok := el.(TRef)
					if !ok {
						continue
					}
					if ref.Table == nil {
						cell.Elements[i] = TText{}
						continue
					}
					visit(ref.Table)
				}
			}
		}

		t.ID = next
		next++
	}

	for _, t := range tables {
		visit(t)
	}
}
