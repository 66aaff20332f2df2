package htmltable

// RowGroup is the logical band a TRow belongs to.
type RowGroup string

const (
	RowGroupThead RowGroup = "thead"
	RowGroupTbody RowGroup = "tbody"
	RowGroupTfoot RowGroup = "tfoot"
)

// Table is one logical <table>, normalized: row groups attributed, spans
// materialized, nested tables linked by reference. ID is assigned by the
// identity pass and unique only within a single ParseHTML call.
type Table struct {
	ID   int
	Rows []*TRow
}

// TRow is one <tr>, after implicit row-group attribution.
type TRow struct {
	Group RowGroup
	Cells []*TCell
}

// ContainsAllTH reports whether the row has at least one cell and every
// direct cell is a header cell.
func (r *TRow) ContainsAllTH() bool {
	if len(r.Cells) == 0 {
		return false
	}
	for _, c := range r.Cells {
		if !c.Header {
			return false
		}
	}
	return true
}

// IsHeaderLike reports whether the row belongs to thead, or consists
// entirely of <th> cells.
func (r *TRow) IsHeaderLike() bool {
	return r.Group == RowGroupThead || r.ContainsAllTH()
}

// TCell is one <td>/<th>. Header is true iff the source tag was <th>.
type TCell struct {
	Header   bool
	Elements []InlineElement
}

// InlineElement is the tagged union of content a TCell can hold: TText,
// TBreak, TLink, or TRef.
type InlineElement interface {
	inlineElement()
}

// TText is raw, entity-decoded character data. Whitespace (including
// embedded newlines from unclosed source tags) is preserved verbatim.
type TText struct {
	Text string
}

func (TText) inlineElement() {}

// TBreak is a materialized <br> or <br/>.
type TBreak struct{}

func (TBreak) inlineElement() {}

// TLink is an anchor, present only when link extraction was enabled for
// the cell's row group. Text is the concatenation of all descendant text
// within the anchor.
type TLink struct {
	Href string
	Text string
}

func (TLink) inlineElement() {}

// TRef is a reference to a nested table. When a cell is duplicated by span
// expansion, all duplicates share the same underlying *Table (shared
// ownership): Table is never cloned during expansion.
type TRef struct {
	Table *Table
}

func (TRef) inlineElement() {}
