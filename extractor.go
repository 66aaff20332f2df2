package htmltable

import (
	"io"
	"strconv"
	"strings"

	"github.com/dpotapov/htmltable/internal/pool"
	"golang.org/x/net/html/atom"
)

// LinkExtraction controls whether anchors in a given row group become
// TLink elements (§4.5) instead of collapsing to plain text.
type LinkExtraction string

const (
	LinkExtractionNone  LinkExtraction = ""
	LinkExtractionThead LinkExtraction = "thead"
	LinkExtractionTbody LinkExtraction = "tbody"
	LinkExtractionTfoot LinkExtraction = "tfoot"
	LinkExtractionAll   LinkExtraction = "all"
)

// ValidLinkExtraction reports whether le is one of the recognized values.
func ValidLinkExtraction(le LinkExtraction) bool {
	switch le {
	case LinkExtractionNone, LinkExtractionThead, LinkExtractionTbody, LinkExtractionTfoot, LinkExtractionAll:
		return true
	default:
		return false
	}
}

func linksEnabledFor(group RowGroup, le LinkExtraction) bool {
	switch le {
	case LinkExtractionAll:
		return true
	case LinkExtractionThead:
		return group == RowGroupThead
	case LinkExtractionTbody:
		return group == RowGroupTbody
	case LinkExtractionTfoot:
		return group == RowGroupTfoot
	default:
		return false
	}
}

// rawCell is a cell as extracted, before span expansion has materialized
// its rowspan/colspan into sibling copies.
type rawCell struct {
	header   bool
	elements []InlineElement
	rowSpan  int
	colSpan  int
	hidden   bool
}

// rawRow is a row as extracted, tagged with the row group it was opened
// under.
type rawRow struct {
	group  RowGroup
	cells  []*rawCell
	hidden bool
}

// anchorState accumulates the text of an open <a> while inside a cell. Its
// builder is borrowed from a pool: anchors open and close far more often
// than tables do, and most never grow past a few words.
type anchorState struct {
	href string
	text *strings.Builder
}

func newAnchorState(href string) *anchorState {
	return &anchorState{href: href, text: pool.GetBuilder()}
}

// tableCtx is one open <table> context in the extractor's stack (§4.3).
type tableCtx struct {
	rows  []*rawRow
	attrs Attributes

	group  RowGroup
	row    *rawRow
	cell   *rawCell
	anchor *anchorState

	// hostCell is the cell this table is nested inside, or nil if this
	// table is top-level. A nested table's TRef is appended to hostCell
	// once the table context is popped and its spans expanded.
	hostCell *rawCell
}

func newTableCtx(attrs Attributes, hostCell *rawCell) *tableCtx {
	return &tableCtx{attrs: attrs, group: RowGroupTbody, hostCell: hostCell}
}

// flushAnchor closes any open anchor, appending either a TLink (if link
// extraction is enabled for the context's current row group) or a TText
// holding just the accumulated text.
func (c *tableCtx) flushAnchor(le LinkExtraction) {
	if c.anchor == nil {
		return
	}
	a := c.anchor
	c.anchor = nil
	text := a.text.String()
	pool.PutBuilder(a.text)
	if c.cell == nil {
		return
	}
	if linksEnabledFor(c.group, le) {
		c.cell.elements = append(c.cell.elements, TLink{Href: a.href, Text: text})
	} else {
		appendText(c.cell, text)
	}
}

// closeCell closes the open cell, if any. Any still-open anchor is flushed
// first so its accumulated text isn't lost.
func (c *tableCtx) closeCell(le LinkExtraction) {
	c.flushAnchor(le)
	c.cell = nil
}

// closeRow closes the open row (and any open cell within it), if any.
func (c *tableCtx) closeRow(le LinkExtraction) {
	c.closeCell(le)
	c.row = nil
}

func (c *tableCtx) openRow() {
	c.row = &rawRow{group: c.group}
	c.rows = append(c.rows, c.row)
}

func (c *tableCtx) openCell(header bool, rowSpan, colSpan int) {
	if c.row == nil {
		c.openRow()
	}
	c.cell = &rawCell{header: header, rowSpan: rowSpan, colSpan: colSpan}
	c.row.cells = append(c.row.cells, c.cell)
}

// appendText appends s to dst's elements, merging into a trailing TText
// rather than starting a new element, per §4.3.
func appendText(dst *rawCell, s string) {
	if s == "" {
		return
	}
	if n := len(dst.elements); n > 0 {
		if prev, ok := dst.elements[n-1].(TText); ok {
			dst.elements[n-1] = TText{Text: prev.Text + s}
			return
		}
	}
	dst.elements = append(dst.elements, TText{Text: s})
}

// parseSpanAttr parses a rowspan/colspan attribute value as a base-10
// integer. Non-integer or negative values fall back to 1 (§7); the literal
// value 0 is preserved as a sentinel meaning "to end of row group" (§4.4).
func parseSpanAttr(attrs Attributes, name string) int {
	v, ok := attrs.Get(name)
	if !ok || v == nil {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(*v))
	if err != nil || n < 0 {
		return 1
	}
	return n
}

// extractTables runs the tokenizer to completion, returning the top-level
// tables in document order along with the side information (source <table>
// attributes, hidden rows/cells) the filter layer needs — the public Table
// type itself carries none of this data per §3.
func extractTables(toks *Tokenizer, le LinkExtraction) ([]*Table, *filterMeta) {
	var top []*Table
	meta := newFilterMeta()
	var stack []*tableCtx

	finalize := func(c *tableCtx) {
		c.closeRow(le)
		table := &Table{Rows: expandSpans(c.rows, meta)}
		meta.attrs[table] = c.attrs
		if c.hostCell != nil {
			c.hostCell.elements = append(c.hostCell.elements, TRef{Table: table})
		} else {
			top = append(top, table)
		}
	}

	top1 := func() *tableCtx {
		if len(stack) == 0 {
			return nil
		}
		return stack[len(stack)-1]
	}

	for toks.Next() {
		tok := toks.Token()
		cur := top1()

		a := atom.Lookup([]byte(tok.Name))

		switch tok.Type {
		case StartTagToken:
			switch a {
			case atom.Table:
				var host *rawCell
				if cur != nil {
					cur.flushAnchor(le)
					host = cur.cell
				}
				stack = append(stack, newTableCtx(tok.Attrs, host))

			case atom.Thead:
				if cur != nil {
					cur.closeRow(le)
					cur.group = RowGroupThead
				}
			case atom.Tbody:
				if cur != nil {
					cur.closeRow(le)
					cur.group = RowGroupTbody
				}
			case atom.Tfoot:
				if cur != nil {
					cur.closeRow(le)
					cur.group = RowGroupTfoot
				}

			case atom.Tr:
				if cur != nil {
					cur.closeRow(le)
					cur.openRow()
					cur.row.hidden = styleHidesDisplay(tok.Attrs.GetString("style"))
				}

			case atom.Td, atom.Th:
				if cur != nil {
					cur.closeCell(le)
					rs := parseSpanAttr(tok.Attrs, "rowspan")
					cs := parseSpanAttr(tok.Attrs, "colspan")
					cur.openCell(a == atom.Th, rs, cs)
					cur.cell.hidden = styleHidesDisplay(tok.Attrs.GetString("style"))
				}

			case atom.A:
				if cur != nil && cur.cell != nil && cur.anchor == nil {
					cur.anchor = newAnchorState(tok.Attrs.GetString("href"))
				}

			case atom.Br:
				if cur != nil {
					if cur.anchor != nil {
						// No text contribution; a bare line break within
						// an anchor doesn't extend its text (§3 TLink.Text
						// is a plain string).
					} else if cur.cell != nil {
						cur.cell.elements = append(cur.cell.elements, TBreak{})
					}
				}

			default:
				// All other tags are ignored structurally; their text
				// still flows through via TextToken handling below.
			}

		case EndTagToken:
			if cur == nil {
				break
			}
			switch a {
			case atom.Table:
				stack = stack[:len(stack)-1]
				finalize(cur)
			case atom.Thead, atom.Tbody, atom.Tfoot:
				cur.closeRow(le)
				cur.group = RowGroupTbody
			case atom.Tr:
				cur.closeRow(le)
			case atom.Td, atom.Th:
				cur.closeCell(le)
			case atom.A:
				cur.flushAnchor(le)
			default:
				// ignored
			}

		case TextToken:
			if cur == nil {
				break
			}
			if cur.anchor != nil {
				cur.anchor.text.WriteString(tok.Data)
			} else if cur.cell != nil {
				appendText(cur.cell, tok.Data)
			}

		case CommentToken, DoctypeToken:
			// structurally inert

		case ErrorToken:
			// unreachable inside the loop body (Next returns false first)
		}
	}

	// EOF with stack non-empty: close out every open table context,
	// innermost first.
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		finalize(c)
	}

	if toks.Err() != nil && toks.Err() != io.EOF {
		// The tokenizer never produces a non-EOF error; this is
		// defensive only.
		_ = toks.Err()
	}

	return top, meta
}
