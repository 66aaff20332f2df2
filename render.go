package htmltable

import (
	"fmt"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// renderRun is a contiguous run of rows sharing one RowGroup.
type renderRun struct {
	group RowGroup
	rows  []*TRow
}

func groupRuns(rows []*TRow) []renderRun {
	var runs []renderRun
	i := 0
	for i < len(rows) {
		j := i + 1
		for j < len(rows) && rows[j].Group == rows[i].Group {
			j++
		}
		runs = append(runs, renderRun{group: rows[i].Group, rows: rows[i:j]})
		i = j
	}
	return runs
}

// renderInline renders an element's content as it appears inside a <td>/<th>,
// whether the enclosing table is being pretty-printed or rendered compact: a
// nested table (via TRef) is always rendered compact, regardless of the
// outer table's own formatting (§4.6 concrete scenario).
func renderInline(el InlineElement) string {
	switch v := el.(type) {
	case TText:
		// A single "\n" with non-newline characters on both sides becomes
		// <br/>; any other newline is kept as it is.
		s := htmlEscaper.Replace(v.Text)
		var b strings.Builder
		for i := 0; i < len(s); i++ {
			if s[i] == '\n' && i > 0 && i < len(s)-1 && s[i-1] != '\n' && s[i+1] != '\n' {
				b.WriteString("<br/>")
			} else {
				b.WriteByte(s[i])
			}
		}
		return b.String()
	case TBreak:
		return "<br/>"
	case TLink:
		href := htmlEscaper.Replace(v.Href)
		text := strings.ReplaceAll(htmlEscaper.Replace(v.Text), "\n", "<br/>")
		return "<a href='" + href + "'>" + text + "</a>"
	case TRef:
		if v.Table == nil {
			return ""
		}
		return renderCompact(v.Table)
	default:
		return ""
	}
}

func renderCellContent(cell *TCell) string {
	var b strings.Builder
	for _, el := range cell.Elements {
		b.WriteString(renderInline(el))
	}
	return b.String()
}

func cellTag(header bool) string {
	if header {
		return "th"
	}
	return "td"
}

// renderCompact renders t as a single line with no indentation, the form
// used for every table reached through a TRef.
func renderCompact(t *Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<table data-table-id='%d'>", t.ID)
	for _, run := range groupRuns(t.Rows) {
		fmt.Fprintf(&b, "<%s>", run.group)
		for _, row := range run.rows {
			b.WriteString("<tr>")
			for _, cell := range row.Cells {
				tag := cellTag(cell.Header)
				b.WriteString("<" + tag + ">")
				b.WriteString(renderCellContent(cell))
				b.WriteString("</" + tag + ">")
			}
			b.WriteString("</tr>")
		}
		fmt.Fprintf(&b, "</%s>", run.group)
	}
	b.WriteString("</table>")
	return b.String()
}

// ToHTML renders t as indented, human-readable HTML. indent is the number
// of spaces added per nesting level of the root table; any table reached
// via a TRef is always rendered compact (§4.6).
func (t *Table) ToHTML(indent int) string {
	pad := strings.Repeat(" ", indent)
	pad2 := strings.Repeat(" ", indent*2)

	lines := []string{fmt.Sprintf("<table data-table-id='%d'>", t.ID)}
	for _, run := range groupRuns(t.Rows) {
		lines = append(lines, "<"+string(run.group)+">")
		for _, row := range run.rows {
			lines = append(lines, pad+"<tr>")
			for _, cell := range row.Cells {
				tag := cellTag(cell.Header)
				lines = append(lines, pad2+"<"+tag+">"+renderCellContent(cell)+"</"+tag+">")
			}
			lines = append(lines, pad+"</tr>")
		}
		lines = append(lines, "</"+string(run.group)+">")
	}
	lines = append(lines, "</table>")
	return strings.Join(lines, "\n")
}

// cellPlainText is the flattened textual content of a cell, recursing into
// any nested table's own InnerText rather than its markup. Shared by
// InnerText and ToCSV (§4.6).
func cellPlainText(cell *TCell) string {
	var b strings.Builder
	for _, el := range cell.Elements {
		switch v := el.(type) {
		case TText:
			b.WriteString(v.Text)
		case TLink:
			b.WriteString(v.Text)
		case TBreak:
			b.WriteString("\n")
		case TRef:
			if v.Table != nil {
				b.WriteString(v.Table.InnerText())
			}
		}
	}
	return b.String()
}

// collapseLineSpaces trims s and, on each line independently, collapses runs
// of whitespace down to a single space (spec.md §6: inner_text() collapses
// runs of spaces but keeps line breaks).
func collapseLineSpaces(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}

// InnerText concatenates each cell's trimmed, space-collapsed plain text,
// cells in a row joined by a single space and rows joined by a newline.
func (t *Table) InnerText() string {
	rows := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, collapseLineSpaces(cellPlainText(cell)))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

func csvField(s string) string {
	if strings.ContainsAny(s, ",\"\n\r") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// ToCSV renders t as RFC 4180-ish CSV: one line per row, cells quoted only
// when they contain a comma, quote, or newline.
func (t *Table) ToCSV() string {
	var b strings.Builder
	for _, row := range t.Rows {
		fields := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			fields = append(fields, csvField(collapseLineSpaces(cellPlainText(cell))))
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteString("\n")
	}
	return b.String()
}

// MaxWidth returns the largest number of cells in any one row of t, not
// descending into nested tables.
func (t *Table) MaxWidth() int {
	max := 0
	for _, row := range t.Rows {
		if len(row.Cells) > max {
			max = len(row.Cells)
		}
	}
	return max
}

// IsRectangular reports whether t has at least one row and every row has
// the same non-zero number of cells, not descending into nested tables.
func (t *Table) IsRectangular() bool {
	if len(t.Rows) == 0 {
		return false
	}
	width := len(t.Rows[0].Cells)
	if width == 0 {
		return false
	}
	for _, row := range t.Rows {
		if len(row.Cells) != width {
			return false
		}
	}
	return true
}

// Rectangify pads every row of t with empty trailing cells so all rows
// match the widest row, mutating t in place. Nested tables are untouched.
func (t *Table) Rectangify() {
	width := t.MaxWidth()
	for _, row := range t.Rows {
		for len(row.Cells) < width {
			row.Cells = append(row.Cells, &TCell{})
		}
	}
}
