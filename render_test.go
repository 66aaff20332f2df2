package htmltable

import (
	"strings"
	"testing"
)

func TestToHTMLBasicIndent(t *testing.T) {
	tbl := &Table{ID: 0, Rows: []*TRow{
		{Group: RowGroupTbody, Cells: []*TCell{cellText("1"), cellText("2")}},
	}}
	want := "<table data-table-id='0'>\n<tbody>\n  <tr>\n    <td>1</td>\n    <td>2</td>\n  </tr>\n</tbody>\n</table>"
	if got := tbl.ToHTML(2); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestToHTMLEscapesEntitiesAndNewlines(t *testing.T) {
	tbl := &Table{ID: 0, Rows: []*TRow{
		{Group: RowGroupTbody, Cells: []*TCell{cellText("a & b < c\nline2")}},
	}}
	got := tbl.ToHTML(2)
	if !strings.Contains(got, "a &amp; b &lt; c<br/>line2") {
		t.Errorf("got:\n%s", got)
	}
}

func TestToHTMLNestedTableAlwaysCompact(t *testing.T) {
	inner := &Table{ID: 0, Rows: []*TRow{
		{Group: RowGroupTbody, Cells: []*TCell{cellText("x")}},
	}}
	cell := &TCell{Elements: []InlineElement{TRef{Table: inner}}}
	outer := &Table{ID: 1, Rows: []*TRow{{Group: RowGroupTbody, Cells: []*TCell{cell}}}}

	got := outer.ToHTML(2)
	if !strings.Contains(got, "<table data-table-id='0'><tbody><tr><td>x</td></tr></tbody></table>") {
		t.Errorf("expected nested table rendered compact inline, got:\n%s", got)
	}
	// but the outer table itself is still indented
	if !strings.Contains(got, "\n  <tr>") {
		t.Errorf("expected outer table's own <tr> indented, got:\n%s", got)
	}
}

func TestInnerTextJoinsRowsAndCells(t *testing.T) {
	tbl := &Table{Rows: []*TRow{
		{Cells: []*TCell{cellText(" a "), cellText("b")}},
		{Cells: []*TCell{cellText("c")}},
	}}
	want := "a b\nc"
	if got := tbl.InnerText(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInnerTextRecursesIntoNestedTable(t *testing.T) {
	inner := &Table{Rows: []*TRow{{Cells: []*TCell{cellText("nested")}}}}
	cell := &TCell{Elements: []InlineElement{TText{Text: "outer "}, TRef{Table: inner}}}
	outer := &Table{Rows: []*TRow{{Cells: []*TCell{cell}}}}
	if got := outer.InnerText(); got != "outer nested" {
		t.Errorf("got %q, want %q", got, "outer nested")
	}
}

func TestInnerTextBreakBecomesNewline(t *testing.T) {
	cell := &TCell{Elements: []InlineElement{TText{Text: "a"}, TBreak{}, TText{Text: "b"}}}
	tbl := &Table{Rows: []*TRow{{Cells: []*TCell{cell}}}}
	if got := tbl.InnerText(); got != "a\nb" {
		t.Errorf("got %q", got)
	}
}

func TestInnerTextCollapsesInternalSpaceRuns(t *testing.T) {
	tbl := &Table{Rows: []*TRow{
		{Cells: []*TCell{cellText("a    b")}},
	}}
	if got := tbl.InnerText(); got != "a b" {
		t.Errorf("got %q, want %q (internal space runs collapsed)", got, "a b")
	}
}

func TestToCSVCollapsesInternalSpaceRuns(t *testing.T) {
	tbl := &Table{Rows: []*TRow{
		{Cells: []*TCell{cellText("a    b"), cellText("c")}},
	}}
	want := "a b,c\n"
	if got := tbl.ToCSV(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToCSVQuotesSpecialCharacters(t *testing.T) {
	tbl := &Table{Rows: []*TRow{
		{Cells: []*TCell{cellText("a,b"), cellText(`has "quote"`), cellText("plain")}},
	}}
	want := "\"a,b\",\"has \"\"quote\"\"\",plain\n"
	if got := tbl.ToCSV(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToCSVMultipleRows(t *testing.T) {
	tbl := &Table{Rows: []*TRow{
		{Cells: []*TCell{cellText("1"), cellText("2")}},
		{Cells: []*TCell{cellText("3"), cellText("4")}},
	}}
	want := "1,2\n3,4\n"
	if got := tbl.ToCSV(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMaxWidthOnlyCountsRootTable(t *testing.T) {
	inner := &Table{Rows: []*TRow{
		{Cells: []*TCell{cellText("a"), cellText("b"), cellText("c")}},
	}}
	cell := &TCell{Elements: []InlineElement{TRef{Table: inner}}}
	outer := &Table{Rows: []*TRow{
		{Cells: []*TCell{cell}},
		{Cells: []*TCell{cellText("x"), cellText("y")}},
	}}
	if got := outer.MaxWidth(); got != 2 {
		t.Errorf("MaxWidth() = %d, want 2 (only root rows counted)", got)
	}
}

func TestIsRectangularOnlyConsidersRootTable(t *testing.T) {
	rect := &Table{Rows: []*TRow{
		{Cells: []*TCell{cellText("a"), cellText("b")}},
		{Cells: []*TCell{cellText("c"), cellText("d")}},
	}}
	if !rect.IsRectangular() {
		t.Error("expected rectangular table to report true")
	}

	ragged := &Table{Rows: []*TRow{
		{Cells: []*TCell{cellText("a"), cellText("b")}},
		{Cells: []*TCell{cellText("c")}},
	}}
	if ragged.IsRectangular() {
		t.Error("expected ragged table to report false")
	}

	empty := &Table{}
	if empty.IsRectangular() {
		t.Error("table with no rows should not be rectangular")
	}
}

func TestRectangifyOnlyPadsRootTable(t *testing.T) {
	inner := &Table{Rows: []*TRow{{Cells: []*TCell{cellText("a")}}}}
	cell := &TCell{Elements: []InlineElement{TRef{Table: inner}}}
	outer := &Table{Rows: []*TRow{
		{Cells: []*TCell{cell, cellText("x"), cellText("y")}},
		{Cells: []*TCell{cellText("z")}},
	}}

	outer.Rectangify()

	if len(outer.Rows[1].Cells) != 3 {
		t.Fatalf("got %d cells, want 3 (short row padded to widest)", len(outer.Rows[1].Cells))
	}
	if len(inner.Rows[0].Cells) != 1 {
		t.Error("nested table should be untouched by Rectangify")
	}
}
