package htmltable

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parseForTest(t *testing.T, html string, opts ...Option) []*Table {
	t.Helper()
	tables, err := ParseHTML(html, opts...)
	if err != nil {
		t.Fatalf("ParseHTML: %v", err)
	}
	return tables
}

func cellText(s string) *TCell {
	return &TCell{Elements: []InlineElement{TText{Text: s}}}
}

func TestExtractBasicTable(t *testing.T) {
	got := parseForTest(t, `
<table>
	<tr><td>1</td><td>2</td></tr>
	<tr><td>3</td><td>4</td></tr>
</table>`)

	want := []*Table{
		{
			ID: 0,
			Rows: []*TRow{
				{Group: RowGroupTbody, Cells: []*TCell{cellText("1"), cellText("2")}},
				{Group: RowGroupTbody, Cells: []*TCell{cellText("3"), cellText("4")}},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractMultipleTopLevelTables(t *testing.T) {
	got := parseForTest(t, `<table><tr><td>a</td></tr></table><table><tr><td>b</td></tr></table>`)
	if len(got) != 2 {
		t.Fatalf("got %d tables, want 2", len(got))
	}
	if got[0].ID != 0 || got[1].ID != 1 {
		t.Errorf("ids = %d, %d, want 0, 1", got[0].ID, got[1].ID)
	}
	if got[0].Rows[0].Cells[0].Elements[0].(TText).Text != "a" {
		t.Errorf("first table wrong content")
	}
}

func TestExtractRowGroupDefaultsToTbody(t *testing.T) {
	got := parseForTest(t, `<table><tr><td>1</td></tr></table>`)
	if got[0].Rows[0].Group != RowGroupTbody {
		t.Errorf("group = %v, want tbody", got[0].Rows[0].Group)
	}
}

func TestExtractThreadTbodyTfoot(t *testing.T) {
	got := parseForTest(t, `
<table>
<thead><tr><th>H</th></tr></thead>
<tbody><tr><td>B</td></tr></tbody>
<tfoot><tr><td>F</td></tr></tfoot>
</table>`)
	rows := got[0].Rows
	if len(rows) != 3 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0].Group != RowGroupThead || rows[1].Group != RowGroupTbody || rows[2].Group != RowGroupTfoot {
		t.Errorf("groups = %v %v %v", rows[0].Group, rows[1].Group, rows[2].Group)
	}
	if !rows[0].Cells[0].Header {
		t.Error("th cell should have Header = true")
	}
}

func TestExtractGroupResetsToTbodyAfterExplicitClose(t *testing.T) {
	got := parseForTest(t, `
<table>
<thead><tr><td>1</td></tr></thead>
<tr><td>2</td></tr>
</table>`)
	rows := got[0].Rows
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0].Group != RowGroupThead {
		t.Errorf("row0 group = %v, want thead", rows[0].Group)
	}
	if rows[1].Group != RowGroupTbody {
		t.Errorf("row1 group = %v, want tbody (bare <tr> after explicit </thead>)", rows[1].Group)
	}
}

func TestExtractNestedTableRef(t *testing.T) {
	got := parseForTest(t, `<table><tr><td>1<table><tr><td>2</td></tr></table></td></tr></table>`)
	if len(got) != 1 {
		t.Fatalf("expected one top-level table, got %d", len(got))
	}
	outer := got[0]
	els := outer.Rows[0].Cells[0].Elements
	if len(els) != 2 {
		t.Fatalf("expected 2 elements in outer cell, got %d: %+v", len(els), els)
	}
	if txt, ok := els[0].(TText); !ok || txt.Text != "1" {
		t.Errorf("first element = %+v", els[0])
	}
	ref, ok := els[1].(TRef)
	if !ok || ref.Table == nil {
		t.Fatalf("second element should be a TRef to the nested table, got %+v", els[1])
	}
	// descendant gets the lower ID (§4.6 post-order identity).
	if ref.Table.ID != 0 || outer.ID != 1 {
		t.Errorf("ids: inner=%d outer=%d, want inner=0 outer=1", ref.Table.ID, outer.ID)
	}
}

func TestExtractBrBecomesBreak(t *testing.T) {
	got := parseForTest(t, `<table><tr><td>a<br>b</td></tr></table>`)
	els := got[0].Rows[0].Cells[0].Elements
	if len(els) != 3 {
		t.Fatalf("got %d elements: %+v", len(els), els)
	}
	if _, ok := els[1].(TBreak); !ok {
		t.Errorf("middle element = %+v, want TBreak", els[1])
	}
}

func TestExtractAnchorCollapsesToTextByDefault(t *testing.T) {
	got := parseForTest(t, `<table><tr><td>see <a href="/x">here</a></td></tr></table>`)
	els := got[0].Rows[0].Cells[0].Elements
	if len(els) != 1 {
		t.Fatalf("got %d elements: %+v", len(els), els)
	}
	txt, ok := els[0].(TText)
	if !ok || txt.Text != "see here" {
		t.Errorf("got %+v, want merged TText \"see here\"", els[0])
	}
}

func TestExtractAnchorBecomesLinkWhenEnabled(t *testing.T) {
	got := parseForTest(t, `<table><tr><td>see <a href="/x">here</a></td></tr></table>`, WithExtractLinks(LinkExtractionAll))
	els := got[0].Rows[0].Cells[0].Elements
	if len(els) != 2 {
		t.Fatalf("got %d elements: %+v", len(els), els)
	}
	link, ok := els[1].(TLink)
	if !ok || link.Href != "/x" || link.Text != "here" {
		t.Errorf("got %+v", els[1])
	}
}

func TestExtractLinksScopedToRowGroup(t *testing.T) {
	got := parseForTest(t, `
<table>
<thead><tr><td><a href="/h">H</a></td></tr></thead>
<tbody><tr><td><a href="/b">B</a></td></tr></tbody>
</table>`, WithExtractLinks(LinkExtractionThead))

	theadEls := got[0].Rows[0].Cells[0].Elements
	if _, ok := theadEls[0].(TLink); !ok {
		t.Errorf("thead cell should hold a TLink, got %+v", theadEls[0])
	}
	tbodyEls := got[0].Rows[1].Cells[0].Elements
	if _, ok := tbodyEls[0].(TLink); ok {
		t.Errorf("tbody cell should not hold a TLink when extract_links=thead, got %+v", tbodyEls[0])
	}
}

func TestExtractEntityAndCommentHandling(t *testing.T) {
	got := parseForTest(t, `<table><tr><td>A &amp; B<!-- ignored --></td></tr></table>`)
	txt := got[0].Rows[0].Cells[0].Elements[0].(TText).Text
	if txt != "A & B" {
		t.Errorf("text = %q", txt)
	}
}

func TestInvalidExtractLinksValueErrors(t *testing.T) {
	_, err := ParseHTML(`<table></table>`, WithExtractLinks("bogus"))
	if err == nil {
		t.Fatal("expected an error for an invalid extract_links value")
	}
	var ile *InvalidExtractLinksError
	if !errors.As(err, &ile) {
		t.Fatalf("expected *InvalidExtractLinksError, got %T: %v", err, err)
	}
}
