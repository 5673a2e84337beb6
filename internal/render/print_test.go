package render

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func renderPrint(t *testing.T, signed bool, pages int) *html.Node {
	t.Helper()
	view := Build(pagesOf(pages), testMeta(signed))
	var buf bytes.Buffer
	if err := PrintHTML(view, &buf); err != nil {
		t.Fatalf("PrintHTML failed: %v", err)
	}
	doc, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("print output is not parseable HTML: %v", err)
	}
	return doc
}

func countByClass(n *html.Node, tag, class string) int {
	count := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			for _, a := range n.Attr {
				if a.Key == "class" && a.Val == class {
					count++
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return count
}

func TestPrintHTML_OnePageDivPerPage(t *testing.T) {
	doc := renderPrint(t, true, 4)
	if got := countByClass(doc, "div", "page"); got != 4 {
		t.Errorf("expected 4 page divs, got %d", got)
	}
	if got := countByClass(doc, "div", "footer"); got != 4 {
		t.Errorf("expected a footer on every page, got %d", got)
	}
}

func TestPrintHTML_SignatureTableOnlyOnce(t *testing.T) {
	for _, n := range []int{1, 5} {
		doc := renderPrint(t, true, n)
		if got := countByClass(doc, "table", "signatures"); got != 1 {
			t.Errorf("%d pages: expected exactly 1 signature table, got %d", n, got)
		}
	}
}

func TestPrintHTML_WatermarkPerPageWhenPending(t *testing.T) {
	doc := renderPrint(t, false, 3)
	if got := countByClass(doc, "div", "watermark"); got != 3 {
		t.Errorf("pending: expected 3 watermarks, got %d", got)
	}
	doc = renderPrint(t, true, 3)
	if got := countByClass(doc, "div", "watermark"); got != 0 {
		t.Errorf("signed: expected no watermarks, got %d", got)
	}
}

func TestPrintHTML_LetterheadOnFirstPageOnly(t *testing.T) {
	doc := renderPrint(t, true, 3)
	if got := countByClass(doc, "div", "letterhead"); got != 1 {
		t.Errorf("expected 1 letterhead, got %d", got)
	}
	if got := countByClass(doc, "div", "running-title"); got != 2 {
		t.Errorf("expected running titles on the 2 non-first pages, got %d", got)
	}
}

func TestPrintHTML_RejectsEditMode(t *testing.T) {
	var buf bytes.Buffer
	err := PrintHTML(EditView("corpo"), &buf)
	if err == nil {
		t.Fatalf("expected an error for edit-mode views")
	}
	if !strings.Contains(err.Error(), "edit mode") {
		t.Errorf("unexpected error: %v", err)
	}
}
