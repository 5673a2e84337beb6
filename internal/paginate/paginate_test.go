package paginate

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func testConfig() Config {
	return Config{
		BudgetFirst:       2200,
		BudgetRest:        3200,
		BlankLineCost:     50,
		ParagraphOverhead: 30,
	}
}

func TestPaginate_ShortBodySinglePage(t *testing.T) {
	// 400 characters, no blank lines: fits the first-page budget.
	body := strings.Repeat("a", 400)
	res := Paginate(body, testConfig())

	if res.Total() != 1 {
		t.Fatalf("expected 1 page, got %d", res.Total())
	}
	p := res.Pages[0]
	if !p.IsFirst || !p.IsLast {
		t.Errorf("single page must be both first and last, got first=%v last=%v", p.IsFirst, p.IsLast)
	}
	if p.Index != 1 {
		t.Errorf("expected index 1, got %d", p.Index)
	}
	if p.Content != body {
		t.Errorf("content mismatch")
	}
}

func TestPaginate_GreedyBoundaries(t *testing.T) {
	// 10 paragraphs of 500 chars, effective cost 530 each.
	// First page: 4 paragraphs (2120 <= 2200), then 6 (3180 <= 3200).
	var paras []string
	for i := 0; i < 10; i++ {
		paras = append(paras, strings.Repeat(fmt.Sprintf("%d", i), 500))
	}
	body := strings.Join(paras, "\n")

	res := Paginate(body, testConfig())
	if res.Total() != 2 {
		t.Fatalf("expected 2 pages, got %d", res.Total())
	}

	first := strings.Split(res.Pages[0].Content, "\n")
	rest := strings.Split(res.Pages[1].Content, "\n")
	if len(first) != 4 {
		t.Errorf("expected 4 paragraphs on first page, got %d", len(first))
	}
	if len(rest) != 6 {
		t.Errorf("expected 6 paragraphs on second page, got %d", len(rest))
	}
	if !reflect.DeepEqual(first, paras[:4]) {
		t.Errorf("first page holds wrong paragraphs")
	}
	if !reflect.DeepEqual(rest, paras[4:]) {
		t.Errorf("second page holds wrong paragraphs")
	}
}

func TestPaginate_Deterministic(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString(strings.Repeat("palavra ", 20+i))
		sb.WriteString("\n\n")
	}
	body := sb.String()

	a := Paginate(body, testConfig())
	b := Paginate(body, testConfig())
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different page sequences")
	}
}

func TestPaginate_CoverageInOrder(t *testing.T) {
	// Concatenating all page contents must reproduce every non-blank
	// paragraph of the source, in order, none dropped or duplicated.
	var paras []string
	for i := 0; i < 25; i++ {
		paras = append(paras, fmt.Sprintf("Cláusula %d: %s", i, strings.Repeat("texto ", 30)))
	}
	body := strings.Join(paras, "\n\n")

	res := Paginate(body, testConfig())

	var got []string
	for _, p := range res.Pages {
		for _, line := range strings.Split(p.Content, "\n") {
			if strings.TrimSpace(line) != "" {
				got = append(got, line)
			}
		}
	}
	if !reflect.DeepEqual(got, paras) {
		t.Fatalf("page contents do not reproduce source paragraphs:\ngot %d paragraphs, want %d", len(got), len(paras))
	}
}

func TestPaginate_ExactlyOneFirstAndLast(t *testing.T) {
	bodies := map[string]string{
		"one page":   "curto",
		"many pages": strings.Repeat(strings.Repeat("x", 800)+"\n", 30),
	}
	for name, body := range bodies {
		res := Paginate(body, testConfig())
		if res.Total() == 0 {
			t.Fatalf("%s: expected at least one page", name)
		}
		firsts, lasts := 0, 0
		for _, p := range res.Pages {
			if p.IsFirst {
				firsts++
			}
			if p.IsLast {
				lasts++
			}
		}
		if firsts != 1 || lasts != 1 {
			t.Errorf("%s: expected exactly one first and one last, got %d/%d", name, firsts, lasts)
		}
	}
}

func TestPaginate_OversizedParagraphPlacedWhole(t *testing.T) {
	// A paragraph bigger than any budget is never split: it lands whole on
	// its own page, which may visually overflow.
	huge := strings.Repeat("z", 5000)
	body := "antes\n" + huge + "\ndepois"

	res := Paginate(body, testConfig())
	if res.Total() != 3 {
		t.Fatalf("expected 3 pages, got %d", res.Total())
	}
	if res.Pages[1].Content != huge {
		t.Errorf("oversized paragraph was not placed whole on its own page")
	}
}

func TestPaginate_BlankLinesKeepRhythm(t *testing.T) {
	// Blank lines cost a small fixed amount instead of being free, so a
	// run of them still pushes content to the next page eventually.
	body := strings.Repeat("par\n\n", 100)
	res := Paginate(body, testConfig())
	if res.Total() < 2 {
		t.Fatalf("expected blank-line costs to force multiple pages, got %d", res.Total())
	}
	for _, p := range res.Pages {
		if p.Content != strings.TrimSpace(p.Content) {
			t.Errorf("page %d content not trimmed", p.Index)
		}
	}
}

func TestPaginate_EmptyBody(t *testing.T) {
	res := Paginate("", testConfig())
	if res.Total() != 0 {
		t.Errorf("expected 0 pages for empty body, got %d", res.Total())
	}
	res = Paginate("   \n\n  ", testConfig())
	if res.Total() != 0 {
		t.Errorf("expected 0 pages for whitespace-only body, got %d", res.Total())
	}
}

func TestPaginate_ZeroConfigUsesDefaults(t *testing.T) {
	res := Paginate("texto qualquer", Config{})
	if res.Total() != 1 {
		t.Fatalf("expected defaults to apply, got %d pages", res.Total())
	}
	def := DefaultConfig()
	if def.BudgetFirst >= def.BudgetRest {
		t.Errorf("first-page budget should be smaller than rest (letterhead reserve)")
	}
}
