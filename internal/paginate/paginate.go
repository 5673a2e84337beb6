// Package paginate splits a merged document body into fixed-budget pages.
//
// The budgets are character-cost heuristics standing in for real text
// measurement: deterministic and cheap, at the price of perfect visual
// fidelity. Treat the constants as tunable approximations.
package paginate

import "strings"

// Config controls page capacity and cost accounting.
type Config struct {
	BudgetFirst       int // capacity of the first page (letterhead reserved)
	BudgetRest        int // capacity of every subsequent page
	BlankLineCost     int // cost of an empty/whitespace-only line
	ParagraphOverhead int // per-paragraph cost added to its character length
}

// DefaultConfig returns the tuned production budgets.
func DefaultConfig() Config {
	return Config{
		BudgetFirst:       2200,
		BudgetRest:        3200,
		BlankLineCost:     50,
		ParagraphOverhead: 30,
	}
}

// Page is a contiguous run of whole paragraphs assigned to one physical page.
type Page struct {
	Index   int    `json:"index"` // 1-based
	IsFirst bool   `json:"is_first"`
	IsLast  bool   `json:"is_last"`
	Content string `json:"content"`
}

// Result is the ordered page sequence for one body.
type Result struct {
	Pages []Page `json:"pages"`
}

// Total returns the page count, used for "Página X de N" footers.
func (r Result) Total() int {
	return len(r.Pages)
}

// Paginate greedily packs newline-separated paragraphs into pages.
// Paragraphs are never split: a paragraph whose own cost exceeds the active
// budget is still placed whole on an empty page, which may visually
// overflow. Identical inputs always produce identical page boundaries.
func Paginate(body string, cfg Config) Result {
	if cfg.BudgetFirst <= 0 {
		cfg.BudgetFirst = 2200
	}
	if cfg.BudgetRest <= 0 {
		cfg.BudgetRest = 3200
	}
	if cfg.BlankLineCost <= 0 {
		cfg.BlankLineCost = 50
	}
	if cfg.ParagraphOverhead <= 0 {
		cfg.ParagraphOverhead = 30
	}

	var res Result
	var buf strings.Builder
	used := 0

	closePage := func() {
		res.Pages = append(res.Pages, Page{Content: strings.TrimSpace(buf.String())})
		buf.Reset()
		used = 0
	}

	for _, line := range strings.Split(body, "\n") {
		cost := cfg.BlankLineCost
		if strings.TrimSpace(line) != "" {
			cost = len(line) + cfg.ParagraphOverhead
		}

		limit := cfg.BudgetRest
		if len(res.Pages) == 0 {
			limit = cfg.BudgetFirst
		}

		if used > 0 && used+cost > limit {
			closePage()
		}
		buf.WriteString(line)
		buf.WriteString("\n")
		used += cost
	}

	if strings.TrimSpace(buf.String()) != "" {
		closePage()
	}

	for i := range res.Pages {
		res.Pages[i].Index = i + 1
	}
	if len(res.Pages) > 0 {
		res.Pages[0].IsFirst = true
		res.Pages[len(res.Pages)-1].IsLast = true
	}
	return res
}
