// Package export produces the downloadable .docx rendition of a contract.
//
// It is deliberately independent of the merge/pagination path: a fixed
// section layout with measured line costs and two-pass footer stamping,
// rather than the heuristic character budgets of the on-screen preview.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/imobly/docforge/internal/contract"
)

// Config controls the virtual page geometry used for page-break decisions.
// Costs are in line units, not physical measurements.
type Config struct {
	LinesPerPage    int // usable lines per page, footer excluded
	LineWidth       int // characters per wrapped line
	SafeMarginLines int // lines that must remain below the signature block
}

// DefaultConfig returns the tuned A4 geometry.
func DefaultConfig() Config {
	return Config{
		LinesPerPage:    46,
		LineWidth:       94,
		SafeMarginLines: 6,
	}
}

// BlockKind identifies a layout block.
type BlockKind int

const (
	BlockBanner BlockKind = iota
	BlockHeading
	BlockTable
	BlockText
	BlockSpacer
	BlockSignatures
)

// SignatureSlot is one of the two signature lines.
type SignatureSlot struct {
	Name string
	Role string
}

// Block is one laid-out unit of the export document.
type Block struct {
	Kind  BlockKind
	Text  string       // banner title, heading text or paragraph text
	Sub   string       // banner subtitle
	Rows  [][2]string  // label/value rows for BlockTable
	Left  SignatureSlot // BlockSignatures
	Right SignatureSlot
}

// PlanPage is one page of laid-out blocks.
type PlanPage struct {
	Blocks []Block
}

// Plan is the fully laid-out document, ready to be written. Footers are
// stamped at write time, once the page count is known.
type Plan struct {
	Filename    string
	GeneratedAt time.Time
	Pages       []PlanPage
}

// Filename derives the deterministic download name from contract type and id.
func Filename(c contract.Contract) string {
	kind := "Locacao"
	if c.Type == contract.TypeSale {
		kind = "Venda"
	}
	return fmt.Sprintf("Contrato_%s_%s.docx", kind, c.ID)
}

// Layout assembles the fixed section sequence and breaks it into pages.
// Missing party data degrades to placeholder dashes; layout never fails.
func Layout(c contract.Contract, prop contract.Property, owner, tenant contract.Party, agency contract.Agency, cfg Config) Plan {
	if cfg.LinesPerPage <= 0 {
		cfg = DefaultConfig()
	}

	counterpartRole := "Locatário"
	if c.Type == contract.TypeSale {
		counterpartRole = "Comprador"
	}

	endDate := "Indeterminado"
	if c.EndDate != nil {
		endDate = c.EndDate.Format("02/01/2006")
	}

	blocks := []Block{
		{Kind: BlockBanner, Text: strings.ToUpper("Contrato de " + c.Type.Label()), Sub: "Contrato nº " + c.ID},
		{Kind: BlockSpacer},
		{Kind: BlockHeading, Text: "Dados do Imóvel"},
		{Kind: BlockTable, Rows: [][2]string{
			{"Imóvel", orDash(prop.Title)},
			{"Endereço", orDash(prop.Location)},
		}},
		{Kind: BlockSpacer},
		{Kind: BlockHeading, Text: "Partes Contratantes"},
		{Kind: BlockTable, Rows: [][2]string{
			{"Proprietário", orDash(owner.Name)},
			{"E-mail", orDash(owner.Email)},
			{counterpartRole, orDash(tenant.Name)},
			{"E-mail", orDash(tenant.Email)},
		}},
		{Kind: BlockSpacer},
		{Kind: BlockHeading, Text: "Condições Financeiras"},
		{Kind: BlockTable, Rows: [][2]string{
			{"Valor", "R$ " + fmt.Sprintf("%.2f", c.Value)},
			{"Início", c.StartDate.Format("02/01/2006")},
			{"Término", endDate},
			{"Situação", c.Status.Label()},
		}},
		{Kind: BlockSpacer},
		{Kind: BlockHeading, Text: "Cláusulas"},
	}

	for i, clause := range Clauses(c.Type) {
		text := fmt.Sprintf("%dª. %s", i+1, clause)
		blocks = append(blocks, Block{Kind: BlockText, Text: text})
	}

	sig := Block{
		Kind:  BlockSignatures,
		Left:  SignatureSlot{Name: orDash(owner.Name), Role: "Proprietário"},
		Right: SignatureSlot{Name: orDash(tenant.Name), Role: counterpartRole},
	}

	plan := Plan{
		Filename:    Filename(c),
		GeneratedAt: time.Now(),
	}

	var page PlanPage
	cursor := 0
	newPage := func() {
		plan.Pages = append(plan.Pages, page)
		page = PlanPage{}
		cursor = 0
	}

	for _, b := range blocks {
		cost := blockCost(b, cfg)
		if cursor > 0 && cursor+cost > cfg.LinesPerPage {
			newPage()
		}
		page.Blocks = append(page.Blocks, b)
		cursor += cost
	}

	// The signature block must never sit below the safe margin: break to a
	// fresh page instead of truncating.
	sigCost := blockCost(sig, cfg)
	if cursor > 0 && cursor+sigCost > cfg.LinesPerPage-cfg.SafeMarginLines {
		newPage()
	}
	page.Blocks = append(page.Blocks, sig)
	plan.Pages = append(plan.Pages, page)

	return plan
}

// blockCost estimates the vertical extent of a block in line units.
func blockCost(b Block, cfg Config) int {
	switch b.Kind {
	case BlockBanner:
		return 4
	case BlockHeading:
		return 2
	case BlockTable:
		return len(b.Rows) + 1
	case BlockText:
		return len(WrapText(b.Text, cfg.LineWidth)) + 1
	case BlockSpacer:
		return 1
	case BlockSignatures:
		return 6
	}
	return 1
}

// WrapText greedily wraps s into lines of at most width characters,
// breaking on spaces only. A single word longer than width gets its own
// line rather than being split.
func WrapText(s string, width int) []string {
	if width <= 0 {
		width = 94
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return lines
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
