package export

import (
	"fmt"
	"io"

	"github.com/fumiama/go-docx"
)

// Write renders a laid-out plan as a .docx stream. This is the second pass:
// the page count is final, so every page receives its footer before the
// page break is emitted.
//
// Callers that must not ship partial output should write into a buffer and
// copy on success.
func Write(plan Plan, w io.Writer) error {
	if len(plan.Pages) == 0 {
		return fmt.Errorf("empty export plan")
	}

	doc := docx.New().WithDefaultTheme()
	total := len(plan.Pages)

	for i, page := range plan.Pages {
		for _, b := range page.Blocks {
			writeBlock(doc, b)
		}

		footer := fmt.Sprintf("Gerado em %s — página %d de %d",
			plan.GeneratedAt.Format("02/01/2006"), i+1, total)
		doc.AddParagraph().Justification("center").AddText(footer).Size("16").Color("808080")

		if i < total-1 {
			doc.AddParagraph().AddPageBreaks()
		}
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}

func writeBlock(doc *docx.Docx, b Block) {
	switch b.Kind {
	case BlockBanner:
		doc.AddParagraph().Justification("center").AddText(b.Text).Size("32").Bold()
		doc.AddParagraph().Justification("center").AddText(b.Sub).Size("20").Color("595959")

	case BlockHeading:
		doc.AddParagraph().AddText(b.Text).Size("24").Bold()

	case BlockTable:
		tbl := doc.AddTable(len(b.Rows), 2, 9000, nil)
		for i, row := range b.Rows {
			cells := tbl.TableRows[i].TableCells
			cells[0].AddParagraph().AddText(row[0]).Bold()
			cells[1].AddParagraph().AddText(row[1])
		}

	case BlockText:
		doc.AddParagraph().Justification("both").AddText(b.Text)

	case BlockSpacer:
		doc.AddParagraph()

	case BlockSignatures:
		doc.AddParagraph()
		tbl := doc.AddTable(1, 2, 9000, nil)
		cells := tbl.TableRows[0].TableCells
		writeSignature(cells[0], b.Left)
		writeSignature(cells[1], b.Right)
	}
}

func writeSignature(cell *docx.WTableCell, slot SignatureSlot) {
	cell.AddParagraph().Justification("center").AddText("_________________________")
	cell.AddParagraph().Justification("center").AddText(slot.Name).Size("20")
	cell.AddParagraph().Justification("center").AddText(slot.Role).Size("18").Color("595959")
}
