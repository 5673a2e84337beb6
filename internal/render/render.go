// Package render turns a page sequence into the per-page chrome shown on
// screen and sent to the host print function: letterhead, running titles,
// footers, draft watermark and the final-page signature grid.
package render

import (
	"fmt"
	"time"

	"github.com/imobly/docforge/internal/contract"
	"github.com/imobly/docforge/internal/paginate"
)

// Meta is the document-facts input shared by every rendered page.
type Meta struct {
	Contract      contract.Contract
	Property      contract.Property
	Agency        contract.Agency
	TemplateTitle string
	ClientName    string
	City          string
	Today         time.Time // zero value means time.Now()
}

// Letterhead is the first-page agency identity block.
type Letterhead struct {
	AgencyName string `json:"agency_name"`
	Document   string `json:"document"`
	License    string `json:"license"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	LogoRef    string `json:"logo_ref,omitempty"`
}

// SignatureLine is one slot of the final-page signature grid.
type SignatureLine struct {
	Role string `json:"role"`
	Name string `json:"name,omitempty"`
}

// PageView is everything the UI needs to draw one page.
type PageView struct {
	Index   int    `json:"index"`
	Total   int    `json:"total"`
	IsFirst bool   `json:"is_first"`
	IsLast  bool   `json:"is_last"`
	Content string `json:"content"`

	Letterhead   *Letterhead `json:"letterhead,omitempty"`    // first page only
	Title        string      `json:"title,omitempty"`         // first page, centered
	RunningTitle string      `json:"running_title,omitempty"` // non-first pages
	Footer       string      `json:"footer"`
	Watermark    bool        `json:"watermark"`

	Closing       string            `json:"closing,omitempty"` // last page only
	SignatureGrid [][]SignatureLine `json:"signature_grid,omitempty"`
}

// DocumentView is the rendered document: either the paginated sequence or
// the single editable surface of edit mode.
type DocumentView struct {
	Pages    []PageView `json:"pages,omitempty"`
	EditMode bool       `json:"edit_mode"`
	Body     string     `json:"body,omitempty"` // edit mode only
}

// Build assembles the per-page chrome for a pagination result.
// Missing party/property data never fails here: the merge step already
// substituted fallback literals into the body.
func Build(res paginate.Result, meta Meta) DocumentView {
	today := meta.Today
	if today.IsZero() {
		today = time.Now()
	}
	watermark := !meta.Contract.Signed()
	total := res.Total()

	view := DocumentView{Pages: make([]PageView, 0, total)}
	for _, p := range res.Pages {
		pv := PageView{
			Index:     p.Index,
			Total:     total,
			IsFirst:   p.IsFirst,
			IsLast:    p.IsLast,
			Content:   p.Content,
			Footer:    fmt.Sprintf("Página %d de %d", p.Index, total),
			Watermark: watermark,
		}
		if p.IsFirst {
			pv.Letterhead = &Letterhead{
				AgencyName: meta.Agency.Name,
				Document:   meta.Agency.Document,
				License:    meta.Agency.License,
				Address:    meta.Agency.Address,
				Phone:      meta.Agency.Phone,
				Email:      meta.Agency.Email,
				LogoRef:    meta.Agency.LogoRef,
			}
			pv.Title = meta.TemplateTitle
		} else {
			pv.RunningTitle = fmt.Sprintf("%s — Contrato #%s", meta.Property.Title, meta.Contract.ShortID())
		}
		if p.IsLast {
			pv.Closing = fmt.Sprintf("%s, %s", meta.City, today.Format("02/01/2006"))
			pv.SignatureGrid = signatureGrid(meta)
		}
		view.Pages = append(view.Pages, pv)
	}
	return view
}

// EditView bypasses pagination and exposes the full body as one freely
// editable surface. Leaving edit mode re-paginates whatever body the user
// committed.
func EditView(body string) DocumentView {
	return DocumentView{EditMode: true, Body: body}
}

func signatureGrid(meta Meta) [][]SignatureLine {
	counterpartRole := "Locatário"
	if meta.Contract.Type == contract.TypeSale {
		counterpartRole = "Comprador"
	}
	return [][]SignatureLine{
		{
			{Role: "Administradora", Name: meta.Agency.Name},
			{Role: counterpartRole, Name: meta.ClientName},
		},
		{
			{Role: "Testemunha 1"},
			{Role: "Testemunha 2"},
		},
	}
}
