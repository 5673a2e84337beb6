package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
)

// printPage is one page prepared for the print template, with the clause
// text already converted to HTML.
type printPage struct {
	PageView
	BodyHTML template.HTML
}

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: Georgia, serif; background: #f0f0f0; margin: 0; }
  .page { position: relative; width: 794px; min-height: 1123px; margin: 16px auto;
          padding: 56px 64px; box-sizing: border-box; background: #fff; overflow: hidden; }
  .letterhead { border-bottom: 2px solid #333; padding-bottom: 12px; margin-bottom: 20px; }
  .letterhead h1 { margin: 0; font-size: 20px; }
  .letterhead p { margin: 2px 0; font-size: 11px; color: #444; }
  .doc-title { text-align: center; font-size: 16px; font-weight: bold; margin: 16px 0; }
  .running-title { font-size: 11px; color: #666; border-bottom: 1px solid #ccc;
                   padding-bottom: 6px; margin-bottom: 16px; }
  .content { font-size: 12px; line-height: 1.6; text-align: justify; }
  .closing { text-align: right; margin-top: 32px; font-size: 12px; }
  .signatures { width: 100%; margin-top: 48px; border-collapse: collapse; }
  .signatures td { width: 50%; padding: 32px 24px 8px; text-align: center;
                   font-size: 11px; vertical-align: bottom; }
  .signatures .line { border-top: 1px solid #333; padding-top: 4px; }
  .footer { position: absolute; bottom: 24px; left: 0; right: 0;
            text-align: center; font-size: 10px; color: #888; }
  .watermark { position: absolute; top: 45%; left: 0; right: 0; text-align: center;
               font-size: 96px; color: rgba(200, 30, 30, 0.12); font-weight: bold;
               transform: rotate(-30deg); pointer-events: none; }
  @media print { body { background: #fff; } .page { margin: 0; page-break-after: always; } }
</style>
</head>
<body>
{{range .Pages}}<div class="page">
{{if .Watermark}}<div class="watermark">RASCUNHO</div>{{end}}
{{if .IsFirst}}<div class="letterhead">
<h1>{{.Letterhead.AgencyName}}</h1>
<p>CNPJ {{.Letterhead.Document}} · CRECI {{.Letterhead.License}}</p>
<p>{{.Letterhead.Address}}</p>
<p>{{.Letterhead.Phone}} · {{.Letterhead.Email}}</p>
</div>
<div class="doc-title">{{.Title}}</div>
{{else}}<div class="running-title">{{.RunningTitle}}</div>
{{end}}<div class="content">{{.BodyHTML}}</div>
{{if .IsLast}}<div class="closing">{{.Closing}}</div>
<table class="signatures">
{{range .SignatureGrid}}<tr>
{{range .}}<td><div class="line">{{.Role}}{{if .Name}}<br>{{.Name}}{{end}}</div></td>
{{end}}</tr>
{{end}}</table>
{{end}}<div class="footer">{{.Footer}}</div>
</div>
{{end}}</body>
</html>
`))

// PrintHTML renders the paginated document as the print surface handed to
// the host environment's print function. Clause text passes through
// goldmark so emphasis markers in template bodies survive.
func PrintHTML(view DocumentView, w io.Writer) error {
	if view.EditMode {
		return fmt.Errorf("print requires a paginated view, not edit mode")
	}

	title := ""
	pages := make([]printPage, 0, len(view.Pages))
	for _, p := range view.Pages {
		if p.IsFirst {
			title = p.Title
		}
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(p.Content), &buf); err != nil {
			return fmt.Errorf("convert page %d: %w", p.Index, err)
		}
		pages = append(pages, printPage{PageView: p, BodyHTML: template.HTML(buf.String())})
	}

	data := struct {
		Title string
		Pages []printPage
	}{Title: title, Pages: pages}

	if err := printTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("execute print template: %w", err)
	}
	return nil
}
