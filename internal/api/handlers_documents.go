package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/imobly/docforge/internal/contract"
	"github.com/imobly/docforge/internal/merge"
	"github.com/imobly/docforge/internal/paginate"
	"github.com/imobly/docforge/internal/render"
	"github.com/imobly/docforge/internal/template"
)

const maxBodyBytes = 1 << 20 // 1MB is generous for a legal-text body

// composed is a fully resolved document: merged (or draft-overridden) body
// plus the metadata every renderer needs.
type composed struct {
	Contract contract.Contract
	Template template.Template
	Body     string
	Revision string // set when a draft override was applied
	Meta     render.Meta
}

// compose resolves a contract into its document body and render metadata.
// Missing party or property records degrade to fallback literals; an
// unknown template id falls back to the default template. Only a missing
// contract is an error.
func (s *Server) compose(contractID string) (composed, bool) {
	c, ok := s.reg.Contract(contractID)
	if !ok {
		return composed{}, false
	}

	tpl, found := template.Lookup(c.TemplateID)
	if !found && c.TemplateID != "" {
		s.log.Warn("unknown template id, using default", "contract_id", c.ID, "template_id", c.TemplateID)
	}

	owner, ownerOK := s.reg.Party(c.OwnerID)
	client, clientOK := s.reg.Party(c.ClientID)
	prop, _ := s.reg.Property(c.PropertyID)

	mergeCfg := merge.Config{
		Agency:      s.cfg.Agency(),
		DefaultCity: s.cfg.DefaultCity,
	}
	fields := merge.Fields(c, owner, ownerOK, client, clientOK, prop, mergeCfg)

	body := merge.Merge(tpl.Body, fields)
	revision := ""
	if d, ok := s.drafts.Get(c.ID); ok {
		body = d.Body
		revision = d.Revision
	}

	return composed{
		Contract: c,
		Template: tpl,
		Body:     body,
		Revision: revision,
		Meta: render.Meta{
			Contract:      c,
			Property:      prop,
			Agency:        s.cfg.Agency(),
			TemplateTitle: tpl.Title,
			ClientName:    fields["{{CLIENT_NAME}}"],
			City:          fields["{{CITY}}"],
		},
	}, true
}

// handleDocument returns the merged, paginated document view.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.compose(chi.URLParam(r, "contractID"))
	if !ok {
		jsonError(w, "contract not found", http.StatusNotFound)
		return
	}

	res := paginate.Paginate(doc.Body, s.cfg.Paginate())
	view := render.Build(res, doc.Meta)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"contract_id": doc.Contract.ID,
		"template_id": doc.Template.ID,
		"revision":    doc.Revision,
		"document":    view,
	})
}

// handlePrint returns the HTML print surface for the host print function.
func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.compose(chi.URLParam(r, "contractID"))
	if !ok {
		jsonError(w, "contract not found", http.StatusNotFound)
		return
	}

	res := paginate.Paginate(doc.Body, s.cfg.Paginate())
	view := render.Build(res, doc.Meta)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.PrintHTML(view, w); err != nil {
		s.log.Error("print render failed", "contract_id", doc.Contract.ID, "error", err)
	}
}

// handleEditView returns the unpaginated body as a single editable surface.
func (s *Server) handleEditView(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.compose(chi.URLParam(r, "contractID"))
	if !ok {
		jsonError(w, "contract not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"contract_id": doc.Contract.ID,
		"revision":    doc.Revision,
		"document":    render.EditView(doc.Body),
	})
}

// handleCommitBody stores an edited body; subsequent views re-paginate it.
func (s *Server) handleCommitBody(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "contractID")
	if _, ok := s.reg.Contract(contractID); !ok {
		jsonError(w, "contract not found", http.StatusNotFound)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "failed to read body: "+err.Error(), http.StatusBadRequest)
		return
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := json.Unmarshal(data, &req); err != nil {
		jsonError(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Body == "" {
		jsonError(w, "body is required", http.StatusBadRequest)
		return
	}

	d := s.drafts.Put(contractID, req.Body)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"contract_id": contractID,
		"revision":    d.Revision,
		"updated_at":  d.UpdatedAt,
	})
}

// handleDiscardBody drops the draft override.
func (s *Server) handleDiscardBody(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "contractID")
	s.drafts.Discard(contractID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"contract_id": contractID, "discarded": true})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
