package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/imobly/docforge/internal/export"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// handleExport streams the independently laid-out .docx rendition.
// The document is fully rendered into memory first so a backend failure
// never leaves partial output on the wire.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	c, ok := s.reg.Contract(chi.URLParam(r, "contractID"))
	if !ok {
		jsonError(w, "contract not found", http.StatusNotFound)
		return
	}

	prop, _ := s.reg.Property(c.PropertyID)
	owner, _ := s.reg.Party(c.OwnerID)
	tenant, _ := s.reg.Party(c.ClientID)

	plan := export.Layout(c, prop, owner, tenant, s.cfg.Agency(), s.cfg.Export())

	var buf bytes.Buffer
	if err := export.Write(plan, &buf); err != nil {
		s.log.Error("export failed", "contract_id", c.ID, "error", err)
		jsonError(w, "document export unavailable: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", plan.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}
