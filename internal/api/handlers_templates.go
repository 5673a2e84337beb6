package api

import (
	"encoding/json"
	"net/http"

	"github.com/imobly/docforge/internal/template"
)

// templateSummary is a catalog entry without the full clause body.
type templateSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tokens      []string `json:"tokens"`
	Default     bool     `json:"default"`
}

// handleListTemplates lists the clause-template catalog.
func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	var out []templateSummary
	for _, t := range template.All() {
		out = append(out, templateSummary{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Tokens:      template.Tokens(t.Body),
			Default:     t.ID == template.DefaultID,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"templates": out})
}

// handleListContracts lists the contracts in the current snapshot.
func (s *Server) handleListContracts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"contracts": s.reg.Contracts()})
}
