package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/imobly/docforge/internal/contract"
	"github.com/imobly/docforge/internal/export"
	"github.com/imobly/docforge/internal/paginate"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Snapshot seed
	SeedFile string

	// Pagination budgets (character-cost heuristics, tunable)
	BudgetFirst       int
	BudgetRest        int
	BlankLineCost     int
	ParagraphOverhead int

	// Export geometry (line units)
	ExportLinesPerPage int
	ExportLineWidth    int
	ExportSafeMargin   int

	// Agency identity block (process-wide, injected)
	AgencyName     string
	AgencyDocument string
	AgencyLicense  string
	AgencyAddress  string
	AgencyPhone    string
	AgencyEmail    string
	AgencyLogoRef  string

	// Fallback city when a property location has no city segment
	DefaultCity string
}

func Load() Config {
	return Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("DOCFORGE_API_KEY"),

		SeedFile: envOr("SEED_FILE", ""),

		BudgetFirst:       envInt("BUDGET_FIRST_PAGE", 2200),
		BudgetRest:        envInt("BUDGET_REST_PAGE", 3200),
		BlankLineCost:     envInt("BLANK_LINE_COST", 50),
		ParagraphOverhead: envInt("PARAGRAPH_OVERHEAD", 30),

		ExportLinesPerPage: envInt("EXPORT_LINES_PER_PAGE", 46),
		ExportLineWidth:    envInt("EXPORT_LINE_WIDTH", 94),
		ExportSafeMargin:   envInt("EXPORT_SAFE_MARGIN", 6),

		AgencyName:     envOr("AGENCY_NAME", "Imobly Negócios Imobiliários Ltda"),
		AgencyDocument: envOr("AGENCY_DOCUMENT", "12.345.678/0001-90"),
		AgencyLicense:  envOr("AGENCY_LICENSE", "CRECI/SP 24.680-J"),
		AgencyAddress:  envOr("AGENCY_ADDRESS", "Av. Paulista, 1000 - São Paulo/SP"),
		AgencyPhone:    envOr("AGENCY_PHONE", "(11) 3456-7890"),
		AgencyEmail:    envOr("AGENCY_EMAIL", "contato@imobly.com.br"),
		AgencyLogoRef:  envOr("AGENCY_LOGO_REF", "/assets/logo.png"),

		DefaultCity: envOr("DEFAULT_CITY", "São Paulo"),
	}
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("DOCFORGE_API_KEY is required")
	}
	if c.BudgetFirst <= 0 || c.BudgetRest <= 0 {
		return fmt.Errorf("page budgets must be positive")
	}
	if c.ExportLinesPerPage <= c.ExportSafeMargin {
		return fmt.Errorf("EXPORT_LINES_PER_PAGE must exceed EXPORT_SAFE_MARGIN")
	}
	return nil
}

// Agency returns the injected agency identity block.
func (c Config) Agency() contract.Agency {
	return contract.Agency{
		Name:     c.AgencyName,
		Document: c.AgencyDocument,
		License:  c.AgencyLicense,
		Address:  c.AgencyAddress,
		Phone:    c.AgencyPhone,
		Email:    c.AgencyEmail,
		LogoRef:  c.AgencyLogoRef,
	}
}

// Paginate returns the pagination budgets as an engine config.
func (c Config) Paginate() paginate.Config {
	return paginate.Config{
		BudgetFirst:       c.BudgetFirst,
		BudgetRest:        c.BudgetRest,
		BlankLineCost:     c.BlankLineCost,
		ParagraphOverhead: c.ParagraphOverhead,
	}
}

// Export returns the exporter page geometry.
func (c Config) Export() export.Config {
	return export.Config{
		LinesPerPage:    c.ExportLinesPerPage,
		LineWidth:       c.ExportLineWidth,
		SafeMarginLines: c.ExportSafeMargin,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
