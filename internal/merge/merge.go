// Package merge resolves a contract and its related records into a
// placeholder map and substitutes every token in a clause template body.
// Merging is a pure function: missing parties or fields degrade to fixed
// fallback literals instead of failing, so a best-effort document always
// comes out.
package merge

import (
	"strconv"
	"strings"
	"time"

	"github.com/imobly/docforge/internal/contract"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback literals used when a source value is missing.
const (
	FallbackDocument   = "000.000.000-00"
	FallbackOwnerName  = "PROPRIETÁRIO NÃO INFORMADO"
	FallbackClientName = "CLIENTE NÃO INFORMADO"
	IndeterminateEnd   = "Indeterminado"
	ValueWordsStub     = "Valor por extenso"
)

// Config carries the injected process-wide inputs of a merge.
type Config struct {
	Agency      contract.Agency
	DefaultCity string    // used when the property location has no city segment
	Today       time.Time // zero value means time.Now()
}

// ptBR formats monetary values with Brazilian grouping ("1.234,56").
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Fields builds the placeholder map for one contract. ownerOK / clientOK
// report whether the party records could be resolved; when false the
// corresponding tokens fall back to fixed literals.
func Fields(c contract.Contract, owner contract.Party, ownerOK bool, client contract.Party, clientOK bool, prop contract.Property, cfg Config) map[string]string {
	today := cfg.Today
	if today.IsZero() {
		today = time.Now()
	}

	ownerName, ownerDoc := partyFields(owner, ownerOK, FallbackOwnerName)
	clientName, clientDoc := partyFields(client, clientOK, FallbackClientName)

	endDate := IndeterminateEnd
	days := 0
	if c.EndDate != nil {
		endDate = c.EndDate.Format("02/01/2006")
		days = int(c.EndDate.Sub(c.StartDate).Hours() / 24)
	}

	return map[string]string{
		"{{AGENCY_NAME}}":     cfg.Agency.Name,
		"{{AGENCY_DOCUMENT}}": cfg.Agency.Document,
		"{{AGENCY_LICENSE}}":  cfg.Agency.License,
		"{{AGENCY_ADDRESS}}":  cfg.Agency.Address,
		"{{AGENCY_PHONE}}":    cfg.Agency.Phone,
		"{{AGENCY_EMAIL}}":    cfg.Agency.Email,

		"{{OWNER_NAME}}":      ownerName,
		"{{OWNER_DOCUMENT}}":  ownerDoc,
		"{{CLIENT_NAME}}":     clientName,
		"{{CLIENT_DOCUMENT}}": clientDoc,

		"{{PROPERTY_ADDRESS}}": prop.Location + " - " + prop.Title,
		"{{CITY}}":             City(prop.Location, cfg.DefaultCity),

		"{{VALUE}}":           FormatValue(c.Value),
		"{{VALUE_WORDS}}":     ValueWordsStub,
		"{{START_DATE}}":      c.StartDate.Format("02/01/2006"),
		"{{END_DATE}}":        endDate,
		"{{DURATION_DAYS}}":   strconv.Itoa(days),
		"{{DUE_DAY}}":         strconv.Itoa(c.DueDay),
		"{{COMMISSION_RATE}}": formatNumber(c.CommissionRate),
		"{{TODAY}}":           today.Format("02/01/2006"),
	}
}

// Merge substitutes every occurrence of each field token in body.
// Tokens absent from fields are left untouched so template authoring
// mistakes stay visible in the output.
func Merge(body string, fields map[string]string) string {
	for token, value := range fields {
		body = strings.ReplaceAll(body, token, value)
	}
	return body
}

// City extracts the city as the second comma-delimited segment of a
// free-text location. The "street, city" convention is legacy upstream
// behavior; when no segment exists the configured default applies.
func City(location, fallback string) string {
	parts := strings.Split(location, ",")
	if len(parts) > 1 {
		if city := strings.TrimSpace(parts[1]); city != "" {
			return city
		}
	}
	return fallback
}

// FormatValue renders a monetary value with two decimals and pt-BR
// grouping, e.g. 1234.5 -> "1.234,50".
func FormatValue(v float64) string {
	return ptBR.Sprintf("%.2f", v)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func partyFields(p contract.Party, ok bool, fallbackName string) (name, doc string) {
	name = fallbackName
	doc = FallbackDocument
	if ok {
		if p.Name != "" {
			name = strings.ToUpper(p.Name)
		}
		if p.Document != "" {
			doc = p.Document
		}
	}
	return name, doc
}
