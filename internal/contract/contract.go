package contract

import "time"

// Type distinguishes the two supported contract kinds.
type Type string

const (
	TypeRental Type = "rental"
	TypeSale   Type = "sale"
)

// Label returns the display name used in generated documents.
func (t Type) Label() string {
	if t == TypeSale {
		return "Venda"
	}
	return "Locação"
}

// SignatureStatus tracks whether the contract has been signed.
type SignatureStatus string

const (
	SignaturePending SignatureStatus = "pending"
	SignatureSigned  SignatureStatus = "signed"
)

// Status is the contract lifecycle state maintained by the CRUD layer.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusExpiring  Status = "expiring"
	StatusLate      Status = "late"
	StatusDraft     Status = "draft"
)

var statusLabels = map[Status]string{
	StatusActive:    "Ativo",
	StatusCompleted: "Concluído",
	StatusExpiring:  "A vencer",
	StatusLate:      "Atrasado",
	StatusDraft:     "Rascunho",
}

// Label maps a lifecycle status to its fixed display label. Unknown states
// fall back to the raw value so a new upstream status is still visible.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Party is a natural or legal person referenced by a contract.
type Party struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"` // tax id (CPF/CNPJ)
	Address  string `json:"address,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Property is the real-estate unit a contract refers to.
type Property struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"` // free-text "street, city" address
}

// Agency is the process-wide identity block of the managing agency.
// It is injected configuration, never per-contract state.
type Agency struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	License  string `json:"license"` // CRECI registration
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	LogoRef  string `json:"logo_ref,omitempty"`
}

// Contract is a read-only snapshot of a rental or sale agreement.
// This subsystem never mutates it.
type Contract struct {
	ID             string     `json:"id"`
	Type           Type       `json:"type"`
	Value          float64    `json:"value"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	DueDay         int        `json:"due_day"`
	CommissionRate float64    `json:"commission_rate"`
	TemplateID     string     `json:"template_id,omitempty"`
	PropertyID     string     `json:"property_id"`
	OwnerID        string     `json:"owner_id"`
	ClientID       string     `json:"client_id"`
	Status         Status     `json:"status"`

	SignatureStatus SignatureStatus `json:"signature_status"`
	SignatureRef    string          `json:"signature_ref,omitempty"` // opaque captured-image reference
	SignedAt        *time.Time      `json:"signed_at,omitempty"`
}

// ShortID returns the last four characters of the contract id, used in
// running titles and document numbers.
func (c Contract) ShortID() string {
	if len(c.ID) <= 4 {
		return c.ID
	}
	return c.ID[len(c.ID)-4:]
}

// Signed reports whether the contract carries a captured signature.
func (c Contract) Signed() bool {
	return c.SignatureStatus == SignatureSigned
}
