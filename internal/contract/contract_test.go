package contract

import "testing"

func TestShortID(t *testing.T) {
	cases := map[string]string{
		"ctr-2026-0042": "0042",
		"abcd":          "abcd",
		"ab":            "ab",
		"":              "",
	}
	for id, want := range cases {
		c := Contract{ID: id}
		if got := c.ShortID(); got != want {
			t.Errorf("ShortID(%q): expected %q, got %q", id, want, got)
		}
	}
}

func TestTypeLabel(t *testing.T) {
	if TypeRental.Label() != "Locação" {
		t.Errorf("rental label: %q", TypeRental.Label())
	}
	if TypeSale.Label() != "Venda" {
		t.Errorf("sale label: %q", TypeSale.Label())
	}
}

func TestStatusLabel(t *testing.T) {
	cases := map[Status]string{
		StatusActive:    "Ativo",
		StatusCompleted: "Concluído",
		StatusExpiring:  "A vencer",
		StatusLate:      "Atrasado",
		StatusDraft:     "Rascunho",
		Status("weird"): "weird",
	}
	for s, want := range cases {
		if got := s.Label(); got != want {
			t.Errorf("%s.Label(): expected %q, got %q", s, want, got)
		}
	}
}

func TestSigned(t *testing.T) {
	if (Contract{SignatureStatus: SignaturePending}).Signed() {
		t.Errorf("pending contract reported signed")
	}
	if !(Contract{SignatureStatus: SignatureSigned}).Signed() {
		t.Errorf("signed contract reported unsigned")
	}
}
