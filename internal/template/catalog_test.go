package template

import (
	"strings"
	"testing"
)

func TestLookup_KnownID(t *testing.T) {
	tpl, ok := Lookup("sale-standard")
	if !ok {
		t.Fatalf("expected sale-standard to exist")
	}
	if tpl.ID != "sale-standard" {
		t.Errorf("expected sale-standard, got %s", tpl.ID)
	}
}

func TestLookup_UnknownFallsBackToDefault(t *testing.T) {
	for _, id := range []string{"", "no-such-template"} {
		tpl, ok := Lookup(id)
		if ok {
			t.Errorf("Lookup(%q): expected ok=false", id)
		}
		if tpl.ID != DefaultID {
			t.Errorf("Lookup(%q): expected default template, got %s", id, tpl.ID)
		}
	}
}

func TestCatalog_DefaultExists(t *testing.T) {
	if _, ok := Lookup(DefaultID); !ok {
		t.Fatalf("default template %q missing from catalog", DefaultID)
	}
}

func TestCatalog_EntriesComplete(t *testing.T) {
	all := All()
	if len(all) < 3 {
		t.Fatalf("expected at least 3 catalog entries, got %d", len(all))
	}
	seen := make(map[string]bool)
	for _, tpl := range all {
		if tpl.ID == "" || tpl.Title == "" || tpl.Description == "" || tpl.Body == "" {
			t.Errorf("template %q has empty fields", tpl.ID)
		}
		if seen[tpl.ID] {
			t.Errorf("duplicate template id %q", tpl.ID)
		}
		seen[tpl.ID] = true
		if len(Tokens(tpl.Body)) == 0 {
			t.Errorf("template %q declares no placeholder tokens", tpl.ID)
		}
	}
}

func TestTokens_UniqueInAppearanceOrder(t *testing.T) {
	body := "a {{B_TOKEN}} b {{A_TOKEN}} c {{B_TOKEN}}"
	got := Tokens(body)
	want := []string{"{{B_TOKEN}}", "{{A_TOKEN}}"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTokenPattern_Syntax(t *testing.T) {
	if !TokenPattern.MatchString("{{OWNER_NAME}}") {
		t.Errorf("expected uppercase token to match")
	}
	for _, s := range []string{"{{lower}}", "{OWNER}", "{{ SPACED }}"} {
		if TokenPattern.MatchString(s) {
			t.Errorf("%q should not match the token syntax", s)
		}
	}
	if strings.Contains(TokenPattern.String(), " ") {
		t.Errorf("token pattern should not allow whitespace")
	}
}
