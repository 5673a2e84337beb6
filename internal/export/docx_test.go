package export

import (
	"bytes"
	"testing"

	"github.com/imobly/docforge/internal/contract"
)

func TestWrite_ProducesDocxStream(t *testing.T) {
	owner, tenant := exportParties()
	plan := Layout(exportContract(contract.TypeRental), exportProperty(), owner, tenant, exportAgency(), DefaultConfig())

	var buf bytes.Buffer
	if err := Write(plan, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("empty output")
	}
	// A .docx is a zip container.
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Errorf("output does not look like a zip archive")
	}
}

func TestWrite_EmptyPlanFails(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(Plan{}, &buf); err == nil {
		t.Fatalf("expected an error for an empty plan")
	}
	if buf.Len() != 0 {
		t.Errorf("failed write must not leave partial output")
	}
}
