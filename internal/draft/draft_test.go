package draft

import "testing"

func TestStore_PutGetDiscard(t *testing.T) {
	s := NewStore()

	if _, ok := s.Get("ctr-1"); ok {
		t.Fatalf("expected no draft before Put")
	}

	d1 := s.Put("ctr-1", "corpo editado")
	if d1.Revision == "" {
		t.Fatalf("expected a revision id")
	}
	got, ok := s.Get("ctr-1")
	if !ok || got.Body != "corpo editado" {
		t.Fatalf("draft not stored: %v %v", got, ok)
	}

	d2 := s.Put("ctr-1", "segunda edição")
	if d2.Revision == d1.Revision {
		t.Errorf("recommit must produce a new revision")
	}

	s.Discard("ctr-1")
	if _, ok := s.Get("ctr-1"); ok {
		t.Errorf("expected draft gone after Discard")
	}
}

func TestStore_IsolatedPerContract(t *testing.T) {
	s := NewStore()
	s.Put("ctr-1", "um")
	s.Put("ctr-2", "dois")

	a, _ := s.Get("ctr-1")
	b, _ := s.Get("ctr-2")
	if a.Body != "um" || b.Body != "dois" {
		t.Errorf("drafts leaked between contracts: %q %q", a.Body, b.Body)
	}
	s.Discard("ctr-1")
	if _, ok := s.Get("ctr-2"); !ok {
		t.Errorf("discarding one contract dropped another")
	}
}
