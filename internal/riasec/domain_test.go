package riasec

import "testing"

func TestAlphabetOrder(t *testing.T) {
	want := []Domain{"R", "I", "A", "S", "E", "C"}
	if len(Alphabet) != len(want) {
		t.Fatalf("alphabet length = %d, want %d", len(Alphabet), len(want))
	}
	for i, d := range want {
		if Alphabet[i] != d {
			t.Errorf("Alphabet[%d] = %q, want %q", i, Alphabet[i], d)
		}
		if Alphabet[i].Rank() != i {
			t.Errorf("Rank(%q) = %d, want %d", Alphabet[i], Alphabet[i].Rank(), i)
		}
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("S")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d != Social || d.Name() != "Social" {
		t.Errorf("got %q (%s)", d, d.Name())
	}

	if _, err := Parse("X"); err == nil {
		t.Error("expected error for unknown tag")
	}
}

func TestUnknownDomainSortsLast(t *testing.T) {
	if Domain("X").Rank() <= Conventional.Rank() {
		t.Error("unknown domain should rank after all known domains")
	}
}
