package memoracle

import (
	"testing"

	"github.com/taxamatch/taxamatch"
)

func TestLookupExactAndSet(t *testing.T) {
	o := New([]string{"Tyto", "Strix"})

	ok, err := o.LookupExact("Tyto")
	if err != nil || !ok {
		t.Fatalf("LookupExact(Tyto) = %v, %v; want true, nil", ok, err)
	}

	got, err := o.LookupSet([]string{"Tyto", "Bubo", "Strix"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("LookupSet returned %v, want 2 matches", got)
	}
}

func TestLookupPatterns(t *testing.T) {
	o := New([]string{"Ictalurus"})
	got, err := o.LookupPatterns([]string{"Ictalur_s"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "Ictalurus" {
		t.Errorf("got %v, want [Ictalurus]", got)
	}
}

func TestLookupTrigramExcludesBelowCutoff(t *testing.T) {
	o := New([]string{"Anas", "Anis", "Anaconda"})
	got, err := o.LookupTrigram("Anas", 0.4)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range got {
		if r.Name == "Anaconda" {
			t.Errorf("did not expect Anaconda above the 0.4 cutoff, got score %v", r.Score)
		}
	}
}

func TestLookupPhoneticCodecIdentity(t *testing.T) {
	o := New([]string{"Robert", "Rupert"})
	got, err := o.LookupPhonetic("Robert", taxamatch.Soundex)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, n := range got {
		if n == "Robert" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Robert's own Soundex code to match itself, got %v", got)
	}
}

func TestOracleSatisfiesInterface(t *testing.T) {
	var _ taxamatch.Oracle = New(nil)
}
