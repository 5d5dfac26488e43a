package taxamatch

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

func sorted(ss []string) []string {
	out := append([]string{}, ss...)
	sort.Strings(out)
	return out
}

func TestExactMatcherScenarioS1(t *testing.T) {
	oracle := newFakeOracle("Tyto", "Tytoalba", "Strix")
	m, err := NewExactMatcher(Config{Oracle: oracle, Table: "genus", Column: "name"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Match("Tyto")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"Tyto"}) {
		t.Errorf("got %v, want [Tyto]", got)
	}
}

func TestExactMatcherRoundTripP8(t *testing.T) {
	oracle := newFakeOracle("Tyto")
	m, _ := NewExactMatcher(Config{Oracle: oracle, Table: "t", Column: "c"})

	got, _ := m.Match("Tyto")
	if len(got) != 1 || got[0] != "Tyto" {
		t.Errorf("expected {Tyto}, got %v", got)
	}

	got, _ = m.Match("Bubo")
	if len(got) != 0 {
		t.Errorf("expected {}, got %v", got)
	}
}

func TestExactMatcherEmptyQuery(t *testing.T) {
	m, _ := NewExactMatcher(Config{Oracle: newFakeOracle(), Table: "t", Column: "c"})
	if _, err := m.Match(""); !isKind(err, EmptyQuery) {
		t.Errorf("expected EmptyQuery, got %v", err)
	}
}

func TestDLMatcherFullModeScenarioS2(t *testing.T) {
	oracle := newFakeOracle("Tyto", "Tyyo", "Tyot", "Stix")
	m, err := NewDLMatcher(Config{Oracle: oracle, Table: "t", Column: "c", K: 1}, FullMode)
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Match("Tyto")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Tyto", "Tyyo", "Tyot"}
	if !reflect.DeepEqual(sorted(got), sorted(want)) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDLMatcherWildcardScenarioS4(t *testing.T) {
	oracle := newFakeOracle("Ictalurus")
	m, err := NewDLMatcher(Config{Oracle: oracle, Table: "t", Column: "c"}, WildcardMode)
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Match("Ictaluris")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"Ictalurus"}) {
		t.Errorf("got %v, want [Ictalurus]", got)
	}
}

func TestDLMatcherWildcardRejectsKGreaterThanOne(t *testing.T) {
	oracle := newFakeOracle("Ictalurus")
	_, err := NewDLMatcher(Config{Oracle: oracle, Table: "t", Column: "c", K: 2}, WildcardMode)
	if !isKind(err, InvalidConfig) {
		t.Errorf("expected InvalidConfig for WILDCARD mode with k=2, got %v", err)
	}
}

func TestDLMatcherSetModeRejectsWildcardAtKGreaterThanOne(t *testing.T) {
	oracle := newFakeOracle("Ictalurus")
	m, err := NewDLMatcher(Config{Oracle: oracle, Table: "t", Column: "c", K: 2}, FullMode)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SetMode(WildcardMode); !isKind(err, InvalidConfig) {
		t.Errorf("expected InvalidConfig, got %v", err)
	}
}

func TestQgramMatcherScenarioS3(t *testing.T) {
	oracle := newFakeOracle("Anas", "Anis", "Anaconda")
	m, err := NewQgramMatcher(Config{Oracle: oracle, Table: "t", Column: "c", QCutoff: 0.4})
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Match("Anas")
	if err != nil {
		t.Fatal(err)
	}
	contains := func(ss []string, s string) bool {
		for _, x := range ss {
			if x == s {
				return true
			}
		}
		return false
	}
	if !contains(got, "Anas") || !contains(got, "Anis") {
		t.Errorf("expected Anas and Anis in %v", got)
	}
	if contains(got, "Anaconda") {
		t.Errorf("did not expect Anaconda in %v", got)
	}
}

func TestQgramMatcherInvalidCutoff(t *testing.T) {
	oracle := newFakeOracle()
	if _, err := NewQgramMatcher(Config{Oracle: oracle, Table: "t", Column: "c", QCutoff: 1.5}); !isKind(err, InvalidConfig) {
		t.Errorf("expected InvalidConfig, got %v", err)
	}
}

func TestQgramMatchScoredProjectionEquivalence(t *testing.T) {
	oracle := newFakeOracle("Anas", "Anis", "Anaconda")
	m, _ := NewQgramMatcher(Config{Oracle: oracle, Table: "t", Column: "c"})

	plain, err := m.Match("Anas")
	if err != nil {
		t.Fatal(err)
	}
	scored, err := m.MatchScored("Anas")
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, r := range scored {
		names = append(names, r.Name)
	}
	if !reflect.DeepEqual(sorted(plain), sorted(names)) {
		t.Errorf("Match and MatchScored diverged: %v vs %v", plain, names)
	}
}

func TestSoundexMatcherScenarioS5(t *testing.T) {
	oracle := newFakeOracle("Robert", "Rupert", "Rubin")
	m, err := NewSoundexMatcher(Config{Oracle: oracle, Table: "t", Column: "c"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Match("Robert")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatalf("expected at least the query's own name to come back, got none")
	}
	for _, n := range got {
		if n != "Robert" && n != "Rupert" && n != "Rubin" {
			t.Errorf("unexpected name %q in Soundex results", n)
		}
	}
}

func TestDoubleMetaphoneMatcherDedupesUnion(t *testing.T) {
	oracle := newFakeOracle("Smith", "Smyth", "Psmith")
	m, err := NewDoubleMetaphoneMatcher(Config{Oracle: oracle, Table: "t", Column: "c"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Match("Smith")
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]int{}
	for _, n := range got {
		seen[n]++
	}
	for name, count := range seen {
		if count > 1 {
			t.Errorf("%q appeared %d times, want at most once", name, count)
		}
	}
}

func TestHybridMatcherLengthGates(t *testing.T) {
	oracle := newFakeOracle("Turdus", "Turdidae", "Strix")

	// S6: |Q|=4 == lowerlen -> DL-only branch, k=1 (two insertions away
	// from Turdus, so no match at k=1).
	m, err := NewHybridMatcher(Config{Oracle: oracle, Table: "t", Column: "c"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Match("Turd")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no matches for 'Turd' at k=1 DL-only, got %v", got)
	}
}

func TestHybridConsistencyP9(t *testing.T) {
	oracle := newFakeOracle("Anasa", "Anasb", "Anascc")
	m, err := NewHybridMatcher(Config{Oracle: oracle, Table: "t", Column: "c"})
	if err != nil {
		t.Fatal(err)
	}

	qgram, _ := NewQgramMatcher(Config{Oracle: oracle, Table: "t", Column: "c"})
	dl, _ := NewDLMatcher(Config{Oracle: oracle, Table: "t", Column: "c"}, FullMode)

	query := "Anasx" // length 5, inside (lowerlen=4, upperlen=9)
	hybridResults, err := m.Match(query)
	if err != nil {
		t.Fatal(err)
	}
	qgramResults, _ := qgram.Match(query)
	dlResults, _ := dl.Match(query)

	contains := func(haystack []string, needle string) bool {
		for _, h := range haystack {
			if h == needle {
				return true
			}
		}
		return false
	}
	for _, n := range qgramResults {
		if !contains(hybridResults, n) {
			t.Errorf("hybrid result missing qgram member %q", n)
		}
	}
	for _, n := range dlResults {
		if !contains(hybridResults, n) {
			t.Errorf("hybrid result missing DL member %q", n)
		}
	}
}

func TestHybridOrderPreservesQgramFirstN7(t *testing.T) {
	oracle := newFakeOracle("Anasx", "Bnasx")
	m, err := NewHybridMatcher(Config{Oracle: oracle, Table: "t", Column: "c", QCutoff: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	got, err := m.Match("Anasx")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) > 0 && got[0] != "Anasx" {
		t.Errorf("expected q-gram's own exact hit first, got order %v", got)
	}
}

func TestOracleErrorPropagation(t *testing.T) {
	wantErr := errOracleFixture
	oracle := erroringOracle{err: wantErr}

	matchers := map[string]Matcher{}
	m1, _ := NewExactMatcher(Config{Oracle: oracle, Table: "t", Column: "c"})
	matchers["exact"] = m1
	m2, _ := NewQgramMatcher(Config{Oracle: oracle, Table: "t", Column: "c"})
	matchers["qgram"] = m2
	m3, _ := NewDLMatcher(Config{Oracle: oracle, Table: "t", Column: "c"}, FullMode)
	matchers["dl"] = m3
	m4, _ := NewSoundexMatcher(Config{Oracle: oracle, Table: "t", Column: "c"})
	matchers["soundex"] = m4

	for name, m := range matchers {
		if _, err := m.Match("query"); !isKind(err, OracleError) {
			t.Errorf("%s: expected OracleError, got %v", name, err)
		}
	}
}

var errOracleFixture = errors.New("oracle unavailable")
