package service

import (
	"testing"

	"github.com/AlexandreJustinRepia/dtr-denr/config"
)

func newTestNormalizer() *NameNormalizer {
	return NewNameNormalizer(&config.ParserConfig{
		NameDictionary: []string{
			"JUAN", "DELA", "CRUZ", "MARIA", "MARIACRUZ",
			"DANIEL", "RABARA", "DOMINGO", "SANTOS",
		},
		NameExceptions: map[string]string{
			"JUAN DLC": "JUAN DELA CRUZ",
		},
	})
}

func TestNormalizeSegmentsRunTogetherName(t *testing.T) {
	n := newTestNormalizer()

	got := n.Normalize("juandelacruz")
	if got != "JUAN DELA CRUZ" {
		t.Errorf("Normalize(juandelacruz) = %q, want %q", got, "JUAN DELA CRUZ")
	}
}

func TestNormalizeLongestPrefixWins(t *testing.T) {
	n := newTestNormalizer()

	// MARIACRUZ must pre-empt MARIA even though MARIA also prefixes the input.
	got := n.Normalize("mariacruzjuan")
	if got != "MARIACRUZ JUAN" {
		t.Errorf("Normalize(mariacruzjuan) = %q, want %q", got, "MARIACRUZ JUAN")
	}
}

func TestNormalizeExceptionOverridesSegmentation(t *testing.T) {
	n := newTestNormalizer()

	// Space- and case-insensitive match against the exception table.
	for _, raw := range []string{"juandlc", "JUAN DLC", "  juan dlc  "} {
		if got := n.Normalize(raw); got != "JUAN DELA CRUZ" {
			t.Errorf("Normalize(%q) = %q, want exception target %q", raw, got, "JUAN DELA CRUZ")
		}
	}
}

func TestNormalizeMiddleInitial(t *testing.T) {
	n := newTestNormalizer()

	got := n.Normalize("juanq.delacruz")
	if got != "JUAN Q. DELA CRUZ" {
		t.Errorf("Normalize(juanq.delacruz) = %q, want %q", got, "JUAN Q. DELA CRUZ")
	}

	// Trailing initial with no period.
	got = n.Normalize("juandelacruzq")
	if got != "JUAN DELA CRUZ Q" {
		t.Errorf("Normalize(juandelacruzq) = %q, want %q", got, "JUAN DELA CRUZ Q")
	}
}

func TestNormalizeUnknownCapitalRun(t *testing.T) {
	n := newTestNormalizer()

	// XYZ is not in the vocabulary; the capital-run fallback keeps it whole
	// instead of splitting it into single letters.
	got := n.Normalize("xyz juan")
	if got != "XYZ JUAN" {
		t.Errorf("Normalize(xyz juan) = %q, want %q", got, "XYZ JUAN")
	}
}

func TestSanitizeNameStripsNoise(t *testing.T) {
	got := sanitizeName("  jua3n-d. cruz!7 ")
	if got != "JUAN-D. CRUZ" {
		t.Errorf("sanitizeName = %q, want %q", got, "JUAN-D. CRUZ")
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	n := newTestNormalizer()

	first := n.Normalize("danielrabaradomingo")
	for i := 0; i < 10; i++ {
		if got := n.Normalize("danielrabaradomingo"); got != first {
			t.Fatalf("Normalize varied between calls: %q vs %q", got, first)
		}
	}
	if first != "DANIEL RABARA DOMINGO" {
		t.Errorf("Normalize(danielrabaradomingo) = %q, want %q", first, "DANIEL RABARA DOMINGO")
	}
}
