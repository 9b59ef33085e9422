package service

import (
	"sort"
	"strings"

	"github.com/AlexandreJustinRepia/dtr-denr/config"
)

// ── Name normalization ──────────────────────────────────────
//
// Biometric dumps carry names as the scanner stored them: arbitrary casing,
// stray punctuation, and often no spacing at all ("danielrabaradomingo").
// Normalization recovers the canonical spaced form that every downstream
// record is keyed on. The priority is fixed:
//
//   1. sanitize (letters, periods, hyphens, spaces; upper-case)
//   2. exception override — known-broken variants map straight to their
//      canonical name, because some real names cannot be reconstructed by
//      segmentation
//   3. dictionary segmentation — longest vocabulary prefix first, then an
//      ordered fallback chain for unknown text
//
// Normalize is a pure function over the injected tables: the same raw
// fragment always yields the same canonical name.
// ─────────────────────────────────────────────────────────────

// NameNormalizer canonicalizes raw name fragments.
type NameNormalizer struct {
	exceptions map[string]string // space-stripped upper-case variant → canonical
	dictionary []string          // vocabulary, sorted longest-first
}

// NewNameNormalizer builds a normalizer from the injected parser tables.
// The tables are copied; later mutation of the config slices has no effect.
func NewNameNormalizer(cfg *config.ParserConfig) *NameNormalizer {
	exceptions := make(map[string]string, len(cfg.NameExceptions))
	for variant, canonical := range cfg.NameExceptions {
		key := strings.ReplaceAll(strings.ToUpper(variant), " ", "")
		exceptions[key] = canonical
	}

	dictionary := make([]string, len(cfg.NameDictionary))
	for i, w := range cfg.NameDictionary {
		dictionary[i] = strings.ToUpper(w)
	}
	// Longest-first so a short word never pre-empts a longer word sharing
	// its prefix (MARIACRUZ before MARIA). Ties break lexicographically to
	// keep segmentation deterministic regardless of config order.
	sort.SliceStable(dictionary, func(i, j int) bool {
		if len(dictionary[i]) != len(dictionary[j]) {
			return len(dictionary[i]) > len(dictionary[j])
		}
		return dictionary[i] < dictionary[j]
	})

	return &NameNormalizer{exceptions: exceptions, dictionary: dictionary}
}

// Normalize returns the canonical, space-delimited, upper-case form of a raw
// name fragment.
func (n *NameNormalizer) Normalize(raw string) string {
	s := sanitizeName(raw)

	// Exception override takes precedence over all segmentation logic.
	if canonical, ok := n.exceptions[strings.ReplaceAll(s, " ", "")]; ok {
		return canonical
	}

	return strings.Join(n.segment(s), " ")
}

// sanitizeName strips everything but letters, periods, hyphens and spaces,
// then upper-cases.
func sanitizeName(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r == '.', r == '-', r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// segment splits a sanitized name into tokens: vocabulary words first
// (longest prefix wins), then the fallback rule chain.
func (n *NameNormalizer) segment(s string) []string {
	var tokens []string
	remaining := s

	for remaining != "" {
		if remaining[0] == ' ' {
			remaining = remaining[1:]
			continue
		}

		if word, ok := n.matchVocabulary(remaining); ok {
			tokens = append(tokens, word)
			remaining = remaining[len(word):]
			continue
		}

		for _, rule := range segmentFallbacks {
			if token, ok := rule.match(remaining); ok {
				tokens = append(tokens, token)
				remaining = remaining[len(token):]
				break
			}
		}
	}

	return tokens
}

// matchVocabulary returns the longest vocabulary word prefixing remaining.
func (n *NameNormalizer) matchVocabulary(remaining string) (string, bool) {
	for _, word := range n.dictionary {
		if strings.HasPrefix(remaining, word) {
			return word, true
		}
	}
	return "", false
}

// segmentRule is one fallback in the segmentation chain. Rules are tried in
// the order of segmentFallbacks; the final rule always matches, which
// guarantees the segmentation loop terminates.
type segmentRule struct {
	name  string
	match func(remaining string) (token string, ok bool)
}

var segmentFallbacks = []segmentRule{
	{name: "initial", match: matchInitial},
	{name: "capital-run", match: matchCapitalRun},
	{name: "single-char", match: matchSingleChar},
}

// matchInitial consumes a lone capital letter, optionally followed by a
// period: a middle initial. A capital followed by more capitals is not an
// initial; that case falls through to the capital-run rule.
func matchInitial(remaining string) (string, bool) {
	if !isUpperAlpha(remaining[0]) {
		return "", false
	}
	if len(remaining) == 1 {
		return remaining[:1], true
	}
	if remaining[1] == '.' {
		return remaining[:2], true
	}
	if !isUpperAlpha(remaining[1]) {
		return remaining[:1], true
	}
	return "", false
}

// matchCapitalRun consumes a maximal run of two or more capital letters: an
// unknown token the vocabulary does not cover.
func matchCapitalRun(remaining string) (string, bool) {
	i := 0
	for i < len(remaining) && isUpperAlpha(remaining[i]) {
		i++
	}
	if i < 2 {
		return "", false
	}
	return remaining[:i], true
}

// matchSingleChar consumes exactly one character. It always matches.
func matchSingleChar(remaining string) (string, bool) {
	return remaining[:1], true
}

func isUpperAlpha(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
