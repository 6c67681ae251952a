// Package reconcile classifies the lines of an uploaded source file against a
// corpus snapshot and packages the outcome as per-language JSON bundles.
package reconcile

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Noise patterns removed before comparison.
var (
	// PatternBracesAndMarkers strips {placeholder} tokens and |||raw||| segments.
	PatternBracesAndMarkers = regexp.MustCompile(`\{[^}]*\}|\|\|\|.*?\|\|\|`)

	// PatternSpecialChars strips punctuation noise, braces and pipes included.
	PatternSpecialChars = regexp.MustCompile(`[!@#$%^&*(),.?"{}|<>]`)

	// PatternSpecialCharsExceptBraces strips punctuation but keeps {}| so that
	// PatternBracesAndMarkers can still see placeholders and markers.
	PatternSpecialCharsExceptBraces = regexp.MustCompile(`[!@#$%^&*(),.?"<>]`)
)

// Pattern lists used by FindMatches.
var (
	TextPatterns    = []*regexp.Regexp{PatternSpecialCharsExceptBraces, PatternBracesAndMarkers}
	ContextPatterns = []*regexp.Regexp{PatternSpecialChars}
)

// Normalize reduces input to its comparison form: NFC, every pattern match
// removed, all whitespace removed. The steps repeat until the output is
// stable, so Normalize(Normalize(s)) == Normalize(s).
func Normalize(input string, patterns []*regexp.Regexp) string {
	if input == "" {
		return ""
	}

	out := input
	for {
		next := normalizeOnce(out, patterns)
		if next == out {
			return out
		}
		out = next
	}
}

func normalizeOnce(s string, patterns []*regexp.Regexp) string {
	s = norm.NFC.String(s)
	for _, p := range patterns {
		s = p.ReplaceAllString(s, "")
	}
	return stripSpace(s)
}

func stripSpace(s string) string {
	if strings.IndexFunc(s, unicode.IsSpace) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
