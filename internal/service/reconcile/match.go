package reconcile

import (
	"regexp"

	"golang.org/x/text/cases"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

// Matcher decides whether corpus entries match a requested text and context.
// A Matcher is safe for concurrent use.
type Matcher struct {
	mode domain.MatchMode
}

// NewMatcher creates a Matcher. An invalid mode falls back to MatchModeCompose.
func NewMatcher(mode domain.MatchMode) *Matcher {
	if !mode.IsValid() {
		mode = domain.MatchModeCompose
	}
	return &Matcher{mode: mode}
}

// Mode returns the active pattern mode.
func (m *Matcher) Mode() domain.MatchMode {
	return m.mode
}

// IsMatch normalizes a and b with patterns and compares them using Unicode
// case folding.
func (m *Matcher) IsMatch(a, b string, patterns []*regexp.Regexp) bool {
	na, nb := m.normalize(a, patterns), m.normalize(b, patterns)
	if na == nb {
		return true
	}
	// cases.Caser keeps state between calls; one per comparison.
	fold := cases.Fold()
	return fold.String(na) == fold.String(nb)
}

func (m *Matcher) normalize(s string, patterns []*regexp.Regexp) string {
	if m.mode == domain.MatchModeLastPattern && len(patterns) > 1 {
		return Normalize(s, patterns[len(patterns)-1:])
	}
	return Normalize(s, patterns)
}

// Matches reports whether a single entry satisfies mctx. Text that is empty
// after normalization, such as a lone placeholder, matches nothing.
func (m *Matcher) Matches(e domain.LocalizedEntry, mctx domain.MatchContext) bool {
	if m.normalize(mctx.Text, TextPatterns) == "" {
		return false
	}
	if !m.IsMatch(e.TextOrEmpty(), mctx.Text, TextPatterns) {
		return false
	}
	if mctx.Franchise != "" && !m.IsMatch(e.FranchiseOrEmpty(), mctx.Franchise, ContextPatterns) {
		return false
	}
	if mctx.Name != "" && !m.IsMatch(e.NameOrEmpty(), mctx.Name, ContextPatterns) {
		return false
	}
	return true
}

// FindMatches returns every corpus entry matching mctx, in corpus order.
func (m *Matcher) FindMatches(corpus []domain.LocalizedEntry, mctx domain.MatchContext) []domain.LocalizedEntry {
	var out []domain.LocalizedEntry
	for _, e := range corpus {
		if m.Matches(e, mctx) {
			out = append(out, e)
		}
	}
	return out
}

// FirstMatch returns the first corpus entry matching mctx.
func (m *Matcher) FirstMatch(corpus []domain.LocalizedEntry, mctx domain.MatchContext) (domain.LocalizedEntry, bool) {
	for _, e := range corpus {
		if m.Matches(e, mctx) {
			return e, true
		}
	}
	return domain.LocalizedEntry{}, false
}
