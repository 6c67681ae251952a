package reconcile

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

func entry(key, text string, lang domain.LanguageCode, franchise, name string) domain.LocalizedEntry {
	return domain.LocalizedEntry{
		Key:           key,
		Text:          domain.StringPtr(text),
		Language:      lang,
		GameFranchise: domain.StringPtr(franchise),
		GameName:      domain.StringPtr(name),
	}
}

func TestMatcher_IsMatch(t *testing.T) {
	t.Parallel()

	placeholderPatterns := []*regexp.Regexp{PatternBracesAndMarkers, PatternSpecialChars}

	tests := []struct {
		name     string
		mode     domain.MatchMode
		a, b     string
		patterns []*regexp.Regexp
		want     bool
	}{
		{"reflexive", domain.MatchModeCompose, "Hello {name}!", "Hello {name}!", TextPatterns, true},
		{"reflexive empty", domain.MatchModeCompose, "", "", TextPatterns, true},
		{"case insensitive", domain.MatchModeCompose, "Hello World", "hello world", TextPatterns, true},
		{"case insensitive non-ascii", domain.MatchModeCompose, "ÉCOLE", "école", TextPatterns, true},
		{"placeholder insensitive", domain.MatchModeCompose, "Pick up the {icon}Sword", "Pick up the Sword", placeholderPatterns, true},
		{"punctuation insensitive", domain.MatchModeCompose, "Hello, {name}!", "Hello {name}", TextPatterns, true},
		{"different text", domain.MatchModeCompose, "Hello", "Goodbye", TextPatterns, false},
		{"last pattern only ignores punctuation pattern", domain.MatchModeLastPattern, "Hello, {name}!", "Hello {name}", TextPatterns, false},
		{"last pattern only keeps placeholder text", domain.MatchModeLastPattern, "Pick up the {icon}Sword", "Pick up the Sword", placeholderPatterns, false},
		{"last pattern reflexive", domain.MatchModeLastPattern, "Hello, {name}!", "Hello, {name}!", TextPatterns, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := NewMatcher(tt.mode)
			assert.Equal(t, tt.want, m.IsMatch(tt.a, tt.b, tt.patterns))
		})
	}
}

func TestNewMatcher_InvalidModeFallsBackToCompose(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.MatchModeCompose, NewMatcher("bogus").Mode())
	assert.Equal(t, domain.MatchModeLastPattern, NewMatcher(domain.MatchModeLastPattern).Mode())
}

func TestMatcher_Matches(t *testing.T) {
	t.Parallel()

	e := entry("Greeting", "Hello, {player}!", domain.LanguageJaJP, "Final Fantasy", "FF VII")

	tests := []struct {
		name string
		e    domain.LocalizedEntry
		mctx domain.MatchContext
		want bool
	}{
		{"dash in name is significant", e, domain.MatchContext{Franchise: "final fantasy", Name: "FF-VII", Text: "hello {name}"}, false},
		{"text and exact context", e, domain.MatchContext{Franchise: "Final Fantasy", Name: "FF VII", Text: "hello"}, true},
		{"context punctuation ignored", e, domain.MatchContext{Franchise: "Final, Fantasy!", Name: "(FF VII)", Text: "Hello"}, true},
		{"empty context ignored", e, domain.MatchContext{Text: "Hello"}, true},
		{"empty text matches nothing", e, domain.MatchContext{Franchise: "Final Fantasy"}, false},
		{"franchise mismatch", e, domain.MatchContext{Franchise: "Zelda", Text: "Hello"}, false},
		{"name mismatch", e, domain.MatchContext{Name: "FF X", Text: "Hello"}, false},
		{"text mismatch", e, domain.MatchContext{Text: "Goodbye"}, false},
		{"nil franchise vs requested", entry("k", "Hello", domain.LanguageJaJP, "", ""), domain.MatchContext{Franchise: "F", Text: "Hello"}, false},
		{"nil text", domain.LocalizedEntry{Key: "k"}, domain.MatchContext{Text: "Hello"}, false},
		{"placeholder-only text vs nil text", domain.LocalizedEntry{Key: "k"}, domain.MatchContext{Text: "{icon}"}, false},
		{"placeholder-only text vs placeholder entry", entry("k", "{other}", domain.LanguageJaJP, "", ""), domain.MatchContext{Text: "{icon}"}, false},
		{"punctuation-only text vs nil text", domain.LocalizedEntry{Key: "k"}, domain.MatchContext{Text: "!!!"}, false},
		{"whitespace-only text", domain.LocalizedEntry{Key: "k"}, domain.MatchContext{Text: "  \t "}, false},
	}

	m := NewMatcher(domain.MatchModeCompose)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, m.Matches(tt.e, tt.mctx))
		})
	}
}

func TestMatcher_FindMatches_PreservesCorpusOrder(t *testing.T) {
	t.Parallel()

	corpus := []domain.LocalizedEntry{
		entry("a", "Start game", domain.LanguageEnUS, "F", "N"),
		entry("b", "Quit", domain.LanguageEnUS, "F", "N"),
		entry("c", "start  GAME!", domain.LanguageJaJP, "F", "N"),
		entry("d", "Start game", domain.LanguageEnUS, "Other", "N"),
	}

	m := NewMatcher(domain.MatchModeCompose)
	got := m.FindMatches(corpus, domain.MatchContext{Franchise: "F", Text: "Start game"})

	keys := make([]string, 0, len(got))
	for _, e := range got {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"a", "c"}, keys)

	first, ok := m.FirstMatch(corpus, domain.MatchContext{Franchise: "F", Text: "Start game"})
	assert.True(t, ok)
	assert.Equal(t, "a", first.Key)

	_, ok = m.FirstMatch(corpus, domain.MatchContext{Text: "Continue"})
	assert.False(t, ok)

	assert.Empty(t, m.FindMatches(corpus, domain.MatchContext{}))
}

func TestMatcher_FindMatches_TextEmptyAfterNormalization(t *testing.T) {
	t.Parallel()

	corpus := []domain.LocalizedEntry{
		entry("Other.Icon", "{other}", domain.LanguageEnUS, "", ""),
		{Key: "Nil", Language: domain.LanguageEnUS},
		entry("Marker", "|||tag|||", domain.LanguageEnUS, "", ""),
	}

	for _, mode := range []domain.MatchMode{domain.MatchModeCompose, domain.MatchModeLastPattern} {
		m := NewMatcher(mode)
		assert.Empty(t, m.FindMatches(corpus, domain.MatchContext{Text: "{icon}"}), mode)
		assert.Empty(t, m.FindMatches(corpus, domain.MatchContext{Text: "!!!"}), mode)
	}
}
