package domain

import (
	"path"
	"strings"
)

// LanguageCode is a locale identifier attached to every localized entry.
type LanguageCode string

const (
	LanguageUnspecified LanguageCode = "unspecified"
	LanguageBgBG        LanguageCode = "bg_BG"
	LanguageCaES        LanguageCode = "ca_ES"
	LanguageCsCZ        LanguageCode = "cs_CZ"
	LanguageEnUS        LanguageCode = "en_US"
	LanguageEnGB        LanguageCode = "en_GB"
	LanguageJaJP        LanguageCode = "ja_JP"
	LanguageRoRO        LanguageCode = "ro_RO"
)

// languages lists every code in declaration order. Bundle output follows this order.
var languages = []LanguageCode{
	LanguageUnspecified,
	LanguageBgBG,
	LanguageCaES,
	LanguageCsCZ,
	LanguageEnUS,
	LanguageEnGB,
	LanguageJaJP,
	LanguageRoRO,
}

// byFoldedName is keyed by the lowercased code.
var byFoldedName map[string]LanguageCode

func init() {
	byFoldedName = make(map[string]LanguageCode, len(languages))
	for _, l := range languages {
		byFoldedName[strings.ToLower(string(l))] = l
	}
}

// Languages returns all language codes in declaration order.
func Languages() []LanguageCode {
	out := make([]LanguageCode, len(languages))
	copy(out, languages)
	return out
}

func (l LanguageCode) String() string { return string(l) }

func (l LanguageCode) IsValid() bool {
	got, ok := byFoldedName[strings.ToLower(string(l))]
	return ok && got == l
}

// ParseLanguageCode resolves s case-insensitively. Unknown or empty input
// resolves to LanguageUnspecified.
func ParseLanguageCode(s string) LanguageCode {
	if l, ok := byFoldedName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l
	}
	return LanguageUnspecified
}

// LookupLanguageCode is like ParseLanguageCode but reports whether s was known.
func LookupLanguageCode(s string) (LanguageCode, bool) {
	l, ok := byFoldedName[strings.ToLower(strings.TrimSpace(s))]
	return l, ok
}

// LanguageCodeFromFilename resolves the language from a file's base name
// with its extension stripped, e.g. "uploads/ja_JP.json" -> ja_JP.
func LanguageCodeFromFilename(name string) LanguageCode {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, path.Ext(name))
	return ParseLanguageCode(name)
}

// MatchMode selects how a list of normalization patterns is applied
// when comparing two strings.
type MatchMode string

const (
	// MatchModeCompose applies every pattern in sequence to the same string.
	MatchModeCompose MatchMode = "compose"
	// MatchModeLastPattern normalizes the raw input with each pattern
	// independently and compares only the result of the last one.
	MatchModeLastPattern MatchMode = "last_pattern"
)

func (m MatchMode) String() string { return string(m) }

func (m MatchMode) IsValid() bool {
	switch m {
	case MatchModeCompose, MatchModeLastPattern:
		return true
	}
	return false
}
