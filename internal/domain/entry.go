package domain

import (
	"time"

	"github.com/google/uuid"
)

// LocalizedEntry is one stored piece of localized text. The corpus store owns
// its lifecycle; everything else handles it by value.
type LocalizedEntry struct {
	ID            uuid.UUID
	Key           string
	Text          *string
	Language      LanguageCode
	GameFranchise *string
	GameName      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasText reports whether the entry carries a non-nil text.
func (e LocalizedEntry) HasText() bool {
	return e.Text != nil
}

// TextOrEmpty returns the text or "" when it is nil.
func (e LocalizedEntry) TextOrEmpty() string {
	if e.Text == nil {
		return ""
	}
	return *e.Text
}

// FranchiseOrEmpty returns the game franchise or "".
func (e LocalizedEntry) FranchiseOrEmpty() string {
	if e.GameFranchise == nil {
		return ""
	}
	return *e.GameFranchise
}

// NameOrEmpty returns the game name or "".
func (e LocalizedEntry) NameOrEmpty() string {
	if e.GameName == nil {
		return ""
	}
	return *e.GameName
}

// ParsedLine is the key/value pair extracted from one source file line.
type ParsedLine struct {
	Key   string
	Value string
}

// MatchContext is the predicate used to search the corpus. Empty Franchise
// or Name means the field is ignored; empty Text matches nothing.
type MatchContext struct {
	Franchise string
	Name      string
	Text      string
}

// ReconcileResult splits the lines of a source file into entries already
// present in the corpus and entries synthesized from unmatched lines.
type ReconcileResult struct {
	Found    []LocalizedEntry
	NotFound []LocalizedEntry
}

// BundleItem is one key/text pair of a bundle.
type BundleItem struct {
	Key  string
	Text string
}

// Bundle is one named JSON document destined for the output archive.
// Content keeps insertion order and holds each key at most once.
type Bundle struct {
	Filename string
	Content  []BundleItem
}

// StringPtr returns nil for "" and a pointer to s otherwise.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
