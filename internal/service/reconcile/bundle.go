package reconcile

import (
	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

// NotInDatabaseFilename names the bundle of keys missing from the corpus.
const NotInDatabaseFilename = "NotInDatabase.json"

// DefaultExcludedLanguages are the source languages that never get a bundle.
func DefaultExcludedLanguages() []domain.LanguageCode {
	return []domain.LanguageCode{domain.LanguageEnUS, domain.LanguageEnGB}
}

// BundleBuilder groups a reconciliation result into per-language bundles.
type BundleBuilder struct {
	excluded map[domain.LanguageCode]struct{}
}

// NewBundleBuilder creates a BundleBuilder skipping the given languages.
// LanguageUnspecified is always skipped.
func NewBundleBuilder(excluded []domain.LanguageCode) *BundleBuilder {
	set := make(map[domain.LanguageCode]struct{}, len(excluded)+1)
	set[domain.LanguageUnspecified] = struct{}{}
	for _, l := range excluded {
		set[l] = struct{}{}
	}
	return &BundleBuilder{excluded: set}
}

// BundleFilename returns the bundle name for translations into l.
func BundleFilename(l domain.LanguageCode) string {
	return l.String() + ".json"
}

// MissingBundleFilename returns the bundle name for keys with no translation into l.
func MissingBundleFilename(l domain.LanguageCode) string {
	return l.String() + "_not_found.json"
}

// Build produces, in order: NotInDatabase.json (when NotFound is non-empty),
// then for every non-excluded language in declaration order
// <L>_not_found.json and <L>.json (each only when non-empty). Per-language
// bundles are produced only when Found is non-empty.
func (b *BundleBuilder) Build(result domain.ReconcileResult, corpus []domain.LocalizedEntry) []domain.Bundle {
	var bundles []domain.Bundle

	if len(result.NotFound) > 0 {
		missing := newOrderedContent(len(result.NotFound))
		for _, e := range result.NotFound {
			if !e.HasText() {
				continue
			}
			missing.add(e.Key, *e.Text)
		}
		bundles = append(bundles, domain.Bundle{
			Filename: NotInDatabaseFilename,
			Content:  missing.items,
		})
	}

	if len(result.Found) == 0 {
		return bundles
	}

	index := newCorpusIndex(corpus)

	for _, language := range domain.Languages() {
		if _, skip := b.excluded[language]; skip {
			continue
		}

		found := newOrderedContent(len(result.Found))
		notFound := newOrderedContent(0)

		for _, e := range result.Found {
			if !e.HasText() {
				continue
			}

			translated, ok := index.lookup(e.Key, language)
			if !ok {
				if !found.has(e.Key) && !notFound.has(e.Key) {
					notFound.add(e.Key, *e.Text)
				}
				continue
			}
			found.add(translated.Key, translated.TextOrEmpty())
		}

		if notFound.len() > 0 {
			bundles = append(bundles, domain.Bundle{
				Filename: MissingBundleFilename(language),
				Content:  notFound.items,
			})
		}
		if found.len() > 0 {
			bundles = append(bundles, domain.Bundle{
				Filename: BundleFilename(language),
				Content:  found.items,
			})
		}
	}

	return bundles
}

// orderedContent is an insertion-ordered key->text mapping where the first
// occurrence of a key wins.
type orderedContent struct {
	items []domain.BundleItem
	keys  map[string]struct{}
}

func newOrderedContent(capacity int) *orderedContent {
	return &orderedContent{
		items: make([]domain.BundleItem, 0, capacity),
		keys:  make(map[string]struct{}, capacity),
	}
}

func (c *orderedContent) has(key string) bool {
	_, ok := c.keys[key]
	return ok
}

func (c *orderedContent) add(key, text string) {
	if c.has(key) {
		return
	}
	c.keys[key] = struct{}{}
	c.items = append(c.items, domain.BundleItem{Key: key, Text: text})
}

func (c *orderedContent) len() int {
	return len(c.items)
}

type corpusKey struct {
	key      string
	language domain.LanguageCode
}

// corpusIndex resolves (key, language) to the first corpus entry carrying it.
type corpusIndex map[corpusKey]domain.LocalizedEntry

func newCorpusIndex(corpus []domain.LocalizedEntry) corpusIndex {
	idx := make(corpusIndex, len(corpus))
	for _, e := range corpus {
		k := corpusKey{key: e.Key, language: e.Language}
		if _, exists := idx[k]; !exists {
			idx[k] = e
		}
	}
	return idx
}

func (idx corpusIndex) lookup(key string, language domain.LanguageCode) (domain.LocalizedEntry, bool) {
	e, ok := idx[corpusKey{key: key, language: language}]
	return e, ok
}
