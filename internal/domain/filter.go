package domain

// EntryFilter narrows a corpus listing. Nil fields are not applied; the zero
// value selects the whole corpus.
type EntryFilter struct {
	Key           *string
	Language      *LanguageCode
	GameFranchise *string
	GameName      *string
	Limit         int
	Offset        int
}
