package catalog

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

const (
	MaxKeyLength     = 512
	MaxTextLength    = 10000
	MaxContextLength = 256
	MaxListLimit     = 1000
)

// ListEntriesInput holds the parameters for listing corpus entries.
type ListEntriesInput struct {
	Key           *string
	Language      *string
	GameFranchise *string
	GameName      *string
	Limit         int // 0 = no limit
	Offset        int
}

// Validate checks all fields and collects all errors.
func (i ListEntriesInput) Validate() error {
	var errs []domain.FieldError

	if i.Language != nil {
		if _, ok := domain.LookupLanguageCode(*i.Language); !ok {
			errs = append(errs, domain.FieldError{Field: "language", Message: "unknown language code"})
		}
	}
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListEntriesInput) filter() domain.EntryFilter {
	f := domain.EntryFilter{
		Key:           i.Key,
		GameFranchise: i.GameFranchise,
		GameName:      i.GameName,
		Limit:         i.Limit,
		Offset:        i.Offset,
	}
	if i.Language != nil {
		l := domain.ParseLanguageCode(*i.Language)
		f.Language = &l
	}
	return f
}

// EntryInput holds the writable fields of a corpus entry. An empty Language
// means unspecified.
type EntryInput struct {
	Key           string
	Text          *string
	Language      string
	GameFranchise *string
	GameName      *string
}

// Validate checks all fields and collects all errors.
func (i EntryInput) Validate() error {
	if errs := i.fieldErrors(); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i EntryInput) fieldErrors() []domain.FieldError {
	var errs []domain.FieldError

	key := strings.TrimSpace(i.Key)
	if key == "" {
		errs = append(errs, domain.FieldError{Field: "key", Message: "required"})
	}
	if utf8.RuneCountInString(key) > MaxKeyLength {
		errs = append(errs, domain.FieldError{Field: "key", Message: fmt.Sprintf("max %d characters", MaxKeyLength)})
	}
	if i.Text != nil && utf8.RuneCountInString(*i.Text) > MaxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d characters", MaxTextLength)})
	}
	if i.Language != "" {
		if _, ok := domain.LookupLanguageCode(i.Language); !ok {
			errs = append(errs, domain.FieldError{Field: "language", Message: "unknown language code"})
		}
	}
	if i.GameFranchise != nil && utf8.RuneCountInString(*i.GameFranchise) > MaxContextLength {
		errs = append(errs, domain.FieldError{Field: "game_franchise", Message: fmt.Sprintf("max %d characters", MaxContextLength)})
	}
	if i.GameName != nil && utf8.RuneCountInString(*i.GameName) > MaxContextLength {
		errs = append(errs, domain.FieldError{Field: "game_name", Message: fmt.Sprintf("max %d characters", MaxContextLength)})
	}

	return errs
}

func (i EntryInput) toDomain() domain.LocalizedEntry {
	return domain.LocalizedEntry{
		Key:           strings.TrimSpace(i.Key),
		Text:          i.Text,
		Language:      domain.ParseLanguageCode(i.Language),
		GameFranchise: trimOrNil(i.GameFranchise),
		GameName:      trimOrNil(i.GameName),
	}
}

// UpdateEntryInput replaces every writable field of an existing entry.
type UpdateEntryInput struct {
	ID uuid.UUID
	EntryInput
}

// Validate checks all fields and collects all errors.
func (i UpdateEntryInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, i.EntryInput.fieldErrors()...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SearchInput holds the context predicate of a corpus search.
type SearchInput struct {
	Text      string
	Franchise string
	Name      string
}

// Validate checks all fields and collects all errors.
func (i SearchInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if utf8.RuneCountInString(i.Text) > MaxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d characters", MaxTextLength)})
	}
	if len(i.Franchise) > MaxContextLength {
		errs = append(errs, domain.FieldError{Field: "franchise", Message: fmt.Sprintf("max %d characters", MaxContextLength)})
	}
	if len(i.Name) > MaxContextLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", MaxContextLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ImportInput holds a source file to load into the corpus.
type ImportInput struct {
	File      io.Reader
	FileName  string
	Franchise string
	Name      string
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	var errs []domain.FieldError

	if i.File == nil {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	if strings.TrimSpace(i.FileName) == "" {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "required"})
	}
	if len(i.Franchise) > MaxContextLength {
		errs = append(errs, domain.FieldError{Field: "franchise", Message: fmt.Sprintf("max %d characters", MaxContextLength)})
	}
	if len(i.Name) > MaxContextLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", MaxContextLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
