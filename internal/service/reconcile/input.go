package reconcile

import (
	"io"
	"strings"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
)

// ReconcileInput holds the parameters for one reconciliation.
type ReconcileInput struct {
	File      io.Reader
	FileName  string
	Franchise string
	Name      string
}

// Validate checks all fields and collects all errors.
func (i ReconcileInput) Validate() error {
	var errs []domain.FieldError

	if i.File == nil {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	if strings.TrimSpace(i.FileName) == "" {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "required"})
	}
	if len(i.Franchise) > 256 {
		errs = append(errs, domain.FieldError{Field: "franchise", Message: "max 256 characters"})
	}
	if len(i.Name) > 256 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 256 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
