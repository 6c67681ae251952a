package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
	"github.com/heartmarshall/locbundle-backend/internal/service/reconcile"
)

type errorResponse struct {
	Error    string          `json:"error"`
	Fields   []fieldResponse `json:"fields,omitempty"`
	NotFound *int            `json:"not_found,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps domain errors to HTTP responses. Unknown errors are logged
// and reported as 500 without details.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation *domain.ValidationError
		nothing    *reconcile.NothingToBundleError
		tooLarge   *http.MaxBytesError
	)

	switch {
	case errors.As(err, &tooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
	case errors.As(err, &validation):
		resp := errorResponse{Error: validation.Error()}
		for _, fe := range validation.Errors {
			resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &nothing):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error:    "no line of the source file matched the corpus",
			NotFound: &nothing.NotFound,
		})
	case errors.Is(err, domain.ErrNothingToBundle):
		writeError(w, http.StatusNotFound, "no line of the source file matched the corpus")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
