package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/locbundle-backend/internal/domain"
	"github.com/heartmarshall/locbundle-backend/internal/service/catalog"
	"github.com/heartmarshall/locbundle-backend/internal/service/reconcile"
)

const (
	// ArchiveFilename is the attachment name of a reconcile response.
	ArchiveFilename = "translations.zip"

	HeaderFoundCount    = "X-Found-Count"
	HeaderNotFoundCount = "X-Not-Found-Count"

	multipartMemory = 8 << 20
)

// catalogService defines the corpus operations needed by TranslationHandler.
type catalogService interface {
	ListEntries(ctx context.Context, input catalog.ListEntriesInput) (*catalog.ListEntriesResult, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.LocalizedEntry, error)
	CreateEntry(ctx context.Context, input catalog.EntryInput) (*domain.LocalizedEntry, error)
	UpdateEntry(ctx context.Context, input catalog.UpdateEntryInput) (*domain.LocalizedEntry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	SearchEntries(ctx context.Context, input catalog.SearchInput) ([]domain.LocalizedEntry, error)
	ImportEntries(ctx context.Context, input catalog.ImportInput) (*catalog.ImportResult, error)
}

// reconcileService runs the reconcile pipeline.
type reconcileService interface {
	Reconcile(ctx context.Context, in reconcile.ReconcileInput) (*reconcile.ReconcileOutput, error)
}

// TranslationHandler serves the /api/translations endpoints.
type TranslationHandler struct {
	catalog        catalogService
	reconciler     reconcileService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewTranslationHandler creates a TranslationHandler. Uploads larger than
// maxUploadBytes are rejected with 413.
func NewTranslationHandler(
	catalog catalogService,
	reconciler reconcileService,
	maxUploadBytes int64,
	logger *slog.Logger,
) *TranslationHandler {
	return &TranslationHandler{
		catalog:        catalog,
		reconciler:     reconciler,
		maxUploadBytes: maxUploadBytes,
		log:            logger.With("handler", "translations"),
	}
}

// Register mounts the translation routes on mux.
func (h *TranslationHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/translations", h.List)
	mux.HandleFunc("POST /api/translations", h.Create)
	mux.HandleFunc("POST /api/translations/import", h.Import)
	mux.HandleFunc("POST /api/translations/reconcile", h.Reconcile)
	mux.HandleFunc("GET /api/translations/{id}", h.Get)
	mux.HandleFunc("PUT /api/translations/{id}", h.Update)
	mux.HandleFunc("DELETE /api/translations/{id}", h.Delete)
}

type entryRequest struct {
	Key           string  `json:"key"`
	Text          *string `json:"text"`
	Language      string  `json:"language"`
	GameFranchise *string `json:"game_franchise"`
	GameName      *string `json:"game_name"`
}

func (r entryRequest) toInput() catalog.EntryInput {
	return catalog.EntryInput{
		Key:           r.Key,
		Text:          r.Text,
		Language:      r.Language,
		GameFranchise: r.GameFranchise,
		GameName:      r.GameName,
	}
}

type entryResponse struct {
	ID            string    `json:"id"`
	Key           string    `json:"key"`
	Text          *string   `json:"text"`
	Language      string    `json:"language"`
	GameFranchise *string   `json:"game_franchise"`
	GameName      *string   `json:"game_name"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type listResponse struct {
	Items []entryResponse `json:"items"`
	Total int             `json:"total"`
}

type importResponse struct {
	Language string `json:"language"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}

// List handles GET /api/translations. With any of text, franchise or name
// it searches the corpus by context; otherwise it lists entries filtered by
// key and language with limit/offset paging.
func (h *TranslationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Has("text") || q.Has("franchise") || q.Has("name") {
		matches, err := h.catalog.SearchEntries(r.Context(), catalog.SearchInput{
			Text:      q.Get("text"),
			Franchise: q.Get("franchise"),
			Name:      q.Get("name"),
		})
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toListResponse(matches, len(matches)))
		return
	}

	input := catalog.ListEntriesInput{}
	if q.Has("key") {
		v := q.Get("key")
		input.Key = &v
	}
	if q.Has("language") {
		v := q.Get("language")
		input.Language = &v
	}

	var err error
	if input.Limit, err = intParam(q.Get("limit")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid limit")
		return
	}
	if input.Offset, err = intParam(q.Get("offset")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid offset")
		return
	}

	result, err := h.catalog.ListEntries(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(result.Items, result.Total))
}

// Get handles GET /api/translations/{id}.
func (h *TranslationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	e, err := h.catalog.GetEntry(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(*e))
}

// Create handles POST /api/translations.
func (h *TranslationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.catalog.CreateEntry(r.Context(), req.toInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(*e))
}

// Update handles PUT /api/translations/{id}.
func (h *TranslationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e, err := h.catalog.UpdateEntry(r.Context(), catalog.UpdateEntryInput{ID: id, EntryInput: req.toInput()})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(*e))
}

// Delete handles DELETE /api/translations/{id}.
func (h *TranslationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.catalog.DeleteEntry(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Import handles POST /api/translations/import (multipart: file, franchise, name).
func (h *TranslationHandler) Import(w http.ResponseWriter, r *http.Request) {
	up, err := h.readUpload(w, r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	defer up.file.Close()

	result, err := h.catalog.ImportEntries(r.Context(), catalog.ImportInput{
		File:      up.file,
		FileName:  up.fileName,
		Franchise: up.franchise,
		Name:      up.name,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, importResponse{
		Language: result.Language.String(),
		Imported: result.Imported,
		Skipped:  result.Skipped,
	})
}

// Reconcile handles POST /api/translations/reconcile (multipart: file,
// franchise, name) and responds with the zip archive of bundles.
func (h *TranslationHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	up, err := h.readUpload(w, r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	defer up.file.Close()

	out, err := h.reconciler.Reconcile(r.Context(), reconcile.ReconcileInput{
		File:      up.file,
		FileName:  up.fileName,
		Franchise: up.franchise,
		Name:      up.name,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ArchiveFilename))
	w.Header().Set("Content-Length", strconv.Itoa(len(out.Archive)))
	w.Header().Set(HeaderFoundCount, strconv.Itoa(len(out.Result.Found)))
	w.Header().Set(HeaderNotFoundCount, strconv.Itoa(len(out.Result.NotFound)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out.Archive); err != nil {
		h.log.WarnContext(r.Context(), "write archive", slog.String("error", err.Error()))
	}
}

type upload struct {
	file      multipart.File
	fileName  string
	franchise string
	name      string
}

// readUpload parses a multipart upload bounded by maxUploadBytes.
func (h *TranslationHandler) readUpload(w http.ResponseWriter, r *http.Request) (*upload, error) {
	if r.ContentLength > h.maxUploadBytes {
		return nil, &http.MaxBytesError{Limit: h.maxUploadBytes}
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, domain.NewValidationError("file", "invalid multipart form")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, domain.NewValidationError("file", "required")
		}
		return nil, fmt.Errorf("read form file: %w", err)
	}

	return &upload{
		file:      file,
		fileName:  header.Filename,
		franchise: r.FormValue("franchise"),
		name:      r.FormValue("name"),
	}, nil
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func toEntryResponse(e domain.LocalizedEntry) entryResponse {
	return entryResponse{
		ID:            e.ID.String(),
		Key:           e.Key,
		Text:          e.Text,
		Language:      e.Language.String(),
		GameFranchise: e.GameFranchise,
		GameName:      e.GameName,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toListResponse(entries []domain.LocalizedEntry, total int) listResponse {
	items := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, toEntryResponse(e))
	}
	return listResponse{Items: items, Total: total}
}
