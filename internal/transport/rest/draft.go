package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/draftstore-backend/internal/auth"
	"github.com/heartmarshall/draftstore-backend/internal/domain"
	"github.com/heartmarshall/draftstore-backend/internal/service/draft"
)

// envelopeBytes is the allowance on top of the document limit for the
// {"type":...,"document":...} wrapper.
const envelopeBytes = 4 << 10

type draftService interface {
	Create(ctx context.Context, caller domain.UserAndService, input draft.CreateInput) (domain.SaveResult, error)
	Read(ctx context.Context, caller domain.UserAndService, rawID string) (*domain.Draft, error)
	List(ctx context.Context, caller domain.UserAndService, input draft.ListInput) (*draft.ListResult, error)
	Update(ctx context.Context, caller domain.UserAndService, rawID string, input draft.UpdateInput) error
	Delete(ctx context.Context, caller domain.UserAndService, rawID string) error
	DeleteAll(ctx context.Context, caller domain.UserAndService) error

	SaveByType(ctx context.Context, caller domain.UserAndService, docType string, document []byte) (domain.SaveResult, error)
	ReadByType(ctx context.Context, caller domain.UserAndService, docType string) (*domain.Draft, error)
	DeleteByType(ctx context.Context, caller domain.UserAndService, docType string) error
}

type authenticator interface {
	Authenticate(ctx context.Context, creds auth.Credentials, policy auth.SecretPolicy) (domain.UserAndService, error)
}

// DraftHandler serves the /drafts REST resource.
type DraftHandler struct {
	svc     draftService
	auth    authenticator
	maxBody int64
	log     *slog.Logger
}

// NewDraftHandler creates a DraftHandler. maxDocumentBytes bounds request bodies.
func NewDraftHandler(svc draftService, authn authenticator, maxDocumentBytes int, logger *slog.Logger) *DraftHandler {
	return &DraftHandler{
		svc:     svc,
		auth:    authn,
		maxBody: int64(maxDocumentBytes) + envelopeBytes,
		log:     logger.With("handler", "draft"),
	}
}

// Register mounts the draft routes on mux.
func (h *DraftHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /drafts", h.List)
	mux.HandleFunc("POST /drafts", h.Create)
	mux.HandleFunc("DELETE /drafts", h.DeleteAll)
	mux.HandleFunc("GET /drafts/{id}", h.Read)
	mux.HandleFunc("PUT /drafts/{id}", h.Update)
	mux.HandleFunc("DELETE /drafts/{id}", h.Delete)

	mux.HandleFunc("GET /drafts/types/{type}", h.ReadByType)
	mux.HandleFunc("PUT /drafts/types/{type}", h.SaveByType)
	mux.HandleFunc("DELETE /drafts/types/{type}", h.DeleteByType)
}

// Create handles POST /drafts.
//
//	201 Created     new draft, Location points at it
//	204 No Content  the caller's draft of that type was replaced, Location points at it
func (h *DraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !acceptsBody(r) {
		writeError(w, http.StatusUnsupportedMediaType, kindUnsupportedMediaType, "content type must be JSON")
		return
	}
	caller, err := h.authenticate(r, auth.SecretForWrite)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	req, err := h.decodeDraft(w, r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	res, err := h.svc.Create(r.Context(), caller, draft.CreateInput{Type: req.Type, Document: req.Document})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeSaved(w, res)
}

// Read handles GET /drafts/{id}.
func (h *DraftHandler) Read(w http.ResponseWriter, r *http.Request) {
	caller, err := h.authenticate(r, auth.SecretRequired)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	d, err := h.svc.Read(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(d))
}

// List handles GET /drafts?type=&after=&limit=.
func (h *DraftHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, err := h.authenticate(r, auth.SecretRequired)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	input, err := parseListQuery(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	res, err := h.svc.List(r.Context(), caller, input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(res))
}

// Update handles PUT /drafts/{id}.
func (h *DraftHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !acceptsBody(r) {
		writeError(w, http.StatusUnsupportedMediaType, kindUnsupportedMediaType, "content type must be JSON")
		return
	}
	caller, err := h.authenticate(r, auth.SecretForWrite)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	req, err := h.decodeDraft(w, r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	input := draft.UpdateInput{Type: req.Type, Document: req.Document}
	if err := h.svc.Update(r.Context(), caller, r.PathValue("id"), input); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /drafts/{id}.
func (h *DraftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, err := h.authenticate(r, auth.SecretIgnored)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), caller, r.PathValue("id")); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAll handles DELETE /drafts.
func (h *DraftHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	caller, err := h.authenticate(r, auth.SecretIgnored)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteAll(r.Context(), caller); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReadByType handles GET /drafts/types/{type}.
func (h *DraftHandler) ReadByType(w http.ResponseWriter, r *http.Request) {
	caller, err := h.authenticate(r, auth.SecretRequired)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	d, err := h.svc.ReadByType(r.Context(), caller, r.PathValue("type"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(d))
}

// SaveByType handles PUT /drafts/types/{type}. The body is the document itself.
func (h *DraftHandler) SaveByType(w http.ResponseWriter, r *http.Request) {
	if !acceptsBody(r) {
		writeError(w, http.StatusUnsupportedMediaType, kindUnsupportedMediaType, "content type must be JSON")
		return
	}
	caller, err := h.authenticate(r, auth.SecretForWrite)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	body, err := h.readBody(w, r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	res, err := h.svc.SaveByType(r.Context(), caller, r.PathValue("type"), body)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeSaved(w, res)
}

// DeleteByType handles DELETE /drafts/types/{type}.
func (h *DraftHandler) DeleteByType(w http.ResponseWriter, r *http.Request) {
	caller, err := h.authenticate(r, auth.SecretIgnored)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteByType(r.Context(), caller, r.PathValue("type")); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DraftHandler) authenticate(r *http.Request, policy auth.SecretPolicy) (domain.UserAndService, error) {
	return h.auth.Authenticate(r.Context(), auth.Credentials{
		Authorization:        r.Header.Get("Authorization"),
		ServiceAuthorization: r.Header.Get("ServiceAuthorization"),
		Secret:               r.Header.Get("Secret"),
	}, policy)
}

func (h *DraftHandler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domain.NewValidationError("body", fmt.Sprintf("max %d bytes", tooLarge.Limit))
		}
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func (h *DraftHandler) decodeDraft(w http.ResponseWriter, r *http.Request) (draftRequest, error) {
	body, err := h.readBody(w, r)
	if err != nil {
		return draftRequest{}, err
	}

	var req draftRequest
	if len(body) == 0 {
		return req, domain.NewValidationError("body", "required")
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, domain.NewValidationError("body", "must be a JSON object with type and document")
	}
	return req, nil
}

func parseListQuery(r *http.Request) (draft.ListInput, error) {
	q := r.URL.Query()

	var (
		input draft.ListInput
		errs  []domain.FieldError
	)

	if q.Has("type") {
		t := q.Get("type")
		input.Type = &t
	}
	if raw := q.Get("after"); raw != "" {
		after, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "after", Message: "must be a draft id"})
		}
		input.After = after
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		input.Limit = limit
	}

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}

// writeSaved answers an upsert: 201 when the draft was created, 204 when an
// existing one was replaced. Both carry the draft's Location.
func writeSaved(w http.ResponseWriter, res domain.SaveResult) {
	w.Header().Set("Location", draftLocation(res.ID))
	if res.Status == domain.SaveCreated {
		w.WriteHeader(http.StatusCreated)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
