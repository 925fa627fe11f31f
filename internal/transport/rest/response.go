package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/draftstore-backend/internal/domain"
)

// Error kinds reported in the "kind" field of error bodies.
const (
	kindValidation           = "validation"
	kindAuthentication       = "authentication"
	kindAuthorization        = "authorization"
	kindNotFound             = "not_found"
	kindMethodNotAllowed     = "method_not_allowed"
	kindConflict             = "conflict"
	kindUnsupportedMediaType = "unsupported_media_type"
	kindInternal             = "internal"
)

type errorResponse struct {
	Kind    string          `json:"kind"`
	Message string          `json:"message"`
	Fields  []fieldResponse `json:"fields,omitempty"`
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

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorResponse{Kind: kind, Message: message})
}

// writeDomainError maps a service or auth error onto the HTTP error taxonomy.
// Anything unrecognised is logged and hidden behind a generic 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Kind: kindValidation, Message: verr.Error()}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldResponse{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, kindValidation, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, kindAuthentication, "valid user and service credentials are required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, kindAuthorization, "draft belongs to another owner")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, kindNotFound, "draft not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, kindConflict, "draft was modified concurrently or the type is taken")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		writeError(w, http.StatusInternalServerError, kindInternal, "internal server error")
	}
}
