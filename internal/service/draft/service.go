package draft

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/heartmarshall/draftstore-backend/internal/auth"
	"github.com/heartmarshall/draftstore-backend/internal/domain"
)

type draftRepo interface {
	Upsert(ctx context.Context, key domain.Key, document []byte, fingerprint string) (domain.SaveResult, error)
	GetByKey(ctx context.Context, key domain.Key) (*domain.Draft, error)
	DeleteByKey(ctx context.Context, key domain.Key) error
	List(ctx context.Context, owner domain.UserAndService, filter domain.ListFilter) ([]domain.Draft, error)
	DeleteAll(ctx context.Context, owner domain.UserAndService) (int64, error)

	GetByID(ctx context.Context, id int64) (*domain.Draft, error)
	UpdateByID(ctx context.Context, id int64, owner domain.UserAndService, docType string, document []byte, fingerprint string) error
	DeleteByID(ctx context.Context, id int64, owner domain.UserAndService) error

	DeleteStale(ctx context.Context, before time.Time) (int64, error)
}

type recorder interface {
	DraftSaved(status domain.SaveStatus)
	DraftsDeleted(n int64)
}

// Config holds the listing and size limits of the service.
type Config struct {
	DefaultPageSize  int
	MaxPageSize      int
	MaxDocumentBytes int
}

// Service provides draft storage operations scoped to the calling user and service.
// The caller identity is always passed explicitly.
type Service struct {
	drafts  draftRepo
	metrics recorder
	cfg     Config
	log     *slog.Logger
}

// NewService creates a new Draft service.
func NewService(log *slog.Logger, drafts draftRepo, metrics recorder, cfg Config) *Service {
	return &Service{
		drafts:  drafts,
		metrics: metrics,
		cfg:     cfg,
		log:     log.With("service", "draft"),
	}
}

// parseID converts a path id. Anything that is not a positive integer
// cannot name a stored draft.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// fingerprint identifies the secret a write was made with, if any.
func fingerprint(caller domain.UserAndService) string {
	if caller.Secrets == nil {
		return ""
	}
	return auth.SecretFingerprint(*caller.Secrets)
}

func callerAttrs(caller domain.UserAndService) []any {
	return []any{
		slog.String("user_id", caller.UserID),
		slog.String("caller_service", caller.Service),
	}
}
