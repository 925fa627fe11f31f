package draft

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/draftstore-backend/internal/domain"
)

// Delete removes the caller's draft id. Deleting something that does not
// exist succeeds; deleting another owner's draft is forbidden.
func (s *Service) Delete(ctx context.Context, caller domain.UserAndService, rawID string) error {
	id, ok := parseID(rawID)
	if !ok {
		return nil
	}

	existing, err := s.drafts.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("draft.Delete: %w", err)
	}
	if !existing.OwnedBy(caller) {
		return fmt.Errorf("draft.Delete: draft %d: %w", id, domain.ErrForbidden)
	}

	err = s.drafts.DeleteByID(ctx, id, caller)
	if errors.Is(err, domain.ErrNotFound) {
		// Removed concurrently.
		return nil
	}
	if err != nil {
		return fmt.Errorf("draft.Delete: %w", err)
	}

	s.metrics.DraftsDeleted(1)
	s.log.InfoContext(ctx, "draft deleted", append(callerAttrs(caller), slog.Int64("draft_id", id))...)

	return nil
}

// DeleteByType removes the caller's draft of docType. Absence is not an error.
func (s *Service) DeleteByType(ctx context.Context, caller domain.UserAndService, docType string) error {
	docType = strings.TrimSpace(docType)

	err := s.drafts.DeleteByKey(ctx, caller.Key(docType))
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("draft.DeleteByType: %w", err)
	}

	s.metrics.DraftsDeleted(1)
	s.log.InfoContext(ctx, "draft deleted", append(callerAttrs(caller), slog.String("type", docType))...)

	return nil
}

// DeleteAll removes every draft of the caller.
func (s *Service) DeleteAll(ctx context.Context, caller domain.UserAndService) error {
	n, err := s.drafts.DeleteAll(ctx, caller)
	if err != nil {
		return fmt.Errorf("draft.DeleteAll: %w", err)
	}

	s.metrics.DraftsDeleted(n)
	s.log.InfoContext(ctx, "drafts deleted", append(callerAttrs(caller), slog.Int64("count", n))...)

	return nil
}
