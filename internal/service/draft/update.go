package draft

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/draftstore-backend/internal/domain"
)

// Update replaces the type and document of the caller's draft id.
// Input is validated before the draft is looked up.
func (s *Service) Update(ctx context.Context, caller domain.UserAndService, rawID string, input UpdateInput) error {
	if err := input.Validate(s.cfg.MaxDocumentBytes); err != nil {
		return err
	}

	id, ok := parseID(rawID)
	if !ok {
		return fmt.Errorf("draft.Update: id %q: %w", rawID, domain.ErrNotFound)
	}

	existing, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("draft.Update: %w", err)
	}
	if !existing.OwnedBy(caller) {
		return fmt.Errorf("draft.Update: draft %d: %w", id, domain.ErrForbidden)
	}

	docType := strings.TrimSpace(input.Type)
	if err := s.drafts.UpdateByID(ctx, id, caller, docType, input.Document, fingerprint(caller)); err != nil {
		return fmt.Errorf("draft.Update: %w", err)
	}

	s.metrics.DraftSaved(domain.SaveUpdated)
	s.log.InfoContext(ctx, "draft updated",
		append(callerAttrs(caller),
			slog.Int64("draft_id", id),
			slog.String("type", docType),
		)...,
	)

	return nil
}
