package draft

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/draftstore-backend/internal/domain"
)

// Read returns the caller's draft by id. A draft owned by anyone else is
// reported as not found so its existence is not revealed.
func (s *Service) Read(ctx context.Context, caller domain.UserAndService, rawID string) (*domain.Draft, error) {
	id, ok := parseID(rawID)
	if !ok {
		return nil, fmt.Errorf("draft.Read: id %q: %w", rawID, domain.ErrNotFound)
	}

	d, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("draft.Read: %w", err)
	}

	if !d.OwnedBy(caller) {
		return nil, fmt.Errorf("draft.Read: draft %d: %w", id, domain.ErrNotFound)
	}

	return d, nil
}

// ReadByType returns the caller's draft of docType.
func (s *Service) ReadByType(ctx context.Context, caller domain.UserAndService, docType string) (*domain.Draft, error) {
	d, err := s.drafts.GetByKey(ctx, caller.Key(strings.TrimSpace(docType)))
	if err != nil {
		return nil, fmt.Errorf("draft.ReadByType: %w", err)
	}
	return d, nil
}
