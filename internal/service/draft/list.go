package draft

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/draftstore-backend/internal/domain"
)

// List returns one page of the caller's drafts in insertion order.
func (s *Service) List(ctx context.Context, caller domain.UserAndService, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultPageSize
	}
	limit = min(limit, s.cfg.MaxPageSize)

	filter := domain.ListFilter{After: input.After, Limit: limit + 1}
	if input.Type != nil {
		if t := strings.TrimSpace(*input.Type); t != "" {
			filter.Type = &t
		}
	}

	drafts, err := s.drafts.List(ctx, caller, filter)
	if err != nil {
		return nil, fmt.Errorf("draft.List: %w", err)
	}

	result := &ListResult{Drafts: drafts}
	if len(drafts) > limit {
		result.Drafts = drafts[:limit]
		next := drafts[limit-1].ID
		result.NextAfter = &next
	}

	return result, nil
}
