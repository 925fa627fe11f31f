package draft

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// CleanupStale deletes drafts that have not been updated for maxAge.
func (s *Service) CleanupStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	if maxAge <= 0 {
		return 0, fmt.Errorf("draft.CleanupStale: max age must be positive, got %v", maxAge)
	}

	cutoff := time.Now().Add(-maxAge)
	n, err := s.drafts.DeleteStale(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("draft.CleanupStale: %w", err)
	}

	s.metrics.DraftsDeleted(n)
	s.log.InfoContext(ctx, "stale drafts deleted",
		slog.Int64("count", n),
		slog.Time("cutoff", cutoff),
	)

	return n, nil
}
