package draft

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/draftstore-backend/internal/domain"
)

// Create stores the caller's draft of input.Type, replacing any existing one.
func (s *Service) Create(ctx context.Context, caller domain.UserAndService, input CreateInput) (domain.SaveResult, error) {
	if err := input.Validate(s.cfg.MaxDocumentBytes); err != nil {
		return domain.SaveResult{}, err
	}

	res, err := s.save(ctx, caller, strings.TrimSpace(input.Type), input.Document)
	if err != nil {
		return domain.SaveResult{}, fmt.Errorf("draft.Create: %w", err)
	}
	return res, nil
}

// SaveByType is the key-addressed form of Create.
func (s *Service) SaveByType(ctx context.Context, caller domain.UserAndService, docType string, document []byte) (domain.SaveResult, error) {
	input := CreateInput{Type: docType, Document: document}
	if err := input.Validate(s.cfg.MaxDocumentBytes); err != nil {
		return domain.SaveResult{}, err
	}

	res, err := s.save(ctx, caller, strings.TrimSpace(docType), document)
	if err != nil {
		return domain.SaveResult{}, fmt.Errorf("draft.SaveByType: %w", err)
	}
	return res, nil
}

func (s *Service) save(ctx context.Context, caller domain.UserAndService, docType string, document []byte) (domain.SaveResult, error) {
	res, err := s.drafts.Upsert(ctx, caller.Key(docType), document, fingerprint(caller))
	if err != nil {
		return domain.SaveResult{}, err
	}

	s.metrics.DraftSaved(res.Status)
	s.log.InfoContext(ctx, "draft saved",
		append(callerAttrs(caller),
			slog.Int64("draft_id", res.ID),
			slog.String("type", docType),
			slog.String("status", res.Status.String()),
		)...,
	)

	return res, nil
}
