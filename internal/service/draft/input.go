package draft

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/draftstore-backend/internal/domain"
)

const maxTypeLength = 255

// CreateInput holds the parameters for creating or replacing the caller's draft of a type.
type CreateInput struct {
	Type     string
	Document json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate(maxDocumentBytes int) error {
	var errs []domain.FieldError
	errs = validateType(errs, i.Type)
	errs = validateDocument(errs, i.Document, maxDocumentBytes)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for updating a draft by id.
type UpdateInput struct {
	Type     string
	Document json.RawMessage
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate(maxDocumentBytes int) error {
	return CreateInput(i).Validate(maxDocumentBytes)
}

// ListInput holds the parameters for listing the caller's drafts.
type ListInput struct {
	Type  *string // nil = all types
	After int64   // exclusive id cursor, 0 = first page
	Limit int     // 0 = default page size
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.After < 0 {
		errs = append(errs, domain.FieldError{Field: "after", Message: "must not be negative"})
	}
	if i.Type != nil && len(strings.TrimSpace(*i.Type)) > maxTypeLength {
		errs = append(errs, domain.FieldError{Field: "type", Message: fmt.Sprintf("max %d characters", maxTypeLength)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateType(errs []domain.FieldError, docType string) []domain.FieldError {
	docType = strings.TrimSpace(docType)
	if docType == "" {
		return append(errs, domain.FieldError{Field: "type", Message: "required"})
	}
	if len(docType) > maxTypeLength {
		return append(errs, domain.FieldError{Field: "type", Message: fmt.Sprintf("max %d characters", maxTypeLength)})
	}
	return errs
}

func validateDocument(errs []domain.FieldError, doc json.RawMessage, maxBytes int) []domain.FieldError {
	switch {
	case len(doc) == 0:
		return append(errs, domain.FieldError{Field: "document", Message: "required"})
	case maxBytes > 0 && len(doc) > maxBytes:
		return append(errs, domain.FieldError{Field: "document", Message: fmt.Sprintf("max %d bytes", maxBytes)})
	case !json.Valid(doc):
		return append(errs, domain.FieldError{Field: "document", Message: "must be valid JSON"})
	}
	return errs
}
