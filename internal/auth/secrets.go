package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"

	"github.com/heartmarshall/draftstore-backend/internal/domain"
)

const (
	secretField        = "Secret"
	fingerprintInfo    = "draftstore secret fingerprint v1"
	fingerprintByteLen = 16
)

// ParseSecrets parses the shared-secret header "primary[,secondary]".
// When minLength > 0 every part must be at least that long.
func ParseSecrets(header string, minLength int) (domain.Secrets, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return domain.Secrets{}, domain.NewValidationError(secretField, "header is required")
	}

	parts := strings.Split(header, ",")
	if len(parts) > 2 {
		return domain.Secrets{}, domain.NewValidationError(secretField, "expected at most two comma-separated values")
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return domain.Secrets{}, domain.NewValidationError(secretField, "contains an empty value")
		}
		if minLength > 0 && len(parts[i]) < minLength {
			return domain.Secrets{}, domain.NewValidationError(secretField,
				fmt.Sprintf("each value must be at least %d characters", minLength))
		}
	}

	s := domain.Secrets{Primary: parts[0]}
	if len(parts) == 2 {
		s.Secondary = parts[1]
	}
	return s, nil
}

// SecretFingerprint derives a short, non-reversible identifier of the primary
// secret. It lets operators tell which secret wrote a draft without storing it.
func SecretFingerprint(s domain.Secrets) string {
	if s.Primary == "" {
		return ""
	}

	r := hkdf.New(sha256.New, []byte(s.Primary), nil, []byte(fingerprintInfo))
	out := make([]byte, fingerprintByteLen)
	if _, err := io.ReadFull(r, out); err != nil {
		// hkdf only fails past 255*HashLen bytes of output.
		panic(fmt.Sprintf("auth: derive fingerprint: %v", err))
	}
	return hex.EncodeToString(out)
}
