package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"model-serving-service/internal/core/domain"
)

// ArtifactVerifier decides whether raw artifact bytes are trustworthy
// before anything deserializes them. Verification is strict by default:
// a metadata record without a digest is rejected. Disabling is an
// explicit configuration choice and is logged loudly.
type ArtifactVerifier struct {
	signingKey []byte
	disabled   bool
}

func NewArtifactVerifier(signingKey []byte, disabled bool) *ArtifactVerifier {
	return &ArtifactVerifier{signingKey: signingKey, disabled: disabled}
}

// Verify checks the SHA-256 content digest and, when a signing key is
// configured, the HMAC-SHA256 signature of the artifact bytes against
// the metadata record. Comparisons are constant-time. Any mismatch is
// a hard failure; the caller must not deserialize the bytes.
func (v *ArtifactVerifier) Verify(artifact []byte, meta *domain.ArtifactMetadata) error {
	if v.disabled {
		log.Warn("artifact integrity verification is DISABLED; serving unverified model bytes")
		return nil
	}

	if alg := strings.ToLower(strings.ReplaceAll(meta.DigestAlgorithm, "-", "")); alg != "" && alg != "sha256" {
		return fmt.Errorf("%w: unsupported digest algorithm %q", domain.ErrIntegrityViolation, meta.DigestAlgorithm)
	}

	if meta.ModelDigest == "" {
		return fmt.Errorf("%w: metadata carries no digest", domain.ErrIntegrityViolation)
	}

	sum := sha256.Sum256(artifact)
	actual := hex.EncodeToString(sum[:])

	expected, err := hex.DecodeString(meta.ModelDigest)
	if err != nil || !hmac.Equal(sum[:], expected) {
		return &domain.IntegrityError{
			Field:    "digest",
			Expected: meta.ModelDigest,
			Actual:   actual,
		}
	}

	if len(v.signingKey) > 0 {
		if meta.ModelSignature == "" {
			return fmt.Errorf("%w: signing key configured but metadata carries no signature", domain.ErrIntegrityViolation)
		}
		mac := hmac.New(sha256.New, v.signingKey)
		mac.Write(artifact)
		actualSig := mac.Sum(nil)

		expectedSig, err := hex.DecodeString(meta.ModelSignature)
		if err != nil || !hmac.Equal(actualSig, expectedSig) {
			return &domain.IntegrityError{
				Field:    "signature",
				Expected: meta.ModelSignature,
				Actual:   hex.EncodeToString(actualSig),
			}
		}
	}

	return nil
}
