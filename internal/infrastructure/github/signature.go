package github

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"pr-webhook-service/internal/domain/services"
)

const signaturePrefix = "sha256="

// Verifier checks X-Hub-Signature-256 headers against a shared secret.
type Verifier struct {
	secret string
}

func NewVerifier(secret string) services.SignatureVerifier {
	return &Verifier{secret: secret}
}

// Verify reports whether signature is a valid HMAC-SHA256 of body.
// With no secret configured every delivery is accepted; this is a
// deliberately permissive fallback, not a security guarantee.
func (v *Verifier) Verify(body []byte, signature string) bool {
	if v.secret == "" {
		return true
	}
	if signature == "" {
		return false
	}
	if !strings.HasPrefix(signature, signaturePrefix) {
		return false
	}
	received := strings.TrimPrefix(signature, signaturePrefix)

	mac := hmac.New(sha256.New, []byte(v.secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	// Constant-time comparison to prevent timing attacks.
	return hmac.Equal([]byte(received), []byte(expected))
}
