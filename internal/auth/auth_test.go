package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimsString(t *testing.T) {
	claims := NewStaticClaims("sub-1", map[string]any{
		"preferred_username": "alice",
		"email_verified":     true,
	})

	assert.Equal(t, "alice", claims.String("preferred_username"))
	assert.Equal(t, "", claims.String("missing"))
	// Non-string claims are not coerced.
	assert.Equal(t, "", claims.String("email_verified"))

	var nilClaims *Claims
	assert.Equal(t, "", nilClaims.String("preferred_username"))
}

func TestNewOIDCVerifier_RequiresIssuer(t *testing.T) {
	_, err := NewOIDCVerifier(context.Background(), "")
	assert.Error(t, err)
}
