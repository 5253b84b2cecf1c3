package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/driving-records/internal/config"
)

func newTestTokenManager(secret string) *TokenManager {
	return NewTokenManager(config.AuthConfig{JWTSecret: secret, TokenTTLSeconds: 86400})
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tm := newTestTokenManager("test-secret")

	token, exp, err := tm.Issue("66756c4ba852590245b52768")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(86400*time.Second), exp, 5*time.Second)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "66756c4ba852590245b52768", claims.UserID)
}

func TestTokenManager_VerifyRejects(t *testing.T) {
	tm := newTestTokenManager("test-secret")
	other := newTestTokenManager("other-secret")

	forged, _, err := other.Issue("user-1")
	require.NoError(t, err)

	expiredMgr := newTestTokenManager("test-secret")
	expiredMgr.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expired, _, err := expiredMgr.Issue("user-1")
	require.NoError(t, err)

	noID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: "user-1"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		UserID:           "user-1",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"malformed":         "invalidToken",
		"empty":             "",
		"forged signature":  forged,
		"expired":           expired,
		"missing id":        noID,
		"missing expiry":    noExpiry,
		"unexpected method": wrongAlg,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := tm.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}
