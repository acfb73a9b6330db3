package crypto_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codetrial.net/internal/adapter/crypto"
	"gitlab.com/codetrial.net/internal/config"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret"})
	ctx := context.Background()
	userID := uuid.New()

	token, err := svc.GenerateTokenHMAC(ctx, "HS256", map[string]interface{}{
		"user_id":  userID.String(),
		"username": "ada",
		"role":     "candidate",
	})
	require.NoError(t, err)

	valid, err := svc.VerifyTokenHMAC(ctx, token, "HS256")
	require.NoError(t, err)
	assert.True(t, valid)

	payload, err := svc.DecodeTokenPayload(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, payload.UserID)
	assert.Equal(t, "ada", payload.Username)
	assert.Equal(t, "candidate", payload.Role)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	ctx := context.Background()
	token, err := crypto.NewJWTService(&config.JwtConfig{Secret: "one"}).
		GenerateTokenHMAC(ctx, "HS256", map[string]interface{}{"username": "ada"})
	require.NoError(t, err)

	valid, err := crypto.NewJWTService(&config.JwtConfig{Secret: "two"}).
		VerifyTokenHMAC(ctx, token, "HS256")
	assert.Error(t, err)
	assert.False(t, valid)
}

func TestDecodeRejectsMalformedToken(t *testing.T) {
	svc := crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret"})

	_, err := svc.DecodeTokenPayload(context.Background(), "not.a-token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	svc := crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret"})
	ctx := context.Background()

	hash, err := svc.EncryptPassword(ctx, "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	valid, err := svc.VerifyPassword(ctx, hash, "s3cret")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, _ = svc.VerifyPassword(ctx, hash, "wrong")
	assert.False(t, valid)
}
