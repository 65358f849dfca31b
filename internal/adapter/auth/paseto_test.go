package auth_test

import (
	"testing"
	"time"

	"github.com/MikeRez0/shopx/internal/adapter/auth"
	"github.com/MikeRez0/shopx/internal/adapter/config"
	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/MikeRez0/shopx/internal/core/port"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasetoToken_RoundTrip(t *testing.T) {
	ts, err := auth.New(&config.Auth{TokenTTL: time.Hour})
	require.NoError(t, err)

	payload := &port.TokenPayload{CustomerID: uuid.New(), Role: domain.RoleSeller}
	token, err := ts.CreateToken(payload)
	require.NoError(t, err)

	got, err := ts.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestPasetoToken_SharedKey(t *testing.T) {
	issuer, err := auth.New(&config.Auth{})
	require.NoError(t, err)

	verifier, err := auth.New(&config.Auth{KeyHex: issuer.KeyHex()})
	require.NoError(t, err)

	token, err := issuer.CreateToken(&port.TokenPayload{CustomerID: uuid.New(), Role: domain.RoleCustomer})
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.NoError(t, err)

	stranger, err := auth.New(&config.Auth{})
	require.NoError(t, err)
	_, err = stranger.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestPasetoToken_Invalid(t *testing.T) {
	_, err := auth.New(&config.Auth{KeyHex: "zz"})
	assert.Error(t, err)

	ts, err := auth.New(&config.Auth{})
	require.NoError(t, err)
	_, err = ts.VerifyToken("v4.local.garbage")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
