package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := JWTManager{
		Secret:         []byte("secret"),
		Issuer:         "enrollix",
		AccessTokenTTL: time.Minute,
	}

	token, ttl, err := manager.IssueAccessToken("subject-id")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	subject, err := manager.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "subject-id", subject)
}

func TestJWTAlgorithmSelection(t *testing.T) {
	for _, algorithm := range []string{"", "HS256", "HS384", "HS512"} {
		manager := JWTManager{
			Secret:         []byte("secret"),
			Algorithm:      algorithm,
			AccessTokenTTL: time.Minute,
		}
		token, _, err := manager.IssueAccessToken("subject-id")
		require.NoError(t, err, "algorithm %q", algorithm)

		subject, err := manager.ParseAccessToken(token)
		require.NoError(t, err, "algorithm %q", algorithm)
		assert.Equal(t, "subject-id", subject)
	}
}

func TestJWTExpired(t *testing.T) {
	manager := JWTManager{
		Secret:         []byte("secret"),
		AccessTokenTTL: -time.Minute,
	}

	token, _, err := manager.IssueAccessToken("subject-id")
	require.NoError(t, err)

	_, err = manager.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTWrongSecret(t *testing.T) {
	issuer := JWTManager{Secret: []byte("secret"), AccessTokenTTL: time.Minute}
	token, _, err := issuer.IssueAccessToken("subject-id")
	require.NoError(t, err)

	verifier := JWTManager{Secret: []byte("other-secret")}
	_, err = verifier.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTGarbageToken(t *testing.T) {
	manager := JWTManager{Secret: []byte("secret")}
	_, err := manager.ParseAccessToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
