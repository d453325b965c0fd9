package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2idHashIsSalted(t *testing.T) {
	hasher := testHasher()

	first, err := hasher.Hash("Passw0rd!")
	require.NoError(t, err)
	second, err := hasher.Hash("Passw0rd!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "$argon2id$"))
	assert.True(t, hasher.Verify(first, "Passw0rd!"))
	assert.True(t, hasher.Verify(second, "Passw0rd!"))
}

func TestArgon2idVerifyRejectsWrongPassword(t *testing.T) {
	hasher := testHasher()

	hash, err := hasher.Hash("Passw0rd!")
	require.NoError(t, err)

	assert.False(t, hasher.Verify(hash, "passw0rd!"))
	assert.False(t, hasher.Verify(hash, ""))
}

func TestArgon2idVerifyMalformedHash(t *testing.T) {
	hasher := testHasher()

	cases := []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=64,t=1,p=1$short",
		"$argon2id$v=19$m=64,t=1,p=1$!!!$!!!",
		"$argon2i$v=19$m=64,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=64,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=0,t=0,p=0$c2FsdA$aGFzaA",
	}
	for _, malformed := range cases {
		assert.False(t, hasher.Verify(malformed, "Passw0rd!"), "hash %q", malformed)
	}
}

func TestArgon2idZeroValueUsesDefaults(t *testing.T) {
	hasher := Argon2idPasswordHasher{}

	hash, err := hasher.Hash("Passw0rd!")
	require.NoError(t, err)
	assert.Contains(t, hash, "m=65536,t=1,p=4")
	assert.True(t, hasher.Verify(hash, "Passw0rd!"))
}
