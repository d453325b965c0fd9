package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2idPasswordHasher hashes passwords with argon2id and encodes the
// result as a PHC string, salt included, so every call on the same plaintext
// produces a distinct stored value.
type Argon2idPasswordHasher struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

func NewArgon2idPasswordHasher() Argon2idPasswordHasher {
	return Argon2idPasswordHasher{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
		KeyLen:  32,
		SaltLen: 16,
	}
}

func (h Argon2idPasswordHasher) params() (uint32, uint32, uint8, uint32, uint32) {
	timeCost, memory, threads, keyLen, saltLen := h.Time, h.Memory, h.Threads, h.KeyLen, h.SaltLen
	if timeCost == 0 {
		timeCost = 1
	}
	if memory == 0 {
		memory = 64 * 1024
	}
	if threads == 0 {
		threads = 4
	}
	if keyLen == 0 {
		keyLen = 32
	}
	if saltLen == 0 {
		saltLen = 16
	}
	return timeCost, memory, threads, keyLen, saltLen
}

func (h Argon2idPasswordHasher) Hash(password string) (string, error) {
	timeCost, memory, threads, keyLen, saltLen := h.params()

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, keyLen)
	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		memory,
		timeCost,
		threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// Verify recomputes the key from the stored parameters and compares in
// constant time. A malformed stored hash verifies false rather than failing.
func (h Argon2idPasswordHasher) Verify(hash string, password string) bool {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, timeCost uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &timeCost, &threads); err != nil {
		return false
	}
	if memory == 0 || timeCost == 0 || threads == 0 {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(expected) == 0 {
		return false
	}

	key := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(key, expected) == 1
}
