// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/service"
	"savor/internal/errors"
)

// Argon2id parameters. Time cost is deliberately high because the same hasher
// protects both passwords and stored refresh tokens.
const (
	argonTime    = 10
	argonMemory  = 64 * 1024
	argonThreads = 1
	argonKeyLen  = 32
	argonSaltLen = 16
)

// argon2Hasher implements SecretHasher with argon2id and a PHC-formatted
// output string.
type argon2Hasher struct{}

// NewArgon2Hasher is the constructor for argon2Hasher.
func NewArgon2Hasher() service.SecretHasher {
	return &argon2Hasher{}
}

// Hash derives a salted argon2id hash and encodes it in PHC format:
// $argon2id$v=19$m=65536,t=10,p=1$<salt>$<hash>
func (h *argon2Hasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", errors.Wrap(domainerrors.ErrInvalidInput, "cannot hash an empty secret")
	}

	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "generate salt")
	}

	key := argon2.IDKey([]byte(secret), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonTime,
		argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify re-derives the key under the parameters embedded in the stored hash
// and compares in constant time. Any malformed input yields false.
func (h *argon2Hasher) Verify(hash, secret string) bool {
	salt, key, memory, time, threads, err := decodeHash(hash)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(secret), salt, time, memory, threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1
}

func decodeHash(encoded string) (salt, key []byte, memory, time uint32, threads uint8, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, errors.New("malformed argon2id hash")
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, errors.Wrap(err, "parse version")
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, errors.Errorf("unsupported argon2 version: %d", version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, errors.Wrap(err, "parse parameters")
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, errors.Wrap(err, "decode salt")
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, errors.Wrap(err, "decode key")
	}

	return salt, key, memory, time, threads, nil
}
