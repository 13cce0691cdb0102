// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argon2Prefix = "$argon2id$"

// argon2Hasher is the [PasswordHasher] for the "argon2id" scheme.
type argon2Hasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
	saltLen int
}

// NewArgon2Hasher constructs an argon2id [PasswordHasher] with the
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//
// Encoded hashes use the PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
func NewArgon2Hasher() PasswordHasher {
	return &argon2Hasher{
		time:    1,
		memory:  64 * 1024, // 64 MiB
		threads: 4,
		keyLen:  32, // 256 bits
		saltLen: 16,
	}
}

func (a *argon2Hasher) Scheme() string {
	return SchemeArgon2id
}

// Hash generates a random salt and derives the argon2id key for password.
func (a *argon2Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, a.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, a.time, a.memory, a.threads, a.keyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Prefix,
		argon2.Version,
		a.memory, a.time, a.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify re-derives the key with the parameters recorded in stored, so
// hashes created under older tuning keep verifying.
func (a *argon2Hasher) Verify(password, stored string) (bool, error) {
	params, salt, key, err := decodeArgon2(stored)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, params.time, params.memory, params.threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(candidate, key) == 1, nil
}

func decodeArgon2(stored string) (*argon2Hasher, []byte, []byte, error) {
	if !strings.HasPrefix(stored, argon2Prefix) {
		return nil, nil, nil, ErrMalformedHash
	}

	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash
	parts := strings.Split(stored, "$")
	if len(parts) != 6 {
		return nil, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	if version != argon2.Version {
		return nil, nil, nil, ErrIncompatibleHash
	}

	params := &argon2Hasher{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	if params.memory == 0 || params.time == 0 || params.threads == 0 {
		return nil, nil, nil, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: salt: %v", ErrMalformedHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: key", ErrMalformedHash)
	}

	return params, salt, key, nil
}
