package crypto

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var ErrInvalidHashFormat = errors.New("invalid encoded hash format")

// VerifyAdminPassword checks a login attempt against the configured admin
// credential. When an argon2id PHC hash is configured it takes precedence;
// otherwise the candidate is compared against the plaintext value from
// configuration in constant time.
func VerifyAdminPassword(candidate, plain, phcHash string) (bool, error) {
	if phcHash != "" {
		return verifyArgon2id(candidate, phcHash)
	}
	if plain == "" {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(plain)) == 1, nil
}

// verifyArgon2id checks a password against a PHC-formatted argon2id hash,
// e.g. $argon2id$v=19$m=65536,t=3,p=2$<base64-salt>$<base64-hash>.
func verifyArgon2id(password, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrInvalidHashFormat
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, ErrInvalidHashFormat
	}
	if version != argon2.Version {
		return false, ErrInvalidHashFormat
	}

	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return false, ErrInvalidHashFormat
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrInvalidHashFormat
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, ErrInvalidHashFormat
	}

	candidate := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(hash)))
	return subtle.ConstantTimeCompare(hash, candidate) == 1, nil
}
