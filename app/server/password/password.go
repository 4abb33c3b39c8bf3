// Package password hashes and verifies user passwords.
//
// New digests are argon2id. Digests produced by the earlier deployment are
// bcrypt and are still accepted; Verify reports them as needing a rehash.
package password

import (
	"errors"
	"fmt"
	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
	"strings"
)

var ErrEmptyPassword = errors.New("password is empty")

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// maxMemory 限制存储的摘要可以要求的内存（ KiB ）
const maxMemory = 256 * 1024

type Hasher struct {
	params *argon2id.Params
}

// New returns a Hasher using params, or argon2id.DefaultParams when nil.
func New(params *argon2id.Params) *Hasher {
	if params == nil {
		params = argon2id.DefaultParams
	}
	return &Hasher{params: params}
}

func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	digest, err := argon2id.CreateHash(plaintext, h.params)
	if err != nil {
		return "", fmt.Errorf("create hash: %w", err)
	}

	return digest, nil
}

// Verify reports whether plaintext matches digest. A malformed digest never
// matches. needsRehash is set on a match whose digest is bcrypt or was made
// with different argon2id parameters.
func (h *Hasher) Verify(digest, plaintext string) (match bool, needsRehash bool) {
	if isBcrypt(digest) {
		if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)); err != nil {
			return false, false
		}
		return true, true
	}

	if !usableArgon2id(digest) {
		return false, false
	}

	match, params, err := argon2id.CheckHash(plaintext, digest)
	if err != nil || !match {
		return false, false
	}

	return true, *params != *h.params
}

func isBcrypt(digest string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(digest, prefix) {
			return true
		}
	}
	return false
}

// usableArgon2id 检查摘要里的参数，避免 argon2 因为非法参数 panic
func usableArgon2id(digest string) bool {
	params, _, key, err := argon2id.DecodeHash(digest)
	if err != nil {
		return false
	}
	return params.Iterations >= 1 &&
		params.Parallelism >= 1 &&
		params.Memory <= maxMemory &&
		len(key) > 0
}
