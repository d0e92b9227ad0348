package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// supportTokenBytes is the entropy of a raw impersonation token.
const supportTokenBytes = 32

// SupportTokenGenerator creates impersonation tokens. Only the hash is persisted.
type SupportTokenGenerator interface {
	// Generate returns a new raw token and its SHA-256 hex hash.
	Generate() (token string, hash string, err error)
	// Hash returns the SHA-256 hex hash of a raw token.
	Hash(token string) string
	// Matches reports whether token hashes to hash, in constant time.
	Matches(token, hash string) bool
}

type supportTokenGenerator struct{}

// NewSupportTokenGenerator creates a new SupportTokenGenerator.
func NewSupportTokenGenerator() SupportTokenGenerator {
	return &supportTokenGenerator{}
}

func (g *supportTokenGenerator) Generate() (string, string, error) {
	buf := make([]byte, supportTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate support token: %w", err)
	}
	token := hex.EncodeToString(buf)
	return token, g.Hash(token), nil
}

func (g *supportTokenGenerator) Hash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (g *supportTokenGenerator) Matches(token, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(g.Hash(token)), []byte(hash)) == 1
}
