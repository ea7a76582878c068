package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"
	"sync"
)

// BodyHashHeader carries the hex HMAC-SHA256 of the raw request body.
const BodyHashHeader = "HashSHA256"

// BodySigner produces and checks the HashSHA256 header: the hex encoded
// HMAC-SHA256 of a request body under a shared key. Hashers are pooled per
// signer, so a server and a client in one process can use different keys.
type BodySigner struct {
	pool sync.Pool
}

// NewBodySigner returns nil for an empty key. A nil signer signs nothing
// and accepts everything.
func NewBodySigner(key string) *BodySigner {
	if key == "" {
		return nil
	}
	s := &BodySigner{}
	s.pool.New = func() any {
		return hmac.New(sha256.New, []byte(key))
	}
	return s
}

// Enabled reports whether s was built with a key.
func (s *BodySigner) Enabled() bool {
	return s != nil
}

// Sign returns the lower-case hex digest of body.
func (s *BodySigner) Sign(body []byte) string {
	if s == nil {
		return ""
	}
	h := s.pool.Get().(hash.Hash)
	defer s.pool.Put(h)

	h.Reset()
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

// Verify compares received, case-insensitively, with the digest of body in
// constant time.
func (s *BodySigner) Verify(body []byte, received string) bool {
	if s == nil {
		return true
	}
	return hmac.Equal([]byte(s.Sign(body)), []byte(strings.ToLower(received)))
}

// HashString is the one-off keyed digest used for password hashes.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
