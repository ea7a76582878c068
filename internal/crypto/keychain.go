// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-offline-sync/models"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// ciphertextPrefix marks a field value produced by [fieldCipher]. The
// version lets a later key scheme coexist with stored data.
const ciphertextPrefix = "enc:v1:"

var (
	// ErrEmptyPassphrase is returned by [NewFieldCipher] when sensitive
	// fields are configured without a passphrase.
	ErrEmptyPassphrase = errors.New("crypto: empty passphrase")

	// ErrMalformedCiphertext is returned when an encrypted field value
	// cannot be decoded or is too short to hold a nonce.
	ErrMalformedCiphertext = errors.New("crypto: malformed ciphertext")
)

// KeyParams are the Argon2id tuning parameters of the field key.
type KeyParams struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// DefaultKeyParams follow the OWASP (2024) recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
var DefaultKeyParams = KeyParams{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
}

// DeriveKey derives the 256-bit field key from passphrase and salt using
// Argon2id. The same inputs always produce the same key, which is what lets
// every device of a user read each other's records.
func DeriveKey(passphrase, salt string, params KeyParams) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		[]byte(salt),
		params.Time,
		params.Memory,
		params.Threads,
		chacha20poly1305.KeySize,
	)
}

// fieldCipher is the private implementation of [FieldCipher] using
// XChaCha20-Poly1305. Its 24-byte nonce is safe to draw at random for every
// value.
type fieldCipher struct {
	key       []byte
	sensitive map[string]struct{}
}

// NewFieldCipher constructs a [FieldCipher] over the given allow-list. When
// sensitiveFields is empty the passphrase is not required and the cipher
// passes every payload through.
func NewFieldCipher(passphrase, salt string, sensitiveFields []string) (FieldCipher, error) {
	return newFieldCipher(passphrase, salt, sensitiveFields, DefaultKeyParams)
}

func newFieldCipher(passphrase, salt string, sensitiveFields []string, params KeyParams) (*fieldCipher, error) {
	c := &fieldCipher{sensitive: make(map[string]struct{}, len(sensitiveFields))}
	for _, f := range sensitiveFields {
		c.sensitive[f] = struct{}{}
	}
	if len(c.sensitive) == 0 {
		return c, nil
	}
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	c.key = DeriveKey(passphrase, salt, params)
	return c, nil
}

// IsSensitive implements [FieldCipher].
func (c *fieldCipher) IsSensitive(name string) bool {
	_, ok := c.sensitive[name]
	return ok
}

// EncryptFields implements [FieldCipher]. Each sensitive value is
// serialized to JSON, sealed and stored as "enc:v1:" + base64(nonce ‖ ciphertext).
// The field name is bound as associated data, so a ciphertext moved to
// another field fails to open. Values that are already encrypted are left
// as they are.
func (c *fieldCipher) EncryptFields(fields models.Fields) (models.Fields, error) {
	out := fields.Clone()
	if len(c.sensitive) == 0 {
		return out, nil
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	for name, value := range out {
		if !c.IsSensitive(name) || value == nil || isCiphertext(value) {
			continue
		}

		plaintext, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", name, err)
		}

		nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
		if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
			return nil, fmt.Errorf("generate nonce: %w", err)
		}

		sealed := aead.Seal(nonce, nonce, plaintext, []byte(name))
		out[name] = ciphertextPrefix + base64.StdEncoding.EncodeToString(sealed)
	}

	return out, nil
}

// DecryptFields implements [FieldCipher].
func (c *fieldCipher) DecryptFields(fields models.Fields) (models.Fields, error) {
	out := fields.Clone()
	if len(c.sensitive) == 0 {
		return out, nil
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	for name, value := range out {
		s, ok := value.(string)
		if !ok || !strings.HasPrefix(s, ciphertextPrefix) {
			continue
		}

		blob, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(s, ciphertextPrefix))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, ErrMalformedCiphertext)
		}
		if len(blob) < aead.NonceSize() {
			return nil, fmt.Errorf("field %q: %w", name, ErrMalformedCiphertext)
		}

		nonce, ciphertext := blob[:aead.NonceSize()], blob[aead.NonceSize():]
		plaintext, err := aead.Open(nil, nonce, ciphertext, []byte(name))
		if err != nil {
			return nil, fmt.Errorf("decrypt field %q: %w", name, err)
		}

		var decoded any
		if err := json.Unmarshal(plaintext, &decoded); err != nil {
			return nil, fmt.Errorf("unmarshal field %q: %w", name, err)
		}
		out[name] = decoded
	}

	return out, nil
}

func isCiphertext(v any) bool {
	s, ok := v.(string)
	return ok && strings.HasPrefix(s, ciphertextPrefix)
}
