package crypto

import "github.com/MKhiriev/go-offline-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/field_cipher_mock.go -package=mock

// FieldCipher protects the sensitive fields of an entity payload before it
// leaves the device. It knows nothing about the network or the local store.
//
// Only fields named in the allow-list are touched; every other field passes
// through unchanged. Encrypted values are self-describing strings, so
// DecryptFields can be applied to any payload, including one that was never
// encrypted.
type FieldCipher interface {
	// EncryptFields returns a copy of fields with every sensitive field
	// replaced by its ciphertext. The input map is not modified.
	EncryptFields(fields models.Fields) (models.Fields, error)

	// DecryptFields returns a copy of fields with every encrypted sensitive
	// field replaced by its original value. Returns an error if a value
	// cannot be authenticated (e.g. wrong passphrase or tampered data).
	DecryptFields(fields models.Fields) (models.Fields, error)

	// IsSensitive reports whether name is on the allow-list.
	IsSensitive(name string) bool
}
