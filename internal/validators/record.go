package validators

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-offline-sync/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldUserID targets the owner of a record.
	FieldUserID = "user_id"

	// FieldEntityType targets the entity type of a record.
	FieldEntityType = "entity_type"

	// FieldID targets the client-assigned record id.
	FieldID = "id"

	// FieldFields targets the JSON payload of a record.
	FieldFields = "fields"

	// FieldBaseVersion targets the optimistic-concurrency base of an upsert.
	FieldBaseVersion = "base_version"

	// FieldLogin and FieldPassword target user credentials.
	FieldLogin    = "login"
	FieldPassword = "password"
)

const (
	// MaxRecordIDLength bounds record ids in runes.
	MaxRecordIDLength = 128

	// MaxFieldsSize bounds the encoded payload of a record in bytes.
	MaxFieldsSize = 256 << 10
)

var entityTypePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

// RecordValidator validates records and credentials of the reference
// backend.
type RecordValidator struct{}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RemoteRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.RemoteRecord:
		return v.validateRecord(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRecord checks the requested fields of record, or all of them
// except the base version when none are named.
func (v *RecordValidator) validateRecord(ctx context.Context, record models.RemoteRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldEntityType, FieldID, FieldFields}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if record.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldEntityType:
			if !IsValidEntityType(record.Type) {
				return ErrInvalidEntityType
			}
		case FieldID:
			if !IsValidRecordID(record.ID) {
				return ErrInvalidRecordID
			}
		case FieldFields:
			if record.Fields == nil {
				return ErrEmptyFields
			}
			raw, err := json.Marshal(record.Fields)
			if err != nil {
				return ErrEmptyFields
			}
			if len(raw) > MaxFieldsSize {
				return ErrFieldsTooLarge
			}
		case FieldBaseVersion:
			if record.BaseVersion != nil && record.BaseVersion.IsZero() {
				return ErrInvalidBaseVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsValidEntityType reports whether t is a lowercase identifier of at most
// 64 characters.
func IsValidEntityType(t models.EntityType) bool {
	return entityTypePattern.MatchString(string(t))
}

// IsValidRecordID reports whether id is a non-blank, single-line path
// segment of at most MaxRecordIDLength runes.
func IsValidRecordID(id string) bool {
	if strings.TrimSpace(id) == "" || !utf8.ValidString(id) {
		return false
	}
	if utf8.RuneCountInString(id) > MaxRecordIDLength {
		return false
	}
	return !strings.ContainsAny(id, "/\n\r\t")
}
