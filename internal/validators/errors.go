package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidEntityType  = errors.New("invalid entity type")
	ErrInvalidRecordID    = errors.New("invalid record id")
	ErrEmptyFields        = errors.New("fields are required")
	ErrFieldsTooLarge     = errors.New("fields exceed the size limit")
	ErrInvalidBaseVersion = errors.New("invalid base version")
	ErrEmptyLogin         = errors.New("login is required")
	ErrEmptyPassword      = errors.New("password is required")
)
