package models

import "time"

// User is an account of the remote backend. Records are partitioned by
// UserID, so two users never observe each other's entities.
type User struct {
	// UserID is the server-assigned identifier, also the JWT subject.
	UserID int64 `json:"-"`

	// Login is the unique account name.
	Login string `json:"login"`

	// Password is the plaintext credential. It only travels in register and
	// login requests and is never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the keyed HMAC of Password kept by the server.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Session is the client's view of an authenticated user.
type Session struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
}

// Valid reports whether the session can authorize requests at now.
func (s Session) Valid(now time.Time) bool {
	if s.Token == "" || s.UserID == 0 {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}
