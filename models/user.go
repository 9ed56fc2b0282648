package models

import "time"

// User is the server-owned account row. The encrypted vault is an opaque
// string the server never interprets.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the server-assigned uuid of the account.
	UserID string `json:"-"`

	// Username is the unique login name.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the login password.
	PasswordHash string `json:"-"`

	// EncryptedVault is the last stored envelope, nil until the first save.
	EncryptedVault *string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
