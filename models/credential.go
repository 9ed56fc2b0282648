package models

// CredentialRecord is a single login entry stored inside a vault.
//
// Password is plaintext only while the vault is decrypted in client memory.
// The record is serialized exclusively as part of a whole vault, right before
// encryption. JSON field names are the vault wire format and are shared with
// the browser client.
type CredentialRecord struct {
	// ID is an opaque, collision-resistant identifier unique within the vault.
	ID string `json:"id"`

	// Type is the record category.
	Type RecordType `json:"type"`

	// Name is the display name of the record (e.g. "Mail").
	Name string `json:"name"`

	// Username is the login identifier (username or email).
	Username string `json:"username"`

	// Password is the secret.
	Password string `json:"password"`

	// LoginURL is an optional address of the login page.
	LoginURL string `json:"loginUrl"`
}
