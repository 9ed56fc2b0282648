package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-sync/models"
)

const (
	usersTable = "users"

	colID             = "id"
	colUsername       = "username"
	colPasswordHash   = "password_hash"
	colEncryptedVault = "encrypted_vault"
	colCreatedAt      = "created_at"
	colUpdatedAt      = "updated_at"
)

func (db *DB) insertUserQuery(user models.User) sq.InsertBuilder {
	return db.builder.
		Insert(usersTable).
		Columns(colID, colUsername, colPasswordHash, colCreatedAt, colUpdatedAt).
		Values(user.UserID, user.Username, user.PasswordHash, user.CreatedAt, user.CreatedAt)
}

func (db *DB) selectUserByUsernameQuery(username string) sq.SelectBuilder {
	return db.builder.
		Select(colID, colUsername, colPasswordHash, colEncryptedVault, colCreatedAt).
		From(usersTable).
		Where(sq.Eq{colUsername: username})
}

func (db *DB) selectEncryptedVaultQuery(userID string) sq.SelectBuilder {
	return db.builder.
		Select(colEncryptedVault).
		From(usersTable).
		Where(sq.Eq{colID: userID})
}

// updateEncryptedVaultQuery replaces the envelope in one statement so a
// reader never observes a partial write.
func (db *DB) updateEncryptedVaultQuery(userID, value string, now time.Time) sq.UpdateBuilder {
	return db.builder.
		Update(usersTable).
		Set(colEncryptedVault, value).
		Set(colUpdatedAt, now).
		Where(sq.Eq{colID: userID})
}
