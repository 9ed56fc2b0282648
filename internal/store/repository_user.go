package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// CreateUser persists a new account. UserID and PasswordHash must already be
// set; CreatedAt is assigned here.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists]
//   - transient failure → [ErrStorageUnavailable]
//   - anything else → [ErrExecutingQuery]
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.CreatedAt = r.now().UTC()
	user.EncryptedVault = nil

	query, args, err := r.db.insertUserQuery(user).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		wrapped := r.db.wrapError(err)
		if errors.Is(wrapped, ErrUsernameAlreadyExists) {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("username already taken")
		} else {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		}
		return models.User{}, wrapped
	}

	return user, nil
}

// FindUserByUsername retrieves the account with the given username.
//
// Error handling:
//   - no rows → [ErrNoUserWasFound]
//   - any other driver-level error → classified via [DB.wrapError]
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectUserByUsernameQuery(username).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		found models.User
		vault sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.UserID, &found.Username, &found.PasswordHash, &vault, &found.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error selecting user")
		return models.User{}, r.db.wrapError(err)
	}

	if vault.Valid {
		found.EncryptedVault = &vault.String
	}

	return found, nil
}
