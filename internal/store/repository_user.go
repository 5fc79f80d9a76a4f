package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-manager/internal/logger"
	"github.com/MKhiriev/go-task-manager/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table and
// the refresh-token allow-list against the "refresh_tokens" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.PasswordHash, user.Role)

	var created models.User
	if err := row.Scan(&created.UserID, &created.Name, &created.Email, &created.PasswordHash, &created.Role, &created.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		case "":
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*userRepository.CreateUser").Msg("error: unexpected DB error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the user record whose email matches the one
// provided.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByID retrieves the user record with the given id. Error handling
// matches [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Role, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*userRepository.findUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// AddRefreshToken records a freshly issued refresh token for the user. The
// insert is a single-row atomic operation; concurrent sessions for the same
// user never contend on a shared document.
func (r *userRepository) AddRefreshToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, addRefreshToken, token, userID, expiresAt); err != nil {
		log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*userRepository.AddRefreshToken").Msg("error: inserting refresh token")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// DeleteRefreshToken atomically consumes a stored refresh token.
//
// The DELETE is the serialization point of rotation: when two concurrent
// refresh calls present the same token, the database guarantees only one of
// them observes an affected row; the other receives
// [ErrRefreshTokenNotFound].
func (r *userRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteRefreshToken, token)
	if err != nil {
		log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*userRepository.DeleteRefreshToken").Msg("error: deleting refresh token")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrRefreshTokenNotFound
	}

	return nil
}

// DeleteExpiredRefreshTokens prunes the user's tokens whose lifetime elapsed
// without ever being exchanged. Zero affected rows is a normal outcome.
func (r *userRepository) DeleteExpiredRefreshTokens(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteExpiredRefreshTokens, userID); err != nil {
		log.Err(err).Bool("retryable", r.db.isRetryable(err)).Str("func", "*userRepository.DeleteExpiredRefreshTokens").Msg("error: pruning refresh tokens")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
