package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and partial update against the
// "users" table.
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

// CreateUser persists a new user record and returns it as stored, with the
// server-assigned CreatedAt.
//
// Error handling:
//   - unique_violation (23505) on email or username → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.UserID, user.Email, user.Username, user.Password, user.Name)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Str("pg_code", postgresError(err)).
			Msg("error creating user")

		if r.db.classify(err) == UniqueViolation {
			return models.User{}, ErrUserAlreadyExists
		}
		return models.User{}, err
	}

	return created, nil
}

// FindUserByEmail retrieves the user registered with the given e-mail.
// Returns [ErrNoUserWasFound] when nothing matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID retrieves the user with the given identifier.
// Returns [ErrNoUserWasFound] when nothing matches.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

// FindUserByUsername retrieves the user with the given public handle.
// Returns [ErrNoUserWasFound] when nothing matches.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, ErrNoUserWasFound) {
			log.Debug().Str("func", funcName).Msg("user not found")
			return models.User{}, err
		}
		if r.db.classify(err) == InvalidTextRepresentation {
			return models.User{}, fmt.Errorf("%w: %w", ErrNoUserWasFound, ErrInvalidIdentifier)
		}
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser applies the non-nil fields of update to the user's row.
// The statement is built dynamically so that omitted fields stay untouched.
//
// Error handling:
//   - no fields set → no query, nil.
//   - unique_violation → [ErrUserAlreadyExists].
//   - zero affected rows → [ErrNoUserWasFound].
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) error {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return nil
	}

	query, args, err := buildUpdateUserQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdateUser").
			Str("pg_code", postgresError(err)).
			Msg("failed to update user")

		if r.db.classify(err) == UniqueViolation {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	b := psql.Update("users")

	set := func(column string, value *string) {
		if value != nil {
			b = b.Set(column, *value)
		}
	}
	set("name", update.Name)
	set("email", update.Email)
	set("password", update.Password)
	set("username", update.Username)
	set("bio", update.Bio)
	set("profile_picture", update.ProfilePicture)

	return b.Where("user_id = ?", update.UserID).ToSql()
}

// scanUser reads one users row. sql.ErrNoRows becomes [ErrNoUserWasFound];
// other failures are returned wrapped in [ErrExecutingQuery] so that driver
// codes survive for classification.
func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.Username,
		&user.Password,
		&user.Name,
		&user.Bio,
		&user.ProfilePicture,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
