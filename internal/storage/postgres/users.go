package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/storage"
)

// SaveUser сохраняет нового пользователя.
// Возвращает ErrAlreadyExists, если email уже занят.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage.postgres.SaveUser"

	email := strings.TrimSpace(user.Email)
	if email == "" || user.PasswordHash == "" {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	query := `INSERT INTO users (email, password_hash, name, role)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at, updated_at;`

	err := s.db.QueryRow(ctx, query, email, user.PasswordHash, user.Name, string(user.Role)).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	user.Email = email

	return nil
}

// UserByEmail возвращает пользователя по email (без учёта регистра).
func (s *Storage) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgres.UserByEmail"

	query := `SELECT id, email, password_hash, name, role, refresh_token_hash, created_at, updated_at
	          FROM users WHERE email = $1;`

	user, err := scanUser(s.db.QueryRow(ctx, query, strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UserByID возвращает пользователя по идентификатору.
func (s *Storage) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage.postgres.UserByID"

	query := `SELECT id, email, password_hash, name, role, refresh_token_hash, created_at, updated_at
	          FROM users WHERE id = $1;`

	user, err := scanUser(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdateRefreshTokenHash записывает хэш refresh-токена активной сессии.
// nil сбрасывает хэш (выход из аккаунта или отзыв сессии).
func (s *Storage) UpdateRefreshTokenHash(ctx context.Context, userID uuid.UUID, hash *string) error {
	const op = "storage.postgres.UpdateRefreshTokenHash"

	query := `UPDATE users SET refresh_token_hash = $2, updated_at = now() WHERE id = $1;`

	tag, err := s.db.Exec(ctx, query, userID, hash)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	var (
		u    models.User
		role string
	)

	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &role,
		&u.RefreshTokenHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}

	u.Role = models.ParseRole(role)

	return &u, nil
}
