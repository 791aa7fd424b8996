package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/fxlibrary/fxlibrary/internal/models"
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создаёт нового пользователя.
	// Возвращает ErrAlreadyExists при конфликте уникальности email.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByEmail находит пользователя по нормализованному email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UpdateRefreshTokenHash перезаписывает хэш текущего refresh-токена.
	// nil очищает хэш (сессия отозвана). Идемпотентна.
	UpdateRefreshTokenHash(ctx context.Context, userID uuid.UUID, hash *string) error
}
