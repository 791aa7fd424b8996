// models содержит доменные сущности fxlibrary.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role — закрытый enum ролей пользователя.
// Закрытое перечисление вместо "сырой" строки исключает обход
// авторизации из-за опечатки в сравнении ролей.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole приводит строку из БД/запроса к Role.
// Неизвестные значения схлопываются в RoleUser.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}

	return RoleUser
}

// User — модель пользователя в системе.
//
// RefreshTokenHash хранит хэш текущего refresh-токена (sha256 → base64url).
// nil означает отсутствие активной сессии: модель "одна активная сессия
// на пользователя" — выпуск новой пары неявно отзывает предыдущую.
type User struct {
	ID               uuid.UUID
	Email            string
	PasswordHash     string
	Name             string // пустая строка — имя не задано.
	Role             Role
	RefreshTokenHash *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
