package models

import (
	"time"

	"github.com/google/uuid"
)

// TokenPair — пара токенов, выдаваемая при регистрации/логине/refresh.
//
// Описание:
//   - AccessToken — короткоживущий JWT для доступа к API;
//   - RefreshToken — долгоживущий JWT, подписанный отдельным секретом;
//     клиент предъявляет его для выпуска новой пары, на сервере хранится
//     только его хэш (на записи пользователя);
//   - AccessExpiresAt — момент истечения access-токена (UTC).
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

// Identity — проверенная личность из access-токена.
// Кладётся в контекст запроса access guard-ом; хранилище при этом
// не используется (access-токены stateless по дизайну).
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}
