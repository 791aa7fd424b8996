// service содержит бизнес-логику сервиса каталога ассетов:
// регистрацию/аутентификацию пользователей, выпуск/проверку токенов,
// каталог, подборки, выдачу файлов и аналитические события.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданные хранилища потокобезопасны.
//   - Ошибки возвращаются и далее маппятся транспортом на HTTP-коды
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/fxlibrary/fxlibrary/internal/cache"
	"github.com/fxlibrary/fxlibrary/internal/config"
	"github.com/fxlibrary/fxlibrary/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен (access/refresh) некорректен по формату/подписи
	// или не совпадает с активной сессией. Транспорт: HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrEmailTaken — e-mail уже занят другим пользователем. Транспорт: HTTP 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidEmail — e-mail имеет некорректный формат. Транспорт: HTTP 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword — пароль не удовлетворяет политикам сложности. Транспорт: HTTP 400.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmptyPassword — пароль пустой. Транспорт: HTTP 400.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrNotFound — запрошенный объект не существует или не виден
	// запрашивающему. Транспорт: HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists — конфликт уникальности (slug, элемент подборки).
	// Транспорт: HTTP 409.
	ErrAlreadyExists = errors.New("already exists")

	// ErrForbidden — операция над чужим ресурсом или без нужной роли.
	// Транспорт: HTTP 403.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidArgument — некорректные входные данные операции. Транспорт: HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUploadMissing — подтверждение загрузки для несуществующего объекта.
	// Транспорт: HTTP 409.
	ErrUploadMissing = errors.New("uploaded object missing")
)

// Service описывает бизнес-логику сервиса.
type Service struct {
	storage storage.Storage
	files   storage.FileStorage
	events  storage.EventStorage
	cfg     *config.Config
	acache  cache.AssetCache // может быть nil, если кэш не сконфигурирован
}

// New создаёт новый экземпляр Service.
func New(st storage.Storage, files storage.FileStorage, events storage.EventStorage, cfg *config.Config) *Service {
	return &Service{
		storage: st,
		files:   files,
		events:  events,
		cfg:     cfg,
	}
}

// SetAssetCache устанавливает кэш деталей ассетов (опционально).
func (s *Service) SetAssetCache(c cache.AssetCache) {
	s.acache = c
}
