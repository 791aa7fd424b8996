// storage определяет контракты доступа к хранилищам fxlibrary и
// сентинельные ошибки, на которые опирается слой бизнес-логики.
package storage

import "errors"

var (
	// ErrNotFound — запись не найдена (пользователь/ассет/версия/подборка).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email/slug/элемент подборки).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument — входные данные отвергнуты хранилищем
	// (недопустимый content-type/размер объекта, чужой ключ).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrObjectMissing — объект не найден в object storage при подтверждении загрузки.
	ErrObjectMissing = errors.New("object missing")
)
