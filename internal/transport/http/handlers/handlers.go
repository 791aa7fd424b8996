// handlers содержит REST-хендлеры сервиса: парсинг входных данных,
// вызов бизнес-логики и сериализацию ответов. Валидация семантики
// живёт в service; здесь только формат запроса.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fxlibrary/fxlibrary/internal/service"
)

// Handlers агрегирует зависимости (слой бизнес-логики).
type Handlers struct {
	Service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через httperr.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — локальная ошибка парсинга в терминах service.
func errInvalidArgument() error {
	return service.ErrInvalidArgument
}
