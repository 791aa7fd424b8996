package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

const requestIDHeader = "X-Request-Id"

// RequestID гарантирует каждому запросу идентификатор в X-Request-Id:
// пришедший от клиента сохраняется, отсутствующий генерируется (hex,
// 32 символа). Id проставляется и в заголовок запроса, откуда его
// читают Logging и httperr.WriteError, и в заголовок ответа.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = newRequestID()
				r.Header.Set(requestIDHeader, id)
			}

			w.Header().Set(requestIDHeader, id)

			next.ServeHTTP(w, r)
		})
	}
}

func newRequestID() string {
	var buf [16]byte
	_, _ = rand.Read(buf[:])

	return hex.EncodeToString(buf[:])
}
