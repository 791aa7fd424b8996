package handlers

import (
	"net/http"

	"github.com/fxlibrary/fxlibrary/internal/transport/http/httperr"
)

type trackEventRequest struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// TrackEvent принимает клиентское аналитическое событие.
// Доступен и анонимам: UserID берётся из контекста, если клиент авторизован.
func (h *Handlers) TrackEvent(w http.ResponseWriter, r *http.Request) {
	identity := identityOrNil(r)

	var in trackEventRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	event, err := h.Service.TrackEvent(r.Context(), in.Type, identity.UserID, in.Payload)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, eventView{
		ID:        event.ID,
		Type:      string(event.Type),
		CreatedAt: event.CreatedAt,
	})
}
