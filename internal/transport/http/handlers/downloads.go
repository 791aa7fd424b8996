package handlers

import (
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fxlibrary/fxlibrary/internal/service"
	"github.com/fxlibrary/fxlibrary/internal/transport/http/httperr"
)

func (h *Handlers) IssueDownload(w http.ResponseWriter, r *http.Request) {
	identity := identityOrNil(r)

	assetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	versionID, err := uuid.Parse(chi.URLParam(r, "version_id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	ticket, err := h.Service.IssueDownload(r.Context(), service.DownloadRequest{
		UserID:    identity.UserID,
		AssetID:   assetID,
		VersionID: versionID,
		ClientIP:  clientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, downloadTicketView{
		URL:          ticket.URL,
		ExpiresInSec: ticket.ExpiresInSec,
	})
}

// clientIP извлекает IP клиента: X-Forwarded-For (первый адрес) имеет
// приоритет над RemoteAddr, поскольку сервис живёт за reverse proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}

		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
