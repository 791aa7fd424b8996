package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fxlibrary/fxlibrary/internal/transport/http/httperr"
)

type createCollectionRequest struct {
	Title string `json:"title"`
}

type addCollectionItemRequest struct {
	AssetID string `json:"assetId"`
}

func (h *Handlers) CreateCollection(w http.ResponseWriter, r *http.Request) {
	identity := identityOrNil(r)

	var in createCollectionRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	c, err := h.Service.CreateCollection(r.Context(), identity.UserID, in.Title)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCollectionView(*c, false))
}

func (h *Handlers) MyCollections(w http.ResponseWriter, r *http.Request) {
	identity := identityOrNil(r)

	collections, err := h.Service.MyCollections(r.Context(), identity.UserID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	out := make([]collectionView, 0, len(collections))
	for _, c := range collections {
		out = append(out, toCollectionView(c, false))
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) Collection(w http.ResponseWriter, r *http.Request) {
	identity := identityOrNil(r)

	collectionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	c, err := h.Service.Collection(r.Context(), identity.UserID, collectionID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCollectionView(*c, true))
}

func (h *Handlers) AddCollectionItem(w http.ResponseWriter, r *http.Request) {
	identity := identityOrNil(r)

	collectionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	var in addCollectionItemRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	assetID, err := uuid.Parse(in.AssetID)
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Service.AddToCollection(r.Context(), identity.UserID, collectionID, assetID); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) RemoveCollectionItem(w http.ResponseWriter, r *http.Request) {
	identity := identityOrNil(r)

	collectionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	assetID, err := uuid.Parse(chi.URLParam(r, "asset_id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Service.RemoveFromCollection(r.Context(), identity.UserID, collectionID, assetID); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
