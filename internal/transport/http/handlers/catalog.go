package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/transport/http/httperr"
)

func (h *Handlers) ListAssets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := models.ListAssetsOptions{
		Category:   models.Category(q.Get("category")),
		Difficulty: models.Difficulty(q.Get("difficulty")),
		Search:     q.Get("q"),
		Sort:       models.AssetSort(q.Get("sort")),
	}

	if raw := q.Get("page"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || v < 1 {
			httperr.WriteError(w, r, errInvalidArgument())
			return
		}
		opts.Page = int32(v)
	}

	if raw := q.Get("pageSize"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || v < 1 {
			httperr.WriteError(w, r, errInvalidArgument())
			return
		}
		opts.PageSize = int32(v)
	}

	if raw := q.Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				opts.Tags = append(opts.Tags, tag)
			}
		}
	}

	page, err := h.Service.ListAssets(r.Context(), opts)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, assetPageView{
		Items:    toAssetListItemViews(page.Items),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	})
}

func (h *Handlers) AssetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	asset, err := h.Service.AssetBySlug(r.Context(), slug)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAssetDetailView(asset))
}

func (h *Handlers) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Service.ListTags(r.Context())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTagViews(tags))
}
