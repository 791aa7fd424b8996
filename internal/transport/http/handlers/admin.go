package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/service"
	"github.com/fxlibrary/fxlibrary/internal/transport/http/httperr"
)

type assetRequest struct {
	Title         string   `json:"title"`
	Summary       string   `json:"summary"`
	DescriptionMd string   `json:"descriptionMd"`
	HowToMd       string   `json:"howToMd"`
	BreakdownMd   string   `json:"breakdownMd"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	TagIDs        []string `json:"tagIds"`
}

type assetStatusRequest struct {
	Status string `json:"status"`
}

type versionPresignRequest struct {
	Filename      string `json:"filename"`
	ContentLength int64  `json:"contentLength"`
}

type versionConfirmRequest struct {
	Key           string `json:"key"`
	VersionString string `json:"version"`
	HoudiniMin    string `json:"houdiniMin"`
	HoudiniMax    string `json:"houdiniMax"`
	Renderer      string `json:"renderer"`
	OS            string `json:"os"`
	NotesMd       string `json:"notesMd"`
	SHA256        string `json:"sha256"`
}

type previewPresignRequest struct {
	ContentType   string `json:"contentType"`
	ContentLength int64  `json:"contentLength"`
}

type previewConfirmRequest struct {
	Key       string `json:"key"`
	Type      string `json:"type"`
	SortOrder int32  `json:"sortOrder"`
}

func (in assetRequest) toInput() (service.AssetInput, error) {
	input := service.AssetInput{
		Title:         in.Title,
		Summary:       in.Summary,
		DescriptionMd: in.DescriptionMd,
		HowToMd:       in.HowToMd,
		BreakdownMd:   in.BreakdownMd,
		Category:      models.Category(in.Category),
		Difficulty:    models.Difficulty(in.Difficulty),
	}

	if in.TagIDs != nil {
		input.TagIDs = make([]uuid.UUID, 0, len(in.TagIDs))
		for _, raw := range in.TagIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return service.AssetInput{}, err
			}

			input.TagIDs = append(input.TagIDs, id)
		}
	}

	return input, nil
}

func (h *Handlers) AdminCreateAsset(w http.ResponseWriter, r *http.Request) {
	var in assetRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	input, err := in.toInput()
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	asset, err := h.Service.CreateAsset(r.Context(), input)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAssetDetailView(asset))
}

func (h *Handlers) AdminUpdateAsset(w http.ResponseWriter, r *http.Request) {
	assetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	var in assetRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	input, err := in.toInput()
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	asset, err := h.Service.UpdateAsset(r.Context(), assetID, input)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAssetDetailView(asset))
}

func (h *Handlers) AdminSetAssetStatus(w http.ResponseWriter, r *http.Request) {
	assetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	var in assetStatusRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Service.SetAssetStatus(r.Context(), assetID, models.AssetStatus(in.Status)); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) AdminAssetBySlug(w http.ResponseWriter, r *http.Request) {
	asset, err := h.Service.AdminAssetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAssetDetailView(asset))
}

func (h *Handlers) AdminVersionPresign(w http.ResponseWriter, r *http.Request) {
	assetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	var in versionPresignRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	info, err := h.Service.RequestVersionUpload(r.Context(), assetID, in.Filename, in.ContentLength)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadInfoView{
		UploadURL:    info.UploadURL,
		Key:          info.Key,
		ExpiresInSec: int64(info.Expires.Seconds()),
		Headers:      info.RequiredHeader,
	})
}

func (h *Handlers) AdminVersionConfirm(w http.ResponseWriter, r *http.Request) {
	assetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	var in versionConfirmRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	version, err := h.Service.ConfirmVersionUpload(r.Context(), assetID, service.VersionInput{
		VersionString: in.VersionString,
		HoudiniMin:    in.HoudiniMin,
		HoudiniMax:    in.HoudiniMax,
		Renderer:      models.Renderer(in.Renderer),
		OS:            models.OS(in.OS),
		NotesMd:       in.NotesMd,
		Key:           in.Key,
	}, in.SHA256)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toVersionView(*version))
}

func (h *Handlers) AdminPreviewPresign(w http.ResponseWriter, r *http.Request) {
	assetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	var in previewPresignRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	info, err := h.Service.RequestPreviewUpload(r.Context(), assetID, in.ContentType, in.ContentLength)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadInfoView{
		UploadURL:    info.UploadURL,
		Key:          info.Key,
		ExpiresInSec: int64(info.Expires.Seconds()),
		Headers:      info.RequiredHeader,
	})
}

func (h *Handlers) AdminPreviewConfirm(w http.ResponseWriter, r *http.Request) {
	assetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	var in previewConfirmRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, errInvalidArgument())
		return
	}

	preview, err := h.Service.ConfirmPreviewUpload(r.Context(), assetID, service.PreviewInput{
		Type:      models.PreviewType(in.Type),
		Key:       in.Key,
		SortOrder: in.SortOrder,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPreviewView(*preview))
}
