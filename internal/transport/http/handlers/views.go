package handlers

import (
	"time"

	"github.com/fxlibrary/fxlibrary/internal/models"
)

// Представления ответов API. Поля в camelCase — формат фронта.

type userView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type authView struct {
	User            userView  `json:"user"`
	AccessToken     string    `json:"accessToken"`
	RefreshToken    string    `json:"refreshToken"`
	AccessExpiresAt time.Time `json:"accessExpiresAt"`
}

type tokenPairView struct {
	AccessToken     string    `json:"accessToken"`
	RefreshToken    string    `json:"refreshToken"`
	AccessExpiresAt time.Time `json:"accessExpiresAt"`
}

type tagView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type previewView struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	SortOrder int32  `json:"sortOrder"`
}

type versionView struct {
	ID            string    `json:"id"`
	VersionString string    `json:"version"`
	HoudiniMin    string    `json:"houdiniMin,omitempty"`
	HoudiniMax    string    `json:"houdiniMax,omitempty"`
	Renderer      string    `json:"renderer"`
	OS            string    `json:"os"`
	NotesMd       string    `json:"notesMd,omitempty"`
	FileSize      int64     `json:"fileSize"`
	SHA256        string    `json:"sha256,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type assetListItemView struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Slug          string       `json:"slug"`
	Summary       string       `json:"summary"`
	Category      string       `json:"category"`
	Difficulty    string       `json:"difficulty"`
	DownloadCount int64        `json:"downloadCount"`
	PublishedAt   *time.Time   `json:"publishedAt,omitempty"`
	Tags          []tagView    `json:"tags"`
	Cover         *previewView `json:"cover,omitempty"`
}

type assetDetailView struct {
	assetListItemView
	DescriptionMd string        `json:"descriptionMd"`
	HowToMd       string        `json:"howToMd,omitempty"`
	BreakdownMd   string        `json:"breakdownMd,omitempty"`
	Status        string        `json:"status"`
	Previews      []previewView `json:"previews"`
	Versions      []versionView `json:"versions"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type assetPageView struct {
	Items    []assetListItemView `json:"items"`
	Total    int64               `json:"total"`
	Page     int32               `json:"page"`
	PageSize int32               `json:"pageSize"`
}

type collectionView struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	ItemCount int64               `json:"itemCount"`
	CreatedAt time.Time           `json:"createdAt"`
	Items     []assetListItemView `json:"items,omitempty"`
}

type downloadTicketView struct {
	URL          string `json:"url"`
	ExpiresInSec int64  `json:"expiresInSec"`
}

type eventView struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

type uploadInfoView struct {
	UploadURL    string            `json:"uploadUrl"`
	Key          string            `json:"key"`
	ExpiresInSec int64             `json:"expiresInSec"`
	Headers      map[string]string `json:"headers,omitempty"`
}

func toUserView(u *models.User) userView {
	return userView{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func toTagViews(tags []models.Tag) []tagView {
	out := make([]tagView, 0, len(tags))
	for _, t := range tags {
		out = append(out, tagView{
			ID:   t.ID.String(),
			Name: t.Name,
			Kind: string(t.Kind),
		})
	}

	return out
}

func toPreviewView(p models.Preview) previewView {
	return previewView{
		ID:        p.ID.String(),
		Type:      string(p.Type),
		URL:       p.URL,
		SortOrder: p.SortOrder,
	}
}

func toVersionView(v models.AssetVersion) versionView {
	return versionView{
		ID:            v.ID.String(),
		VersionString: v.VersionString,
		HoudiniMin:    v.HoudiniMin,
		HoudiniMax:    v.HoudiniMax,
		Renderer:      string(v.Renderer),
		OS:            string(v.OS),
		NotesMd:       v.NotesMd,
		FileSize:      v.FileSize,
		SHA256:        v.SHA256,
		CreatedAt:     v.CreatedAt,
	}
}

func toAssetListItemView(a models.Asset) assetListItemView {
	view := assetListItemView{
		ID:            a.ID.String(),
		Title:         a.Title,
		Slug:          a.Slug,
		Summary:       a.Summary,
		Category:      string(a.Category),
		Difficulty:    string(a.Difficulty),
		DownloadCount: a.DownloadCount,
		PublishedAt:   a.PublishedAt,
		Tags:          toTagViews(a.Tags),
	}

	if len(a.Previews) > 0 {
		cover := toPreviewView(a.Previews[0])
		view.Cover = &cover
	}

	return view
}

func toAssetListItemViews(items []models.Asset) []assetListItemView {
	out := make([]assetListItemView, 0, len(items))
	for _, a := range items {
		out = append(out, toAssetListItemView(a))
	}

	return out
}

func toAssetDetailView(a *models.Asset) assetDetailView {
	previews := make([]previewView, 0, len(a.Previews))
	for _, p := range a.Previews {
		previews = append(previews, toPreviewView(p))
	}

	versions := make([]versionView, 0, len(a.Versions))
	for _, v := range a.Versions {
		versions = append(versions, toVersionView(v))
	}

	return assetDetailView{
		assetListItemView: toAssetListItemView(*a),
		DescriptionMd:     a.DescriptionMd,
		HowToMd:           a.HowToMd,
		BreakdownMd:       a.BreakdownMd,
		Status:            string(a.Status),
		Previews:          previews,
		Versions:          versions,
		UpdatedAt:         a.UpdatedAt,
	}
}

func toCollectionView(c models.Collection, withItems bool) collectionView {
	view := collectionView{
		ID:        c.ID.String(),
		Title:     c.Title,
		ItemCount: c.ItemCount,
		CreatedAt: c.CreatedAt,
	}

	if withItems {
		view.Items = toAssetListItemViews(c.Items)
	}

	return view
}
