package models

import (
	"time"

	"github.com/google/uuid"
)

// Category — категория Houdini-ассета.
type Category string

const (
	CategoryPyro      Category = "PYRO"
	CategoryFlip      Category = "FLIP"
	CategoryVellum    Category = "VELLUM"
	CategoryRBD       Category = "RBD"
	CategoryParticles Category = "PARTICLES"
	CategoryOcean     Category = "OCEAN"
	CategoryUSD       Category = "USD"
	CategoryTools     Category = "TOOLS"
	CategoryOther     Category = "OTHER"
)

// Difficulty — сложность сетапа.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

// AssetStatus — статус публикации ассета.
type AssetStatus string

const (
	StatusDraft     AssetStatus = "DRAFT"
	StatusPublished AssetStatus = "PUBLISHED"
	StatusArchived  AssetStatus = "ARCHIVED"
)

// PreviewType — тип превью.
type PreviewType string

const (
	PreviewImage PreviewType = "IMAGE"
	PreviewVideo PreviewType = "VIDEO"
	PreviewGIF   PreviewType = "GIF"
)

// Renderer — рендерер, под который собрана версия ассета.
type Renderer string

const (
	RendererMantra   Renderer = "MANTRA"
	RendererKarma    Renderer = "KARMA"
	RendererRedshift Renderer = "REDSHIFT"
	RendererOctane   Renderer = "OCTANE"
	RendererArnold   Renderer = "ARNOLD"
	RendererVRay     Renderer = "VRAY"
	RendererNone     Renderer = "NONE"
)

// OS — целевая операционная система версии.
type OS string

const (
	OSWindows OS = "WINDOWS"
	OSLinux   OS = "LINUX"
	OSMacOS   OS = "MACOS"
	OSAny     OS = "ANY"
)

// Asset — ассет каталога со связями (теги/превью/версии подтягиваются
// хранилищем по запросу детали).
type Asset struct {
	ID            uuid.UUID
	Title         string
	Slug          string
	Summary       string
	DescriptionMd string
	HowToMd       string
	BreakdownMd   string
	Category      Category
	Difficulty    Difficulty
	Status        AssetStatus
	DownloadCount int64
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Tags     []Tag
	Previews []Preview
	Versions []AssetVersion
}

// Preview — медиа-превью ассета; URL — ключ объекта в object storage.
type Preview struct {
	ID        uuid.UUID
	AssetID   uuid.UUID
	Type      PreviewType
	URL       string
	SortOrder int32
}

// AssetVersion — загружаемая версия ассета.
// FilePath — ключ объекта в бакете; выдача файла идёт только через
// короткоживущий presigned URL.
type AssetVersion struct {
	ID            uuid.UUID
	AssetID       uuid.UUID
	VersionString string
	HoudiniMin    string
	HoudiniMax    string
	Renderer      Renderer
	OS            OS
	NotesMd       string
	FilePath      string
	FileSize      int64
	SHA256        string
	CreatedAt     time.Time
}

// ListAssetsOptions — параметры выборки каталога.
// Page нумеруется с 1; PageSize ограничивается конфигом Limits.
type ListAssetsOptions struct {
	Page       int32
	PageSize   int32
	Category   Category   // пустая строка — без фильтра.
	Difficulty Difficulty // пустая строка — без фильтра.
	Tags       []string   // совпадение хотя бы по одному тегу.
	Search     string     // ILIKE по title/summary.
	Sort       AssetSort
}

// AssetSort — порядок сортировки каталога.
type AssetSort string

const (
	SortNew     AssetSort = "new"
	SortUpdated AssetSort = "updated"
	SortPopular AssetSort = "popular"
)

// AssetPage — страница каталога c общим количеством для пагинации.
type AssetPage struct {
	Items    []Asset
	Total    int64
	Page     int32
	PageSize int32
}
