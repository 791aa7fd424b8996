package models

import "github.com/google/uuid"

// TagKind — вид тега.
type TagKind string

const (
	TagKindCategory  TagKind = "CATEGORY"
	TagKindTechnique TagKind = "TECHNIQUE"
	TagKindFeature   TagKind = "FEATURE"
)

// Tag — тег каталога.
type Tag struct {
	ID   uuid.UUID
	Name string
	Kind TagKind
}
