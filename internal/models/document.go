package models

import (
	"time"

	"gorm.io/datatypes"
)

// DocumentVersion is an immutable snapshot. The versions list on a Document
// is append-only: entries are never mutated, truncated or reordered.
type DocumentVersion struct {
	VersionNumber int       `json:"version_number"`
	Content       string    `json:"content"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	Notes         string    `json:"notes,omitempty"`
}

type Document struct {
	Base

	Title             string                               `gorm:"not null" json:"title"`
	DocumentType      string                               `gorm:"not null" json:"document_type"`
	ClientID          string                               `gorm:"size:36;not null;index" json:"client_id"`
	ProjectID         *string                              `gorm:"size:36;index" json:"project_id,omitempty"`
	Status            string                               `gorm:"not null;default:draft" json:"status"`
	CurrentVersion    int                                  `gorm:"not null;default:1" json:"current_version"`
	Versions          datatypes.JSONSlice[DocumentVersion] `gorm:"type:jsonb" json:"versions"`
	RequiresSignature bool                                 `gorm:"default:false" json:"requires_signature"`
	Signed            bool                                 `gorm:"default:false" json:"signed"`
	SignedAt          *time.Time                           `json:"signed_at,omitempty"`
	SignedBy          *string                              `gorm:"size:36" json:"signed_by,omitempty"`
	CreatedBy         string                               `gorm:"size:36;not null" json:"created_by"`
}
