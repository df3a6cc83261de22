package models

import (
	"gorm.io/datatypes"
)

type Organisation struct {
	Base

	Name        string            `gorm:"uniqueIndex;not null" json:"name"`
	Website     string            `json:"website,omitempty"`
	Industry    string            `json:"industry,omitempty"`
	Location    string            `json:"location,omitempty"`
	SocialMedia datatypes.JSONMap `gorm:"type:jsonb" json:"social_media,omitempty"`
	Notes       string            `json:"notes,omitempty"`
}
