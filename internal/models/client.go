package models

type Client struct {
	Base

	Name           string  `gorm:"not null" json:"name"`
	Email          string  `gorm:"uniqueIndex;not null" json:"email"`
	Phone          string  `json:"phone,omitempty"`
	OrganisationID *string `gorm:"size:36;index" json:"organisation_id,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	InitialQuery   string  `json:"initial_query,omitempty"`
}
