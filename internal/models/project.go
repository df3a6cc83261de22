package models

import (
	"time"

	"gorm.io/datatypes"
)

// Milestone is embedded in its parent Project and has no independent
// identity or lifecycle.
type Milestone struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type Project struct {
	Base

	Title           string                         `gorm:"not null" json:"title"`
	Description     string                         `json:"description,omitempty"`
	ClientID        string                         `gorm:"size:36;not null;index" json:"client_id"`
	OrganisationID  *string                        `gorm:"size:36;index" json:"organisation_id,omitempty"`
	Status          string                         `gorm:"not null;default:assessment" json:"status"`
	Budget          *float64                       `json:"budget,omitempty"`
	StartDate       *time.Time                     `json:"start_date,omitempty"`
	EndDate         *time.Time                     `json:"end_date,omitempty"`
	Milestones      datatypes.JSONSlice[Milestone] `gorm:"type:jsonb" json:"milestones"`
	AssessmentScore *int                           `json:"assessment_score,omitempty"`
	Notes           string                         `json:"notes,omitempty"`
}
