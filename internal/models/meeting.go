package models

import (
	"time"

	"gorm.io/datatypes"
)

type Attendee struct {
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Organisation string `json:"organisation,omitempty"`
	Role         string `json:"role,omitempty"`
}

// KeyPoint categories are free text, e.g. "requirement", "concern",
// "question".
type KeyPoint struct {
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
}

type Meeting struct {
	Base

	Title        string                        `gorm:"not null" json:"title"`
	Description  string                        `json:"description,omitempty"`
	ClientID     string                        `gorm:"size:36;not null;index" json:"client_id"`
	ProjectID    *string                       `gorm:"size:36;index" json:"project_id,omitempty"`
	StartTime    time.Time                     `gorm:"not null;index" json:"start_time"`
	EndTime      *time.Time                    `json:"end_time,omitempty"`
	Location     string                        `json:"location,omitempty"`
	Virtual      bool                          `gorm:"default:true" json:"virtual"`
	MeetingURL   string                        `json:"meeting_url,omitempty"`
	Attendees    datatypes.JSONSlice[Attendee] `gorm:"type:jsonb" json:"attendees"`
	RecordingURL string                        `json:"recording_url,omitempty"`
	Transcript   string                        `json:"transcript,omitempty"`
	KeyPoints    datatypes.JSONSlice[KeyPoint] `gorm:"type:jsonb" json:"key_points"`
	Notes        string                        `json:"notes,omitempty"`
}
