package main

// Wire types mirroring the API's JSON. Timestamps stay as strings; the UI
// only displays them.

type User struct {
	ID        string `json:"_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `json:"is_active"`
	IsAdmin   bool   `json:"is_admin"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Organisation struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Website  string `json:"website,omitempty"`
	Industry string `json:"industry,omitempty"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type Client struct {
	ID             string  `json:"_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone,omitempty"`
	OrganisationID *string `json:"organisation_id,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	InitialQuery   string  `json:"initial_query,omitempty"`
	UpdatedAt      string  `json:"updated_at"`
}

type Project struct {
	ID             string  `json:"_id"`
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	ClientID       string  `json:"client_id"`
	OrganisationID *string `json:"organisation_id,omitempty"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes,omitempty"`
}

type KeyPoint struct {
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
}

type Meeting struct {
	ID         string     `json:"_id"`
	Title      string     `json:"title"`
	ClientID   string     `json:"client_id"`
	ProjectID  *string    `json:"project_id,omitempty"`
	StartTime  string     `json:"start_time"`
	Virtual    bool       `json:"virtual"`
	Transcript string     `json:"transcript,omitempty"`
	KeyPoints  []KeyPoint `json:"key_points"`
}

type DocumentVersion struct {
	VersionNumber int    `json:"version_number"`
	Content       string `json:"content"`
	Notes         string `json:"notes,omitempty"`
}

type Document struct {
	ID                string            `json:"_id"`
	Title             string            `json:"title"`
	DocumentType      string            `json:"document_type"`
	ClientID          string            `json:"client_id"`
	ProjectID         *string           `json:"project_id,omitempty"`
	Status            string            `json:"status"`
	CurrentVersion    int               `json:"current_version"`
	Versions          []DocumentVersion `json:"versions"`
	RequiresSignature bool              `json:"requires_signature"`
	Signed            bool              `json:"signed"`
}
