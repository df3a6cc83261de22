package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rogue-drones/workflow/internal/models"
	"github.com/rogue-drones/workflow/internal/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DocumentFilter struct {
	ClientID     string
	ProjectID    string
	DocumentType string
	Status       string
	Skip         int
	Limit        int
}

type DocumentStore struct {
	*Repository[models.Document]
	clients  *Repository[models.Client]
	projects *Repository[models.Project]
}

func NewDocumentStore(gdb *gorm.DB) *DocumentStore {
	return &DocumentStore{
		Repository: NewRepository[models.Document](gdb, "Document"),
		clients:    NewRepository[models.Client](gdb, "Client"),
		projects:   NewRepository[models.Project](gdb, "Project"),
	}
}

// Create stores the document with its first version built from content.
func (s *DocumentStore) Create(ctx context.Context, doc *models.Document, content, notes string) error {
	if err := s.clients.Exists(ctx, doc.ClientID); err != nil {
		return err
	}

	if doc.ProjectID != nil {
		if err := s.projects.Exists(ctx, *doc.ProjectID); err != nil {
			return err
		}
	}

	if notes == "" {
		notes = "Initial version"
	}

	doc.CurrentVersion = 1
	doc.Signed = false
	doc.Versions = datatypes.NewJSONSlice([]models.DocumentVersion{{
		VersionNumber: 1,
		Content:       content,
		CreatedBy:     doc.CreatedBy,
		CreatedAt:     time.Now().UTC(),
		Notes:         notes,
	}})

	return s.Repository.Create(ctx, doc)
}

func (s *DocumentStore) List(ctx context.Context, f DocumentFilter) ([]models.Document, error) {
	q := ListQuery{Skip: f.Skip, Limit: f.Limit}

	if f.ClientID != "" {
		q.Scopes = append(q.Scopes, FilterEq("client_id", f.ClientID))
	}

	if f.ProjectID != "" {
		q.Scopes = append(q.Scopes, FilterEq("project_id", f.ProjectID))
	}

	if f.DocumentType != "" {
		q.Scopes = append(q.Scopes, FilterEq("document_type", f.DocumentType))
	}

	if f.Status != "" {
		q.Scopes = append(q.Scopes, FilterEq("status", f.Status))
	}

	return s.Repository.List(ctx, q)
}

func (s *DocumentStore) Update(ctx context.Context, id string, updates map[string]interface{}, expectedVersion *int) (*models.Document, error) {
	if clientID, ok := updates["client_id"].(string); ok {
		if err := s.clients.Exists(ctx, clientID); err != nil {
			return nil, err
		}
	}

	if projectID, ok := updates["project_id"].(string); ok {
		if err := s.projects.Exists(ctx, projectID); err != nil {
			return nil, err
		}
	}

	return s.Repository.Update(ctx, id, updates, expectedVersion)
}

// AddVersion appends a content snapshot and bumps current_version by one.
// The versions list is never truncated or reordered.
func (s *DocumentStore) AddVersion(ctx context.Context, id, content, notes, authorID string) (*models.Document, error) {
	doc, err := s.GetByID(ctx, id)

	if err != nil {
		return nil, err
	}

	next := doc.CurrentVersion + 1

	if notes == "" {
		notes = fmt.Sprintf("Version %d", next)
	}

	versions := append([]models.DocumentVersion(doc.Versions), models.DocumentVersion{
		VersionNumber: next,
		Content:       content,
		CreatedBy:     authorID,
		CreatedAt:     time.Now().UTC(),
		Notes:         notes,
	})

	return s.Repository.Update(ctx, id, map[string]interface{}{
		"current_version": next,
		"versions":        datatypes.NewJSONSlice(versions),
	}, nil)
}

// Sign is a one-way transition: it requires requires_signature and fails
// once signed.
func (s *DocumentStore) Sign(ctx context.Context, id, signerID string) (*models.Document, error) {
	doc, err := s.GetByID(ctx, id)

	if err != nil {
		return nil, err
	}

	if !doc.RequiresSignature {
		return nil, types.NewConflict("This document does not require a signature")
	}

	if doc.Signed {
		return nil, types.NewConflict("This document is already signed")
	}

	now := time.Now().UTC()

	return s.Repository.Update(ctx, id, map[string]interface{}{
		"signed":    true,
		"signed_at": now,
		"signed_by": signerID,
	}, nil)
}

// Delete refuses to remove a signed document.
func (s *DocumentStore) Delete(ctx context.Context, id string) error {
	doc, err := s.GetByID(ctx, id)

	if err != nil {
		return err
	}

	if doc.Signed {
		return types.NewConflict("Cannot delete a signed document")
	}

	return s.Repository.Delete(ctx, id)
}
