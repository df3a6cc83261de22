package store

import (
	"context"

	"github.com/rogue-drones/workflow/internal/models"
	"github.com/rogue-drones/workflow/internal/types"
	"gorm.io/gorm"
)

type ProjectFilter struct {
	ClientID       string
	OrganisationID string
	Status         string
	Skip           int
	Limit          int
}

type ProjectStore struct {
	*Repository[models.Project]
	clients   *Repository[models.Client]
	orgs      *Repository[models.Organisation]
	documents *Repository[models.Document]
	meetings  *Repository[models.Meeting]
}

func NewProjectStore(gdb *gorm.DB) *ProjectStore {
	return &ProjectStore{
		Repository: NewRepository[models.Project](gdb, "Project"),
		clients:    NewRepository[models.Client](gdb, "Client"),
		orgs:       NewRepository[models.Organisation](gdb, "Organisation"),
		documents:  NewRepository[models.Document](gdb, "Document"),
		meetings:   NewRepository[models.Meeting](gdb, "Meeting"),
	}
}

func (s *ProjectStore) Create(ctx context.Context, project *models.Project) error {
	if err := s.clients.Exists(ctx, project.ClientID); err != nil {
		return err
	}

	if project.OrganisationID != nil {
		if err := s.orgs.Exists(ctx, *project.OrganisationID); err != nil {
			return err
		}
	}

	return s.Repository.Create(ctx, project)
}

func (s *ProjectStore) List(ctx context.Context, f ProjectFilter) ([]models.Project, error) {
	q := ListQuery{Skip: f.Skip, Limit: f.Limit}

	if f.ClientID != "" {
		q.Scopes = append(q.Scopes, FilterEq("client_id", f.ClientID))
	}

	if f.OrganisationID != "" {
		q.Scopes = append(q.Scopes, FilterEq("organisation_id", f.OrganisationID))
	}

	if f.Status != "" {
		q.Scopes = append(q.Scopes, FilterEq("status", f.Status))
	}

	return s.Repository.List(ctx, q)
}

func (s *ProjectStore) Update(ctx context.Context, id string, updates map[string]interface{}, expectedVersion *int) (*models.Project, error) {
	if clientID, ok := updates["client_id"].(string); ok {
		if err := s.clients.Exists(ctx, clientID); err != nil {
			return nil, err
		}
	}

	if orgID, ok := updates["organisation_id"].(string); ok {
		if err := s.orgs.Exists(ctx, orgID); err != nil {
			return nil, err
		}
	}

	return s.Repository.Update(ctx, id, updates, expectedVersion)
}

// Delete is blocked while any document or meeting references the project.
func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	if err := s.Exists(ctx, id); err != nil {
		return err
	}

	documents, err := s.documents.Count(ctx, FilterEq("project_id", id))

	if err != nil {
		return err
	}

	if documents > 0 {
		return types.NewConflict("Cannot delete project: %d documents are associated with it", documents)
	}

	meetings, err := s.meetings.Count(ctx, FilterEq("project_id", id))

	if err != nil {
		return err
	}

	if meetings > 0 {
		return types.NewConflict("Cannot delete project: %d meetings are associated with it", meetings)
	}

	return s.Repository.Delete(ctx, id)
}
