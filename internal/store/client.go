package store

import (
	"context"

	"github.com/rogue-drones/workflow/internal/models"
	"github.com/rogue-drones/workflow/internal/types"
	"gorm.io/gorm"
)

type ClientFilter struct {
	OrganisationID string
	Skip           int
	Limit          int
}

type ClientStore struct {
	*Repository[models.Client]
	orgs *Repository[models.Organisation]
}

func NewClientStore(gdb *gorm.DB) *ClientStore {
	return &ClientStore{
		Repository: NewRepository[models.Client](gdb, "Client"),
		orgs:       NewRepository[models.Organisation](gdb, "Organisation"),
	}
}

func (s *ClientStore) Create(ctx context.Context, client *models.Client) error {
	if err := s.checkEmailUnique(ctx, client.Email, ""); err != nil {
		return err
	}

	if client.OrganisationID != nil {
		if err := s.orgs.Exists(ctx, *client.OrganisationID); err != nil {
			return err
		}
	}

	return s.Repository.Create(ctx, client)
}

func (s *ClientStore) List(ctx context.Context, f ClientFilter) ([]models.Client, error) {
	q := ListQuery{Skip: f.Skip, Limit: f.Limit}

	if f.OrganisationID != "" {
		q.Scopes = append(q.Scopes, FilterEq("organisation_id", f.OrganisationID))
	}

	return s.Repository.List(ctx, q)
}

func (s *ClientStore) Update(ctx context.Context, id string, updates map[string]interface{}, expectedVersion *int) (*models.Client, error) {
	if email, ok := updates["email"].(string); ok {
		if err := s.checkEmailUnique(ctx, email, id); err != nil {
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

func (s *ClientStore) checkEmailUnique(ctx context.Context, email, excludeID string) error {
	tx := s.db.Model(&models.Client{}).Where("email = ?", email)

	if excludeID != "" {
		tx = tx.Where("id != ?", excludeID)
	}

	var count int64

	if err := tx.WithContext(ctx).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return types.NewConflict("A client with this email already exists")
	}

	return nil
}
