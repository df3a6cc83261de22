package store

import (
	"context"

	"github.com/rogue-drones/workflow/internal/models"
	"github.com/rogue-drones/workflow/internal/types"
	"gorm.io/gorm"
)

type OrganisationFilter struct {
	Industry string
	Location string
	Skip     int
	Limit    int
}

type OrganisationStore struct {
	*Repository[models.Organisation]
	clients *Repository[models.Client]
}

func NewOrganisationStore(gdb *gorm.DB) *OrganisationStore {
	return &OrganisationStore{
		Repository: NewRepository[models.Organisation](gdb, "Organisation"),
		clients:    NewRepository[models.Client](gdb, "Client"),
	}
}

func (s *OrganisationStore) Create(ctx context.Context, org *models.Organisation) error {
	if err := s.checkNameUnique(ctx, org.Name, ""); err != nil {
		return err
	}

	return s.Repository.Create(ctx, org)
}

func (s *OrganisationStore) List(ctx context.Context, f OrganisationFilter) ([]models.Organisation, error) {
	q := ListQuery{Skip: f.Skip, Limit: f.Limit}

	if f.Industry != "" {
		q.Scopes = append(q.Scopes, FilterEq("industry", f.Industry))
	}

	if f.Location != "" {
		q.Scopes = append(q.Scopes, FilterEq("location", f.Location))
	}

	return s.Repository.List(ctx, q)
}

func (s *OrganisationStore) Update(ctx context.Context, id string, updates map[string]interface{}, expectedVersion *int) (*models.Organisation, error) {
	if name, ok := updates["name"].(string); ok {
		if err := s.checkNameUnique(ctx, name, id); err != nil {
			return nil, err
		}
	}

	return s.Repository.Update(ctx, id, updates, expectedVersion)
}

// Delete is blocked while any client references the organisation.
func (s *OrganisationStore) Delete(ctx context.Context, id string) error {
	if err := s.Exists(ctx, id); err != nil {
		return err
	}

	count, err := s.clients.Count(ctx, FilterEq("organisation_id", id))

	if err != nil {
		return err
	}

	if count > 0 {
		return types.NewConflict("Cannot delete organisation: %d clients are associated with it", count)
	}

	return s.Repository.Delete(ctx, id)
}

func (s *OrganisationStore) checkNameUnique(ctx context.Context, name, excludeID string) error {
	tx := s.db.Model(&models.Organisation{}).Where("name = ?", name)

	if excludeID != "" {
		tx = tx.Where("id != ?", excludeID)
	}

	var count int64

	if err := tx.WithContext(ctx).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return types.NewConflict("An organisation with this name already exists")
	}

	return nil
}
