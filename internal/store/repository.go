package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rogue-drones/workflow/internal/types"
	"gorm.io/gorm"
)

const DefaultLimit = 100

// ListQuery carries offset/limit pagination plus filter scopes. Limit
// defaults to DefaultLimit when unset. Result order is insertion order
// unless Order is given.
type ListQuery struct {
	Skip   int
	Limit  int
	Order  string
	Scopes []func(*gorm.DB) *gorm.DB
}

// Repository is the generic CRUD core shared by every entity store. The
// resource name feeds NotFound details ("Client not found" etc). Entity
// stores embed it and layer uniqueness checks, parent-reference checks and
// delete guards on top.
type Repository[T any] struct {
	db       *gorm.DB
	resource string
}

func NewRepository[T any](gdb *gorm.DB, resource string) *Repository[T] {
	return &Repository[T]{db: gdb, resource: resource}
}

func (r *Repository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *Repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var record T

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, types.NewNotFound(r.resource)
	}

	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *Repository[T]) Exists(ctx context.Context, id string) error {
	var model T
	var count int64

	err := r.db.WithContext(ctx).Model(&model).Where("id = ?", id).Count(&count).Error

	if err != nil {
		return err
	}

	if count == 0 {
		return types.NewNotFound(r.resource)
	}

	return nil
}

func (r *Repository[T]) List(ctx context.Context, q ListQuery) ([]T, error) {
	limit := q.Limit

	if limit <= 0 {
		limit = DefaultLimit
	}

	tx := r.db.WithContext(ctx).Scopes(q.Scopes...).Offset(q.Skip).Limit(limit)

	if q.Order != "" {
		tx = tx.Order(q.Order)
	}

	records := make([]T, 0)

	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *Repository[T]) Count(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) (int64, error) {
	var model T
	var count int64

	err := r.db.WithContext(ctx).Model(&model).Scopes(scopes...).Count(&count).Error

	return count, err
}

// Update applies a partial update: only the supplied columns change.
// Every update bumps the version column and refreshes updated_at. When
// expectedVersion is given the update fails with a Conflict if the stored
// version differs, turning last-writer-wins into a detectable conflict;
// when omitted the old blind-overwrite behavior applies. The version
// predicate on the write itself closes the read-check-write window.
func (r *Repository[T]) Update(ctx context.Context, id string, updates map[string]interface{}, expectedVersion *int) (*T, error) {
	var model T
	var current int

	row := r.db.WithContext(ctx).Model(&model).Select("version").Where("id = ?", id).Row()

	if err := row.Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.NewNotFound(r.resource)
		}
		return nil, err
	}

	if expectedVersion != nil && *expectedVersion != current {
		return nil, types.NewConflict("%s has changed: expected version %d, found %d", r.resource, *expectedVersion, current)
	}

	applied := make(map[string]interface{}, len(updates)+1)

	for k, v := range updates {
		applied[k] = v
	}

	applied["version"] = current + 1

	result := r.db.WithContext(ctx).Model(&model).Where("id = ? AND version = ?", id, current).Updates(applied)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, types.NewConflict("%s was modified concurrently", r.resource)
	}

	return r.GetByID(ctx, id)
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	var model T

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return types.NewNotFound(r.resource)
	}

	return nil
}

// Filter scopes used by the entity stores for list queries.

func FilterEq(column string, value interface{}) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(column+" = ?", value)
	}
}

func FilterGte(column string, value interface{}) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(column+" >= ?", value)
	}
}

func FilterLte(column string, value interface{}) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(column+" <= ?", value)
	}
}
