// internal/services/crud.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/atelier-gestor/atelier/internal/utils"
)

// Scope narrows a list query.
type Scope func(*gorm.DB) *gorm.DB

// CrudService implements the plain CRUD every catalog table shares.
type CrudService[T any] struct {
	db            *gorm.DB
	notFoundKey   string
	duplicateKey  string
	inUseKey      string
	searchColumns []string
	defaultOrder  string
}

func (s *CrudService[T]) Get(ctx context.Context, id uint) (*T, error) {
	var obj T
	if err := s.db.WithContext(ctx).First(&obj, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(s.notFoundKey)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &obj, nil
}

func (s *CrudService[T]) List(ctx context.Context, params utils.PaginationParams, scopes ...Scope) ([]T, int64, error) {
	var (
		items []T
		total int64
	)

	query := s.db.WithContext(ctx).Model(new(T))
	query = utils.ApplySearch(query, params.Search, s.searchColumns...)
	for _, scope := range scopes {
		query = scope(query)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count records: %w", err)
	}

	if err := utils.ApplyPagination(query.Order(s.defaultOrder), params).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list records: %w", err)
	}

	return items, total, nil
}

func (s *CrudService[T]) Create(ctx context.Context, obj *T) error {
	if err := s.db.WithContext(ctx).Create(obj).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return invalid(s.duplicateKey)
		}
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// Update applies the column map and returns the fresh row.
func (s *CrudService[T]) Update(ctx context.Context, id uint, updates map[string]interface{}) (*T, error) {
	obj, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(obj).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, invalid(s.duplicateKey)
			}
			return nil, fmt.Errorf("failed to update record: %w", err)
		}
	}

	return s.Get(ctx, id)
}

func (s *CrudService[T]) Delete(ctx context.Context, id uint) error {
	obj, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(obj).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return invalid(s.inUseKey)
		}
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}
