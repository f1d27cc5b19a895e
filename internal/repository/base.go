package repository

import (
	"gorm.io/gorm"
)

// Repository provides the CRUD operations shared by every entity
// repository. Entity repositories embed it and add their own lookups.
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository creates a generic repository for the given model type
func NewRepository[T any](db *gorm.DB) Repository[T] {
	return Repository[T]{db: db}
}

// Create inserts a new record
func (r *Repository[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

// GetByID retrieves a record by primary key
func (r *Repository[T]) GetByID(id int64) (*T, error) {
	var entity T
	err := r.db.First(&entity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// GetAll retrieves all records with pagination
func (r *Repository[T]) GetAll(limit, offset int) ([]T, int64, error) {
	var entities []T
	var total int64

	var model T
	if err := r.db.Model(&model).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Find(&entities).Error
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

// Update saves all fields of a record
func (r *Repository[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

// UpdateFields applies a partial update to the record with the given ID
func (r *Repository[T]) UpdateFields(id int64, fields map[string]interface{}) error {
	var model T
	result := r.db.Model(&model).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a record by primary key
func (r *Repository[T]) Delete(id int64) error {
	var model T
	result := r.db.Delete(&model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total number of records
func (r *Repository[T]) Count() (int64, error) {
	var model T
	var total int64
	err := r.db.Model(&model).Count(&total).Error
	return total, err
}

// Exists reports whether a record with the given ID exists
func (r *Repository[T]) Exists(id int64) (bool, error) {
	var model T
	var count int64
	err := r.db.Model(&model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// DB exposes the underlying connection for query composition
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}
