// Package adapters provides the repository implementations for the product feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"products_api/internal/feature/product/domain/entity"
	"products_api/internal/feature/product/usecase"
)

// productGorm is the gorm-backed implementation of the ProductRepository interface.
type productGorm struct {
	db *gorm.DB
}

// Compile-time check that productGorm implements ProductRepository.
var _ usecase.ProductRepository = (*productGorm)(nil)

// NewProductGorm creates a new productGorm with the given gorm.DB connection.
func NewProductGorm(db *gorm.DB) *productGorm {
	return &productGorm{db: db}
}

// FindByID retrieves a product by primary key.
// It returns usecase.ErrProductNotFound when no row matches.
func (r *productGorm) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindAll retrieves every product ordered by id.
func (r *productGorm) FindAll(ctx context.Context) ([]entity.Product, error) {
	products := make([]entity.Product, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts the product and fills in its assigned ID.
func (r *productGorm) Create(ctx context.Context, p *entity.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Update saves the full product row.
func (r *productGorm) Update(ctx context.Context, p *entity.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete removes the product with the given id.
// It returns usecase.ErrProductNotFound when nothing was deleted.
func (r *productGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Product{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProductNotFound
	}
	return nil
}
