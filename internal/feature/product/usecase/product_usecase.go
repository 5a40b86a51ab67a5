// Package usecase implements the business logic for the product feature.
package usecase

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"products_api/internal/feature/product/domain/entity"
)

// ProductRepository abstracts the persistence layer for product entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProductRepository interface {
	// FindByID retrieves a product by primary key.
	// It returns ErrProductNotFound if no row matches.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// FindAll retrieves every product. An empty store yields an empty slice,
	// not an error. Ordering is whatever the store returns, stable for a
	// given store state.
	FindAll(ctx context.Context) ([]entity.Product, error)

	// Create inserts the product and fills in its assigned ID.
	Create(ctx context.Context, p *entity.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, p *entity.Product) error

	// Delete removes the product with the given id.
	// It returns ErrProductNotFound if no row matches.
	Delete(ctx context.Context, id uint) error
}

// Clock supplies the current instant for DateCreated stamping.
// Following Go convention: the consumer declares the interface; the system
// implementation lives in platform/clock.
type Clock interface {
	Now() time.Time
}

// ProductInput carries the mutable fields for create and update operations.
type ProductInput struct {
	Name  string
	Price int
}

// ProductUsecase provides CRUD business logic for product entities.
type ProductUsecase struct {
	repo    ProductRepository
	clock   Clock
	created prometheus.Counter
	deleted prometheus.Counter
}

// NewProductUsecase creates a new ProductUsecase with the given repository,
// time source and lifecycle counters.
func NewProductUsecase(repo ProductRepository, clock Clock, created, deleted prometheus.Counter) *ProductUsecase {
	return &ProductUsecase{
		repo:    repo,
		clock:   clock,
		created: created,
		deleted: deleted,
	}
}

// dateOnly truncates an instant to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Find returns the product with the given id.
func (u *ProductUsecase) Find(ctx context.Context, id uint) (*entity.Product, error) {
	return u.repo.FindByID(ctx, id)
}

// FindAll returns every product in the store.
func (u *ProductUsecase) FindAll(ctx context.Context) ([]entity.Product, error) {
	return u.repo.FindAll(ctx)
}

// Create persists a new product. DateCreated is stamped from the injected
// clock's current UTC date and is immutable afterwards.
func (u *ProductUsecase) Create(ctx context.Context, input ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        input.Name,
		Price:       input.Price,
		DateCreated: dateOnly(u.clock.Now()),
	}

	if err := u.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	u.created.Inc()
	return product, nil
}

// Update overwrites name and price of an existing product. ID and
// DateCreated are untouched.
func (u *ProductUsecase) Update(ctx context.Context, id uint, input ProductInput) (*entity.Product, error) {
	product, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = input.Name
	product.Price = input.Price

	if err := u.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// Delete permanently removes the product with the given id.
func (u *ProductUsecase) Delete(ctx context.Context, id uint) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}

	u.deleted.Inc()
	return nil
}
