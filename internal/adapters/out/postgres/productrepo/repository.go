package productrepo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"ordersapp/internal/core/domain/model/product"
	"ordersapp/internal/core/ports"
	"ordersapp/internal/pkg/errs"
)

var _ ports.ProductRepository = &Repository{}

// Repository implements ports.ProductRepository on gorm/PostgreSQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates the repository over the given connection or
// transaction handle.
func NewRepository(db *gorm.DB) (*Repository, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}

	return &Repository{db: db}, nil
}

// Add inserts a new product and returns the aggregate rebuilt with the
// store-assigned system fields.
func (r *Repository) Add(ctx context.Context, aggregate *product.Product) (*product.Product, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dto := DomainToDTO(aggregate)
	dto.ID = 0
	dto.CreatedAt = now
	dto.ModifiedAt = now
	dto.Version = 0

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return DtoToDomain(dto)
}

// Update writes the product with an optimistic-version compare-and-swap.
// The order-creation workflow depends on this: a stock decrement computed
// from a stale read fails here instead of silently clobbering a concurrent
// mutation.
func (r *Repository) Update(ctx context.Context, aggregate *product.Product) (*product.Product, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ? AND version = ?", aggregate.ID(), aggregate.Version()).
		Updates(map[string]any{
			"name":           aggregate.Name(),
			"description":    aggregate.Description(),
			"price":          aggregate.Price(),
			"stock_quantity": aggregate.StockQuantity(),
			"modified_at":    now,
			"version":        aggregate.Version() + 1,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, r.staleOrMissing(ctx, aggregate.ID())
	}

	return r.Get(ctx, aggregate.ID())
}

// Get retrieves a product by id.
func (r *Repository) Get(ctx context.Context, id int64) (*product.Product, error) {
	var dto ProductDTO
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("productId", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, err
	}

	return DtoToDomain(dto)
}

// GetBatch retrieves all products matching the given ids in one query.
// Ids with no row are simply absent from the result.
func (r *Repository) GetBatch(ctx context.Context, ids []int64) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, err
	}

	aggregates := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := DtoToDomain(dto)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}

// Delete removes a product by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ProductDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productId", strconv.FormatInt(id, 10))
	}

	return nil
}

func (r *Repository) staleOrMissing(ctx context.Context, id int64) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewConcurrentModificationError("productId", strconv.FormatInt(id, 10))
	}

	return errs.NewObjectNotFoundError("productId", strconv.FormatInt(id, 10))
}
