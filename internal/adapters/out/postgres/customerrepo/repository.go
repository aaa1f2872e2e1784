package customerrepo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"ordersapp/internal/core/domain/model/customer"
	"ordersapp/internal/core/ports"
	"ordersapp/internal/pkg/errs"
)

var _ ports.CustomerRepository = &Repository{}

// Repository implements ports.CustomerRepository on gorm/PostgreSQL.
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

// Add inserts a new customer and returns the aggregate rebuilt with the
// store-assigned system fields.
func (r *Repository) Add(ctx context.Context, aggregate *customer.Customer) (*customer.Customer, error) {
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

// Update writes the customer with an optimistic-version compare-and-swap.
// A row that exists under a different version yields a concurrent
// modification error; a missing row yields not-found.
func (r *Repository) Update(ctx context.Context, aggregate *customer.Customer) (*customer.Customer, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ? AND version = ?", aggregate.ID(), aggregate.Version()).
		Updates(map[string]any{
			"first_name":  aggregate.FirstName(),
			"last_name":   aggregate.LastName(),
			"email":       aggregate.Email(),
			"address":     aggregate.Address(),
			"city":        aggregate.City(),
			"postal_code": aggregate.PostalCode(),
			"country":     aggregate.Country(),
			"phone":       aggregate.Phone(),
			"modified_at": now,
			"version":     aggregate.Version() + 1,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, r.staleOrMissing(ctx, aggregate.ID())
	}

	return r.Get(ctx, aggregate.ID())
}

// Get retrieves a customer by id.
func (r *Repository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	var dto CustomerDTO
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("customerId", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, err
	}

	return DtoToDomain(dto)
}

// Delete removes a customer by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&CustomerDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customerId", strconv.FormatInt(id, 10))
	}

	return nil
}

// staleOrMissing disambiguates a failed compare-and-swap: the row either
// moved on under a newer version or is gone entirely.
func (r *Repository) staleOrMissing(ctx context.Context, id int64) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewConcurrentModificationError("customerId", strconv.FormatInt(id, 10))
	}

	return errs.NewObjectNotFoundError("customerId", strconv.FormatInt(id, 10))
}
