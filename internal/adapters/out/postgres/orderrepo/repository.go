package orderrepo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"ordersapp/internal/adapters/out/postgres/customerrepo"
	"ordersapp/internal/adapters/out/postgres/productrepo"
	"ordersapp/internal/core/domain/model/order"
	"ordersapp/internal/core/domain/model/product"
	"ordersapp/internal/core/domain/model/shared"
	"ordersapp/internal/core/ports"
	"ordersapp/internal/pkg/errs"
)

var _ ports.OrderRepository = &Repository{}

// Repository implements ports.OrderRepository on gorm/PostgreSQL. Rebuilding
// the aggregate needs the referenced customer and the products behind each
// line, so it composes the other two repositories over the same handle.
type Repository struct {
	db        *gorm.DB
	customers *customerrepo.Repository
	products  *productrepo.Repository
}

// NewRepository creates the repository over the given connection or
// transaction handle.
func NewRepository(db *gorm.DB) (*Repository, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}

	customers, err := customerrepo.NewRepository(db)
	if err != nil {
		return nil, err
	}
	products, err := productrepo.NewRepository(db)
	if err != nil {
		return nil, err
	}

	return &Repository{db: db, customers: customers, products: products}, nil
}

// Add inserts a new order with its line items as one unit and returns the
// aggregate rebuilt with store-assigned ids.
func (r *Repository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	dto := DomainToDTO(aggregate)
	dto.ID = 0
	dto.CreatedAt = now
	dto.ModifiedAt = now
	dto.Version = 0
	for i := range dto.Items {
		dto.Items[i].ID = 0
		dto.Items[i].OrderID = 0
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return r.Get(ctx, dto.ID)
}

// Update writes the order row with an optimistic-version compare-and-swap.
// The item collection is rewritten only when it was replaced: replacement
// items carry zero ids, items loaded from the store keep theirs.
func (r *Repository) Update(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", aggregate.ID(), aggregate.Version()).
		Updates(map[string]any{
			"customer_id":    aggregate.Customer().ID(),
			"status":         string(aggregate.Status()),
			"payment_method": string(aggregate.PaymentMethod()),
			"modified_at":    now,
			"version":        aggregate.Version() + 1,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, r.staleOrMissing(ctx, aggregate.ID())
	}

	if itemsReplaced(aggregate.Items()) {
		if err := r.rewriteItems(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	return r.Get(ctx, aggregate.ID())
}

// Get retrieves an order with its customer and line items loaded.
func (r *Repository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Where("id = ?", id).
		Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("orderId", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, err
	}

	return r.rebuild(ctx, dto, true)
}

// Delete removes an order together with its line items.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("order_id = ?", id).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", strconv.FormatInt(id, 10))
	}

	return nil
}

// GetCreatedBefore retrieves CREATED orders older than the cutoff, without
// their line items.
func (r *Repository) GetCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND order_date < ?", string(order.StatusCreated), cutoff).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	aggregates := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := r.rebuild(ctx, dto, false)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}

// rebuild reassembles the aggregate from its row, the referenced customer,
// and (when withItems) the products behind each line.
func (r *Repository) rebuild(ctx context.Context, dto OrderDTO, withItems bool) (*order.Order, error) {
	orderCustomer, err := r.customers.Get(ctx, dto.CustomerID)
	if err != nil {
		return nil, err
	}

	var items []order.Item
	if withItems {
		productIDs := make([]int64, 0, len(dto.Items))
		for _, item := range dto.Items {
			productIDs = append(productIDs, item.ProductID)
		}

		foundProducts, err := r.products.GetBatch(ctx, productIDs)
		if err != nil {
			return nil, err
		}
		productsByID := make(map[int64]*product.Product, len(foundProducts))
		for _, p := range foundProducts {
			productsByID[p.ID()] = p
		}

		items = make([]order.Item, 0, len(dto.Items))
		for _, itemDTO := range dto.Items {
			p, ok := productsByID[itemDTO.ProductID]
			if !ok {
				return nil, errs.NewObjectNotFoundError("productId",
					strconv.FormatInt(itemDTO.ProductID, 10))
			}

			item, err := order.RestoreItem(itemDTO.ID, p, itemDTO.Quantity, itemDTO.UnitPrice)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}

	return order.RestoreOrder(
		shared.RestoreEntity(dto.ID, dto.CreatedAt, dto.ModifiedAt, dto.Version),
		orderCustomer,
		items,
		order.Status(dto.Status),
		order.PaymentMethod(dto.PaymentMethod),
		dto.OrderDate,
	)
}

// rewriteItems replaces the stored line set wholesale.
func (r *Repository) rewriteItems(ctx context.Context, aggregate *order.Order) error {
	if err := r.db.WithContext(ctx).Where("order_id = ?", aggregate.ID()).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	rows := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		rows = append(rows, OrderItemDTO{
			OrderID:   aggregate.ID(),
			ProductID: item.Product().ID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *Repository) staleOrMissing(ctx context.Context, id int64) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errs.NewConcurrentModificationError("orderId", strconv.FormatInt(id, 10))
	}

	return errs.NewObjectNotFoundError("orderId", strconv.FormatInt(id, 10))
}

// itemsReplaced reports whether the line set came from ReplaceItems or
// NewOrder rather than the store: fresh lines have no id yet.
func itemsReplaced(items []order.Item) bool {
	for _, item := range items {
		if item.ID() == 0 {
			return true
		}
	}

	return false
}
