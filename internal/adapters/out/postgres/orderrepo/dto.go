package orderrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"ordersapp/internal/core/domain/model/order"
)

// OrderDTO maps the Order aggregate onto the orders table. Status and
// payment method are persisted as their string names.
type OrderDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID    int64     `gorm:"not null;index"`
	Status        string    `gorm:"not null;index"`
	PaymentMethod string    `gorm:"not null"`
	OrderDate     time.Time `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
	ModifiedAt    time.Time `gorm:"not null"`
	Version       int       `gorm:"not null"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName implements the gorm naming override.
func (OrderDTO) TableName() string { return "orders" }

// OrderItemDTO maps one order line onto the order_items table. UnitPrice is
// the snapshot captured at order time.
type OrderItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName implements the gorm naming override.
func (OrderItemDTO) TableName() string { return "order_items" }

// DomainToDTO maps the aggregate to its row shape, items included.
func DomainToDTO(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:            aggregate.ID(),
		CustomerID:    aggregate.Customer().ID(),
		Status:        string(aggregate.Status()),
		PaymentMethod: string(aggregate.PaymentMethod()),
		OrderDate:     aggregate.OrderDate(),
		CreatedAt:     aggregate.CreatedAt(),
		ModifiedAt:    aggregate.ModifiedAt(),
		Version:       aggregate.Version(),
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:        item.ID(),
			OrderID:   aggregate.ID(),
			ProductID: item.Product().ID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return dto
}
