package productrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"ordersapp/internal/core/domain/model/product"
	"ordersapp/internal/core/domain/model/shared"
)

// ProductDTO maps the Product aggregate onto the products table. Price is
// stored as numeric(10,2) so monetary values survive round trips exactly.
type ProductDTO struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	Name          string          `gorm:"not null"`
	Description   string          `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	StockQuantity int             `gorm:"not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	ModifiedAt    time.Time       `gorm:"not null"`
	Version       int             `gorm:"not null"`
}

// TableName implements the gorm naming override.
func (ProductDTO) TableName() string { return "products" }

// DomainToDTO maps the aggregate to its row shape.
func DomainToDTO(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:            aggregate.ID(),
		Name:          aggregate.Name(),
		Description:   aggregate.Description(),
		Price:         aggregate.Price(),
		StockQuantity: aggregate.StockQuantity(),
		CreatedAt:     aggregate.CreatedAt(),
		ModifiedAt:    aggregate.ModifiedAt(),
		Version:       aggregate.Version(),
	}
}

// DtoToDomain rebuilds the aggregate from a row. Stock is restored as
// stored, negative values included.
func DtoToDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(
		shared.RestoreEntity(dto.ID, dto.CreatedAt, dto.ModifiedAt, dto.Version),
		dto.Name, dto.Description, dto.Price, dto.StockQuantity,
	)
}
