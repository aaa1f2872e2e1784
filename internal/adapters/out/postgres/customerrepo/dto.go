package customerrepo

import (
	"time"

	"ordersapp/internal/core/domain/model/customer"
	"ordersapp/internal/core/domain/model/shared"
)

// CustomerDTO maps the Customer aggregate onto the customers table.
type CustomerDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	FirstName  string    `gorm:"not null"`
	LastName   string    `gorm:"not null"`
	Email      string    `gorm:"not null"`
	Address    string    `gorm:"not null"`
	City       string    `gorm:"not null"`
	PostalCode string    `gorm:"not null"`
	Country    string    `gorm:"not null"`
	Phone      string    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	ModifiedAt time.Time `gorm:"not null"`
	Version    int       `gorm:"not null"`
}

// TableName implements the gorm naming override.
func (CustomerDTO) TableName() string { return "customers" }

// DomainToDTO maps the aggregate to its row shape. System fields are owned
// by the repository and set there.
func DomainToDTO(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:         aggregate.ID(),
		FirstName:  aggregate.FirstName(),
		LastName:   aggregate.LastName(),
		Email:      aggregate.Email(),
		Address:    aggregate.Address(),
		City:       aggregate.City(),
		PostalCode: aggregate.PostalCode(),
		Country:    aggregate.Country(),
		Phone:      aggregate.Phone(),
		CreatedAt:  aggregate.CreatedAt(),
		ModifiedAt: aggregate.ModifiedAt(),
		Version:    aggregate.Version(),
	}
}

// DtoToDomain rebuilds the aggregate from a row.
func DtoToDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.RestoreCustomer(
		shared.RestoreEntity(dto.ID, dto.CreatedAt, dto.ModifiedAt, dto.Version),
		dto.FirstName, dto.LastName, dto.Email, dto.Address,
		dto.City, dto.PostalCode, dto.Country, dto.Phone,
	)
}
