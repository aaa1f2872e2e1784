package http

import (
	"ordersapp/internal/core/application/usecases/queries"
	"ordersapp/internal/core/domain/model/customer"
	"ordersapp/internal/core/domain/model/order"
	"ordersapp/internal/core/domain/model/product"
)

// Converters map aggregates onto the same response shapes the read side
// produces, so a resource looks identical whether it came from a command
// result or a query. Every field is assigned explicitly.

func customerToResponse(c *customer.Customer) queries.CustomerResponse {
	return queries.CustomerResponse{
		ID:         c.ID(),
		FirstName:  c.FirstName(),
		LastName:   c.LastName(),
		Email:      c.Email(),
		Address:    c.Address(),
		City:       c.City(),
		PostalCode: c.PostalCode(),
		Country:    c.Country(),
		Phone:      c.Phone(),
		CreatedAt:  c.CreatedAt(),
		ModifiedAt: c.ModifiedAt(),
		Version:    c.Version(),
	}
}

func productToResponse(p *product.Product) queries.ProductResponse {
	return queries.ProductResponse{
		ID:            p.ID(),
		Name:          p.Name(),
		Description:   p.Description(),
		Price:         p.Price(),
		StockQuantity: p.StockQuantity(),
		CreatedAt:     p.CreatedAt(),
		ModifiedAt:    p.ModifiedAt(),
		Version:       p.Version(),
	}
}

func orderToResponse(o *order.Order) queries.OrderDetailsResponse {
	response := queries.OrderDetailsResponse{
		ID:            o.ID(),
		CustomerID:    o.Customer().ID(),
		Status:        string(o.Status()),
		PaymentMethod: string(o.PaymentMethod()),
		OrderDate:     o.OrderDate(),
		CreatedAt:     o.CreatedAt(),
		ModifiedAt:    o.ModifiedAt(),
		Version:       o.Version(),
	}

	for _, item := range o.Items() {
		response.Items = append(response.Items, queries.OrderItemResponse{
			ID:        item.ID(),
			ProductID: item.Product().ID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	// totals stay absent, not zero, when the lines are not loaded
	if totals := o.Totals(); totals != nil {
		items := totals.Items()
		price := totals.Price()
		response.TotalItems = &items
		response.TotalPrice = &price
	}

	return response
}
