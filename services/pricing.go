package services

import (
	"errors"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Totals is the result of pricing a cart against the current catalog.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Total       decimal.Decimal `json:"total"`
}

// pricedLine carries one resolved cart line with its price snapshot.
type pricedLine struct {
	Product   *entity.Product
	Quantity  int
	Notes     string
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// priceItems resolves every requested product and prices the cart with exact
// decimal arithmetic. Order creation and the /calcular quote share this path
// so a quote can never diverge from what the order would actually cost.
func (s *OrderService) priceItems(restaurantID uint, items []OrderItemIn) ([]pricedLine, decimal.Decimal, error) {
	lines := make([]pricedLine, 0, len(items))
	subtotal := decimal.Zero

	for _, it := range items {
		p, err := s.Products.FindByID(it.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, decimal.Zero, ErrProductNotFound
			}
			return nil, decimal.Zero, err
		}
		if !p.Available {
			return nil, decimal.Zero, &ProductUnavailableError{ProductID: p.ID, Name: p.Name}
		}
		if p.RestaurantID != restaurantID {
			return nil, decimal.Zero, &ProductNotInRestaurantError{ProductID: p.ID, RestaurantID: restaurantID}
		}

		line := pricedLine{
			Product:   p,
			Quantity:  it.Quantity,
			Notes:     it.Notes,
			UnitPrice: p.Price,
			Subtotal:  p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))),
		}
		lines = append(lines, line)
		subtotal = subtotal.Add(line.Subtotal)
	}

	return lines, subtotal, nil
}

// computeTotals prices the cart and snapshots the restaurant's current
// delivery fee. Fee changes after this point never affect the result.
func (s *OrderService) computeTotals(restaurant *entity.Restaurant, items []OrderItemIn) ([]pricedLine, Totals, error) {
	lines, subtotal, err := s.priceItems(restaurant.ID, items)
	if err != nil {
		return nil, Totals{}, err
	}
	t := Totals{
		Subtotal:    subtotal,
		DeliveryFee: restaurant.DeliveryFee,
		Total:       subtotal.Add(restaurant.DeliveryFee),
	}
	return lines, t, nil
}
