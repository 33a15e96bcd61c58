package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID   uint `gorm:"index;not null" json:"orderId"`
	ProductID uint `gorm:"not null" json:"productId"`

	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`

	// snapshot do preço do produto no momento do pedido
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"unitPrice"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
}

// ComputeSubtotal sets Subtotal = UnitPrice * Quantity.
func (i *OrderItem) ComputeSubtotal() {
	i.Subtotal = i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
