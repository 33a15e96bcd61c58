package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Formas de pagamento aceitas.
const (
	PaymentDinheiro      = "DINHEIRO"
	PaymentCartaoCredito = "CARTAO_CREDITO"
	PaymentCartaoDebito  = "CARTAO_DEBITO"
	PaymentPix           = "PIX"
)

type Order struct {
	gorm.Model
	ClientID     uint `gorm:"index;not null" json:"clientId"`
	RestaurantID uint `gorm:"index;not null" json:"restaurantId"`

	Status          OrderStatus `gorm:"type:varchar(32);not null" json:"status"`
	DeliveryAddress string      `json:"deliveryAddress"`
	CEP             string      `json:"cep"`
	PaymentMethod   string      `json:"paymentMethod"`
	Notes           string      `json:"notes"`

	// totals are always recomputed server-side, never taken from the request
	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"deliveryFee"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`

	Items []OrderItem `json:"items"`
}
