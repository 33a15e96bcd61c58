package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Address     string          `json:"address"`
	Phone       string          `gorm:"index" json:"phone"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"deliveryFee"`
	Active      bool            `gorm:"not null;default:true" json:"active"`
}
