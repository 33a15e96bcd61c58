package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Category    string          `json:"category"`
	Available   bool            `gorm:"not null;default:true" json:"available"`

	// dono do produto; nunca muda depois de criado
	RestaurantID uint `gorm:"index;not null" json:"restaurantId"`
}
