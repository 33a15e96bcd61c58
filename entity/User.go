package entity

import (
	"gorm.io/gorm"
)

// Roles aceitos no sistema.
const (
	RoleAdmin       = "ADMIN"
	RoleCliente     = "CLIENTE"
	RoleRestaurante = "RESTAURANTE"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:CLIENTE" json:"role"`

	// CLIENTE users point at their Client record, RESTAURANTE users at their restaurant.
	ClientID     *uint `json:"clientId,omitempty"`
	RestaurantID *uint `json:"restaurantId,omitempty"`
}
