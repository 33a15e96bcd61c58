package entity

import (
	"gorm.io/gorm"
)

type Client struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `gorm:"uniqueIndex;not null" json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Active  bool   `gorm:"not null;default:true" json:"active"`
}

// Inactivate é o soft delete do cliente.
func (c *Client) Inactivate() {
	c.Active = false
}
