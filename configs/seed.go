package configs

import (
	"log"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin from env, once.
func SeedAdmin(email, password string) error {
	db := DB()
	if email == "" || password == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedSampleData loads a small catalog for local development.
func SeedSampleData() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	clients := []entity.Client{
		{Name: "João Silva", Email: "joao@email.com", Phone: "11999999999", Address: "Rua A, 123", Active: true},
		{Name: "Maria Santos", Email: "maria@email.com", Phone: "11888888888", Address: "Rua B, 456", Active: true},
		{Name: "Pedro Oliveira", Email: "pedro@email.com", Phone: "11777777777", Address: "Rua C, 789", Active: false},
	}
	if err := db.Create(&clients).Error; err != nil {
		return err
	}

	restaurants := []entity.Restaurant{
		{Name: "Pizza Express", Category: "Italiana", Address: "Av. Principal, 100", Phone: "1133333333",
			DeliveryFee: decimal.RequireFromString("3.50"), Active: true},
		{Name: "Burger House", Category: "Fast Food", Address: "Rua Central, 200", Phone: "1144444444",
			DeliveryFee: decimal.RequireFromString("5.00"), Active: true},
	}
	if err := db.Create(&restaurants).Error; err != nil {
		return err
	}

	products := []entity.Product{
		{Name: "Pizza Margherita", Description: "Molho, mussarela e manjericão", Category: "Pizza",
			Price: decimal.RequireFromString("45.90"), Available: true, RestaurantID: restaurants[0].ID},
		{Name: "Pizza Calabresa", Description: "Calabresa e cebola", Category: "Pizza",
			Price: decimal.RequireFromString("42.00"), Available: true, RestaurantID: restaurants[0].ID},
		{Name: "X-Burger", Description: "Hambúrguer com queijo", Category: "Lanche",
			Price: decimal.RequireFromString("25.50"), Available: true, RestaurantID: restaurants[1].ID},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Println("sample data loaded")
	return nil
}
