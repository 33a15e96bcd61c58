package services

import (
	"errors"
	"fmt"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"
)

// Business failures surfaced to the controllers. Each one maps to a single
// HTTP status there; none of them is retried by the service layer.
var (
	ErrClientNotFound     = errors.New("client not found")
	ErrClientInactive     = errors.New("inactive client cannot place orders")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrRestaurantInactive = errors.New("restaurant is not available")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("user not found")

	ErrInvalidCEP         = errors.New("invalid CEP format")
	ErrEmptyItems         = errors.New("order must have at least one item")
	ErrInvalidPrice       = errors.New("price must be at least 0.01")
	ErrRestaurantRequired = errors.New("restauranteId is required for RESTAURANTE role")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPhoneTaken         = errors.New("phone already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// another request changed the order between our read and our write
	ErrStatusConflict = errors.New("order was modified concurrently, retry")

	ErrProductInUse = errors.New("product is referenced by orders and cannot be deleted")
)

// ProductUnavailableError names the offending product so the client knows
// which cart line to fix.
type ProductUnavailableError struct {
	ProductID uint
	Name      string
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("product unavailable: %s", e.Name)
}

// ProductNotInRestaurantError rejects items whose product belongs to a
// different restaurant than the order's.
type ProductNotInRestaurantError struct {
	ProductID    uint
	RestaurantID uint
}

func (e *ProductNotInRestaurantError) Error() string {
	return fmt.Sprintf("product %d does not belong to restaurant %d", e.ProductID, e.RestaurantID)
}

// InvalidTransitionError is returned when the requested status is not
// reachable from the current one.
type InvalidTransitionError struct {
	From entity.OrderStatus
	To   entity.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

// NotCancellableError is returned when cancellation is requested outside
// PENDENTE/CONFIRMADO.
type NotCancellableError struct {
	Status entity.OrderStatus
}

func (e *NotCancellableError) Error() string {
	return fmt.Sprintf("order cannot be cancelled in status %s", e.Status)
}
