package services

// Identity is the already-authenticated caller, extracted from the JWT by the
// auth middleware and passed down explicitly. The service layer never reads
// ambient request state.
type Identity struct {
	UserID       uint
	IsAdmin      bool
	ClientID     *uint
	RestaurantID *uint
}

func (id Identity) ownsClient(clientID uint) bool {
	return id.ClientID != nil && *id.ClientID == clientID
}

func (id Identity) ownsRestaurant(restaurantID uint) bool {
	return id.RestaurantID != nil && *id.RestaurantID == restaurantID
}

// CanReadOrder: admins, the ordering client, or the receiving restaurant.
func (id Identity) CanReadOrder(clientID, restaurantID uint) bool {
	return id.IsAdmin || id.ownsClient(clientID) || id.ownsRestaurant(restaurantID)
}

// CanCancelOrder: admins or the ordering client only.
func (id Identity) CanCancelOrder(clientID uint) bool {
	return id.IsAdmin || id.ownsClient(clientID)
}

// CanUpdateOrderStatus: admins or the receiving restaurant only.
func (id Identity) CanUpdateOrderStatus(restaurantID uint) bool {
	return id.IsAdmin || id.ownsRestaurant(restaurantID)
}
