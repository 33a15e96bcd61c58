package services

import (
	"testing"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"
	"github.com/PatrickBizetto/delivery-api-patrick/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRestaurantService(t *testing.T) (*RestaurantService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewRestaurantService(repository.NewRestaurantRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func restReq(name, phone string) *RestaurantReq {
	return &RestaurantReq{
		Name: name, Category: "Italiana", Address: "Av. Principal, 100",
		Phone: phone, DeliveryFee: dec("3.50"),
	}
}

func TestRestaurantCreateAndPhoneConflict(t *testing.T) {
	svc, _ := newRestaurantService(t)

	r, err := svc.Create(restReq("Pizza Express", "1133333333"))
	require.NoError(t, err)
	assert.True(t, r.Active)
	assert.True(t, r.DeliveryFee.Equal(dec("3.50")))

	_, err = svc.Create(restReq("Outra Pizza", "1133333333"))
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestRestaurantListFilters(t *testing.T) {
	svc, _ := newRestaurantService(t)

	_, err := svc.Create(restReq("Pizza Express", "111"))
	require.NoError(t, err)
	burger, err := svc.Create(&RestaurantReq{Name: "Burger House", Category: "Fast Food",
		Address: "Rua Central, 200", Phone: "222", DeliveryFee: dec("5.00")})
	require.NoError(t, err)
	_, err = svc.ToggleActive(burger.ID)
	require.NoError(t, err)

	page, err := svc.List("", nil, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)

	active := true
	page, err = svc.List("", &active, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Pizza Express", page.Items[0].Name)

	page, err = svc.List("Fast Food", nil, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Burger House", page.Items[0].Name)
}

func TestRestaurantListProducts(t *testing.T) {
	svc, db := newRestaurantService(t)

	r, err := svc.Create(restReq("Pizza Express", "111"))
	require.NoError(t, err)

	products := []entity.Product{
		{Name: "Pizza Margherita", Price: dec("45.90"), Available: true, RestaurantID: r.ID},
		{Name: "Pizza Calabresa", Price: dec("42.00"), Available: true, RestaurantID: r.ID},
	}
	require.NoError(t, db.Create(&products).Error)
	require.NoError(t, db.Model(&products[1]).Update("available", false).Error)

	all, err := svc.ListProducts(r.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	available, err := svc.ListProducts(r.ID, true)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, "Pizza Margherita", available[0].Name)

	_, err = svc.ListProducts(9999, false)
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestDeliveryFeeForCEP(t *testing.T) {
	svc, _ := newRestaurantService(t)

	r, err := svc.Create(restReq("Pizza Express", "111"))
	require.NoError(t, err)

	fee, err := svc.DeliveryFeeForCEP(r.ID, "01310-100")
	require.NoError(t, err)
	assert.True(t, fee.Equal(dec("3.50")))

	// sem o hífen também vale
	fee, err = svc.DeliveryFeeForCEP(r.ID, "01310100")
	require.NoError(t, err)
	assert.True(t, fee.Equal(dec("3.50")))

	_, err = svc.DeliveryFeeForCEP(r.ID, "1310-100")
	assert.ErrorIs(t, err, ErrInvalidCEP)

	_, err = svc.DeliveryFeeForCEP(9999, "01310-100")
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
