package services

import (
	"testing"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"
	"github.com/PatrickBizetto/delivery-api-patrick/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixture: one active client, one active restaurant (fee 3.50) with two
// products (10.00 and 5.50), plus an inactive client, an inactive restaurant
// and an unavailable product to poke the guards.
type orderFixture struct {
	svc                *OrderService
	db                 *gorm.DB
	client             entity.Client
	inactiveClient     entity.Client
	restaurant         entity.Restaurant
	inactiveRestaurant entity.Restaurant
	productA           entity.Product // 10.00
	productB           entity.Product // 5.50
	unavailable        entity.Product
	foreignProduct     entity.Product // belongs to the inactive restaurant
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	db := newTestDB(t)
	f := &orderFixture{db: db}

	f.client = entity.Client{Name: "João Silva", Email: "joao@email.com", Active: true}
	f.inactiveClient = entity.Client{Name: "Pedro Oliveira", Email: "pedro@email.com", Active: false}
	require.NoError(t, db.Create(&f.client).Error)
	require.NoError(t, db.Create(&f.inactiveClient).Error)
	// o default:true da coluna engole o false no insert
	require.NoError(t, db.Model(&f.inactiveClient).Update("active", false).Error)

	f.restaurant = entity.Restaurant{Name: "Pizza Express", Phone: "111", DeliveryFee: dec("3.50"), Active: true}
	f.inactiveRestaurant = entity.Restaurant{Name: "Closed Corner", Phone: "222", DeliveryFee: dec("2.00"), Active: false}
	require.NoError(t, db.Create(&f.restaurant).Error)
	require.NoError(t, db.Create(&f.inactiveRestaurant).Error)
	require.NoError(t, db.Model(&f.inactiveRestaurant).Update("active", false).Error)

	f.productA = entity.Product{Name: "Pizza Margherita", Price: dec("10.00"), Available: true, RestaurantID: f.restaurant.ID}
	f.productB = entity.Product{Name: "Refrigerante", Price: dec("5.50"), Available: true, RestaurantID: f.restaurant.ID}
	f.unavailable = entity.Product{Name: "Pizza Calabresa", Price: dec("42.00"), Available: false, RestaurantID: f.restaurant.ID}
	f.foreignProduct = entity.Product{Name: "X-Burger", Price: dec("25.50"), Available: true, RestaurantID: f.inactiveRestaurant.ID}
	for _, p := range []*entity.Product{&f.productA, &f.productB, &f.unavailable, &f.foreignProduct} {
		require.NoError(t, db.Create(p).Error)
	}
	require.NoError(t, db.Model(&f.unavailable).Update("available", false).Error)

	f.svc = NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewClientRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewProductRepository(db),
	)
	return f
}

func (f *orderFixture) createReq() *CreateOrderReq {
	return &CreateOrderReq{
		ClientID:        f.client.ID,
		RestaurantID:    f.restaurant.ID,
		DeliveryAddress: "Rua Nova, 987",
		CEP:             "16000-000",
		PaymentMethod:   entity.PaymentPix,
		Items: []OrderItemIn{
			{ProductID: f.productA.ID, Quantity: 2},
			{ProductID: f.productB.ID, Quantity: 1},
		},
	}
}

func (f *orderFixture) orderCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&entity.Order{}).Count(&n).Error)
	return n
}

// ----- Create -----

func TestCreateOrderComputesTotals(t *testing.T) {
	f := newOrderFixture(t)

	detail, err := f.svc.Create(f.createReq())
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPendente, detail.Status)
	assert.Equal(t, f.client.ID, detail.Client.ID)
	assert.Equal(t, "João Silva", detail.Client.Name)
	assert.Equal(t, "Pizza Express", detail.Restaurant.Name)

	// 10.00*2 + 5.50 = 25.50, + 3.50 fee = 29.00
	assert.True(t, detail.Subtotal.Equal(dec("25.50")), "subtotal = %s", detail.Subtotal)
	assert.True(t, detail.DeliveryFee.Equal(dec("3.50")))
	assert.True(t, detail.Total.Equal(dec("29.00")), "total = %s", detail.Total)

	require.Len(t, detail.Items, 2)
	assert.True(t, detail.Items[0].UnitPrice.Equal(dec("10.00")))
	assert.True(t, detail.Items[0].Subtotal.Equal(dec("20.00")))
	assert.True(t, detail.Items[1].Subtotal.Equal(dec("5.50")))
}

func TestCreateOrderSnapshotsDeliveryFee(t *testing.T) {
	f := newOrderFixture(t)

	detail, err := f.svc.Create(f.createReq())
	require.NoError(t, err)

	// raising the fee afterwards must not touch the persisted order
	f.restaurant.DeliveryFee = dec("9.99")
	require.NoError(t, f.db.Save(&f.restaurant).Error)

	got, err := f.svc.Get(detail.ID)
	require.NoError(t, err)
	assert.True(t, got.DeliveryFee.Equal(dec("3.50")))
	assert.True(t, got.Total.Equal(dec("29.00")))
}

func TestCreateOrderValidationFailures(t *testing.T) {
	f := newOrderFixture(t)

	tests := []struct {
		name    string
		mutate  func(r *CreateOrderReq)
		wantErr error
	}{
		{"client not found", func(r *CreateOrderReq) { r.ClientID = 9999 }, ErrClientNotFound},
		{"client inactive", func(r *CreateOrderReq) { r.ClientID = f.inactiveClient.ID }, ErrClientInactive},
		{"restaurant not found", func(r *CreateOrderReq) { r.RestaurantID = 9999 }, ErrRestaurantNotFound},
		{"restaurant inactive", func(r *CreateOrderReq) { r.RestaurantID = f.inactiveRestaurant.ID }, ErrRestaurantInactive},
		{"product not found", func(r *CreateOrderReq) { r.Items[0].ProductID = 9999 }, ErrProductNotFound},
		{"empty items", func(r *CreateOrderReq) { r.Items = nil }, ErrEmptyItems},
		{"bad cep", func(r *CreateOrderReq) { r.CEP = "123" }, ErrInvalidCEP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.createReq()
			tt.mutate(req)

			_, err := f.svc.Create(req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.orderCount(t), "no partial order may be persisted")
		})
	}
}

func TestCreateOrderRejectsUnavailableProduct(t *testing.T) {
	f := newOrderFixture(t)

	req := f.createReq()
	req.Items = append(req.Items, OrderItemIn{ProductID: f.unavailable.ID, Quantity: 1})

	_, err := f.svc.Create(req)
	var ue *ProductUnavailableError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, f.unavailable.ID, ue.ProductID)
	assert.Zero(t, f.orderCount(t))
}

func TestCreateOrderRejectsForeignProduct(t *testing.T) {
	f := newOrderFixture(t)

	req := f.createReq()
	req.Items[1].ProductID = f.foreignProduct.ID

	_, err := f.svc.Create(req)
	var fe *ProductNotInRestaurantError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, f.foreignProduct.ID, fe.ProductID)
	assert.Equal(t, f.restaurant.ID, fe.RestaurantID)
	assert.Zero(t, f.orderCount(t))
}

// ----- Reads -----

func TestGetOrderIsIdempotent(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.svc.Create(f.createReq())
	require.NoError(t, err)

	a, err := f.svc.Get(created.ID)
	require.NoError(t, err)
	b, err := f.svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGetOrderNotFound(t *testing.T) {
	f := newOrderFixture(t)
	_, err := f.svc.Get(42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListFilters(t *testing.T) {
	f := newOrderFixture(t)

	first, err := f.svc.Create(f.createReq())
	require.NoError(t, err)
	_, err = f.svc.Create(f.createReq())
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(first.ID, entity.StatusConfirmado)
	require.NoError(t, err)

	byClient, err := f.svc.ListByClient(f.client.ID)
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	pendente := entity.StatusPendente
	byRest, err := f.svc.ListByRestaurant(f.restaurant.ID, &pendente)
	require.NoError(t, err)
	require.Len(t, byRest, 1)
	assert.NotEqual(t, first.ID, byRest[0].ID)

	confirmado := entity.StatusConfirmado
	page, err := f.svc.List(&confirmado, nil, nil, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, first.ID, page.Items[0].ID)
}

// ----- Status transitions -----

func TestUpdateStatusHappyPath(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.svc.Create(f.createReq())
	require.NoError(t, err)

	detail, err := f.svc.UpdateStatus(created.ID, entity.StatusConfirmado)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmado, detail.Status)

	got, err := f.svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmado, got.Status)
}

func TestUpdateStatusRejectsSkippedStep(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.svc.Create(f.createReq())
	require.NoError(t, err)
	_, err = f.svc.UpdateStatus(created.ID, entity.StatusConfirmado)
	require.NoError(t, err)

	// CONFIRMADO -> ENTREGUE skips the whole kitchen flow
	_, err = f.svc.UpdateStatus(created.ID, entity.StatusEntregue)
	var te *InvalidTransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, entity.StatusConfirmado, te.From)
	assert.Equal(t, entity.StatusEntregue, te.To)

	// stored status untouched
	got, err := f.svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmado, got.Status)
}

func TestUpdateStatusGuardDetectsStaleRead(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.svc.Create(f.createReq())
	require.NoError(t, err)

	// a concurrent confirm wins the race; the stale writer gets 0 rows
	ok, err := f.svc.Orders.UpdateStatusGuard(f.db, created.ID, entity.StatusPendente, entity.StatusConfirmado)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = f.svc.Orders.UpdateStatusGuard(f.db, created.ID, entity.StatusPendente, entity.StatusCancelado)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := f.svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmado, got.Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	f := newOrderFixture(t)
	_, err := f.svc.UpdateStatus(42, entity.StatusConfirmado)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

// ----- Cancel -----

func TestCancelConfirmedOrder(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.svc.Create(f.createReq())
	require.NoError(t, err)
	_, err = f.svc.UpdateStatus(created.ID, entity.StatusConfirmado)
	require.NoError(t, err)

	detail, err := f.svc.Cancel(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelado, detail.Status)

	// cancelled orders stay around, they are not deleted
	got, err := f.svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelado, got.Status)
}

func TestCancelDeliveredOrderFails(t *testing.T) {
	f := newOrderFixture(t)

	created, err := f.svc.Create(f.createReq())
	require.NoError(t, err)
	for _, st := range []entity.OrderStatus{
		entity.StatusConfirmado, entity.StatusPreparando,
		entity.StatusSaiuParaEntrega, entity.StatusEntregue,
	} {
		_, err = f.svc.UpdateStatus(created.ID, st)
		require.NoError(t, err)
	}

	_, err = f.svc.Cancel(created.ID)
	var ce *NotCancellableError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, entity.StatusEntregue, ce.Status)

	got, err := f.svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEntregue, got.Status)
}

// ----- Quote -----

func TestQuoteMatchesCreate(t *testing.T) {
	f := newOrderFixture(t)

	quote, err := f.svc.Quote(&QuoteReq{
		RestaurantID: f.restaurant.ID,
		Items: []OrderItemIn{
			{ProductID: f.productA.ID, Quantity: 2},
			{ProductID: f.productB.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	created, err := f.svc.Create(f.createReq())
	require.NoError(t, err)

	assert.True(t, quote.Subtotal.Equal(created.Subtotal))
	assert.True(t, quote.DeliveryFee.Equal(created.DeliveryFee))
	assert.True(t, quote.Total.Equal(created.Total))
}

func TestQuotePersistsNothing(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.Quote(&QuoteReq{
		RestaurantID: f.restaurant.ID,
		Items:        []OrderItemIn{{ProductID: f.productA.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Zero(t, f.orderCount(t))
}
