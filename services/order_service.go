package services

import (
	"errors"
	"regexp"
	"time"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"
	"github.com/PatrickBizetto/delivery-api-patrick/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Orders      *repository.OrderRepository
	Clients     *repository.ClientRepository
	Restaurants *repository.RestaurantRepository
	Products    *repository.ProductRepository
}

func NewOrderService(
	db *gorm.DB,
	orders *repository.OrderRepository,
	clients *repository.ClientRepository,
	restaurants *repository.RestaurantRepository,
	products *repository.ProductRepository,
) *OrderService {
	return &OrderService{DB: db, Orders: orders, Clients: clients, Restaurants: restaurants, Products: products}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	ProductID uint   `json:"produtoId" binding:"required"`
	Quantity  int    `json:"quantidade" binding:"required,min=1,max=50"`
	Notes     string `json:"observacoes" binding:"max=200"`
}

type CreateOrderReq struct {
	ClientID        uint          `json:"clienteId" binding:"required"`
	RestaurantID    uint          `json:"restauranteId" binding:"required"`
	DeliveryAddress string        `json:"enderecoEntrega" binding:"required,max=200"`
	CEP             string        `json:"cep" binding:"required"`
	PaymentMethod   string        `json:"formaPagamento" binding:"required,oneof=DINHEIRO CARTAO_CREDITO CARTAO_DEBITO PIX"`
	Notes           string        `json:"observacoes" binding:"max=500"`
	Items           []OrderItemIn `json:"itens" binding:"required,min=1,dive"`
}

type QuoteReq struct {
	RestaurantID uint          `json:"restauranteId" binding:"required"`
	Items        []OrderItemIn `json:"itens" binding:"required,min=1,dive"`
}

type PartyRef struct {
	ID   uint   `json:"id"`
	Name string `json:"nome"`
}

type OrderItemOut struct {
	ProductID uint            `json:"produtoId"`
	Quantity  int             `json:"quantidade"`
	Notes     string          `json:"observacoes,omitempty"`
	UnitPrice decimal.Decimal `json:"precoUnitario"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type OrderDetail struct {
	ID              uint               `json:"id"`
	Client          PartyRef           `json:"cliente"`
	Restaurant      PartyRef           `json:"restaurante"`
	CreatedAt       time.Time          `json:"dataPedido"`
	Status          entity.OrderStatus `json:"status"`
	DeliveryAddress string             `json:"enderecoEntrega"`
	CEP             string             `json:"cep"`
	PaymentMethod   string             `json:"formaPagamento"`
	Notes           string             `json:"observacoes,omitempty"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	DeliveryFee     decimal.Decimal    `json:"taxaEntrega"`
	Total           decimal.Decimal    `json:"valorTotal"`
	Items           []OrderItemOut     `json:"itens"`
}

type OrderPage struct {
	Items []OrderDetail `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

var cepPattern = regexp.MustCompile(`^\d{5}-?\d{3}$`)

// ----- Create -----

// Create validates the client, the restaurant and every cart line, prices the
// order and persists it atomically in status PENDENTE. Nothing is written when
// any step fails.
func (s *OrderService) Create(req *CreateOrderReq) (*OrderDetail, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyItems
	}
	if !cepPattern.MatchString(req.CEP) {
		return nil, ErrInvalidCEP
	}

	client, err := s.Clients.FindByID(req.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if !client.Active {
		return nil, ErrClientInactive
	}

	restaurant, err := s.Restaurants.FindByID(req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	if !restaurant.Active {
		return nil, ErrRestaurantInactive
	}

	lines, totals, err := s.computeTotals(restaurant, req.Items)
	if err != nil {
		return nil, err
	}

	order := entity.Order{
		ClientID:        client.ID,
		RestaurantID:    restaurant.ID,
		Status:          entity.StatusPendente,
		DeliveryAddress: req.DeliveryAddress,
		CEP:             req.CEP,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
		Subtotal:        totals.Subtotal,
		DeliveryFee:     totals.DeliveryFee,
		Total:           totals.Total,
	}
	for _, l := range lines {
		item := entity.OrderItem{
			ProductID: l.Product.ID,
			Quantity:  l.Quantity,
			Notes:     l.Notes,
			UnitPrice: l.UnitPrice,
		}
		item.ComputeSubtotal()
		order.Items = append(order.Items, item)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Orders.Create(tx, &order)
	})
	if err != nil {
		return nil, err
	}

	return s.toDetail(&order, client.Name, restaurant.Name), nil
}

// ----- Reads -----

func (s *OrderService) Get(id uint) (*OrderDetail, error) {
	o, err := s.Orders.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.detailWithNames(o)
}

func (s *OrderService) ListByClient(clientID uint) ([]OrderDetail, error) {
	orders, err := s.Orders.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return s.detailsWithNames(orders)
}

func (s *OrderService) ListByRestaurant(restaurantID uint, status *entity.OrderStatus) ([]OrderDetail, error) {
	orders, err := s.Orders.ListByRestaurant(restaurantID, status)
	if err != nil {
		return nil, err
	}
	return s.detailsWithNames(orders)
}

// List is the admin listing with real status/date filters.
func (s *OrderService) List(status *entity.OrderStatus, from, to *time.Time, page, limit int) (*OrderPage, error) {
	orders, total, err := s.Orders.List(status, from, to, page, limit)
	if err != nil {
		return nil, err
	}
	details, err := s.detailsWithNames(orders)
	if err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	return &OrderPage{Items: details, Total: total, Page: page, Limit: limit}, nil
}

// ----- Status transitions -----

// UpdateStatus applies one step of the lifecycle. The guarded UPDATE makes the
// read-modify-write atomic per order: when a concurrent request got there
// first, the affected-rows check fails and the caller may retry.
func (s *OrderService) UpdateStatus(id uint, next entity.OrderStatus) (*OrderDetail, error) {
	o, err := s.Orders.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := ValidateTransition(o.Status, next); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Orders.UpdateStatusGuard(tx, o.ID, o.Status, next)
		if err != nil {
			return err
		}
		if !ok {
			return ErrStatusConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.Status = next
	return s.detailWithNames(o)
}

// Cancel is a terminal status change, not a delete. Only PENDENTE and
// CONFIRMADO orders can be cancelled.
func (s *OrderService) Cancel(id uint) (*OrderDetail, error) {
	o, err := s.Orders.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := ValidateCancellation(o.Status); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Orders.UpdateStatusGuard(tx, o.ID, o.Status, entity.StatusCancelado)
		if err != nil {
			return err
		}
		if !ok {
			return ErrStatusConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.Status = entity.StatusCancelado
	return s.detailWithNames(o)
}

// ----- Quote -----

// Quote prices a cart without persisting anything (cart preview).
func (s *OrderService) Quote(req *QuoteReq) (*Totals, error) {
	restaurant, err := s.Restaurants.FindByID(req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	_, totals, err := s.computeTotals(restaurant, req.Items)
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

// ----- DTO assembly -----

func (s *OrderService) toDetail(o *entity.Order, clientName, restaurantName string) *OrderDetail {
	d := &OrderDetail{
		ID:              o.ID,
		Client:          PartyRef{ID: o.ClientID, Name: clientName},
		Restaurant:      PartyRef{ID: o.RestaurantID, Name: restaurantName},
		CreatedAt:       o.CreatedAt,
		Status:          o.Status,
		DeliveryAddress: o.DeliveryAddress,
		CEP:             o.CEP,
		PaymentMethod:   o.PaymentMethod,
		Notes:           o.Notes,
		Subtotal:        o.Subtotal,
		DeliveryFee:     o.DeliveryFee,
		Total:           o.Total,
		Items:           make([]OrderItemOut, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		d.Items = append(d.Items, OrderItemOut{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Notes:     it.Notes,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return d
}

func (s *OrderService) detailWithNames(o *entity.Order) (*OrderDetail, error) {
	var clientName, restaurantName string
	if c, err := s.Clients.FindByID(o.ClientID); err == nil {
		clientName = c.Name
	}
	if r, err := s.Restaurants.FindByID(o.RestaurantID); err == nil {
		restaurantName = r.Name
	}
	return s.toDetail(o, clientName, restaurantName), nil
}

func (s *OrderService) detailsWithNames(orders []entity.Order) ([]OrderDetail, error) {
	clientNames := map[uint]string{}
	restaurantNames := map[uint]string{}

	out := make([]OrderDetail, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		if _, ok := clientNames[o.ClientID]; !ok {
			if c, err := s.Clients.FindByID(o.ClientID); err == nil {
				clientNames[o.ClientID] = c.Name
			} else {
				clientNames[o.ClientID] = ""
			}
		}
		if _, ok := restaurantNames[o.RestaurantID]; !ok {
			if r, err := s.Restaurants.FindByID(o.RestaurantID); err == nil {
				restaurantNames[o.RestaurantID] = r.Name
			} else {
				restaurantNames[o.RestaurantID] = ""
			}
		}
		out = append(out, *s.toDetail(o, clientNames[o.ClientID], restaurantNames[o.RestaurantID]))
	}
	return out, nil
}
