package repository

import (
	"time"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create persists the order and its items in one shot (gorm association create);
// caller is expected to run it inside a transaction.
func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) Get(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByClient(clientID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("client_id = ?", clientID).
		Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByRestaurant(restaurantID uint, status *entity.OrderStatus) ([]entity.Order, error) {
	q := r.DB.Preload("Items").Where("restaurant_id = ?", restaurantID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var out []entity.Order
	err := q.Order("id DESC").Find(&out).Error
	return out, err
}

// List is the admin view: optional status and creation date range, paginated.
func (r *OrderRepository) List(status *entity.OrderStatus, from, to *time.Time, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	q := r.DB.Model(&entity.Order{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		// intervalo inclusivo no fim do dia
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Order
	err := q.Preload("Items").Order("id DESC").
		Limit(limit).Offset((page - 1) * limit).Find(&out).Error
	return out, total, err
}

// UpdateStatusGuard flips the status only when the row still carries the expected
// one. A false return means someone else changed the order first.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
