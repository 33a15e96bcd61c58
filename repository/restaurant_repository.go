package repository

import (
	"github.com/PatrickBizetto/delivery-api-patrick/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) ExistsByPhone(phone string) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("phone = ?", phone).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// List pagina e filtra por categoria/ativo.
func (r *RestaurantRepository) List(category string, active *bool, page, limit int) ([]entity.Restaurant, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := r.DB.Model(&entity.Restaurant{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if active != nil {
		q = q.Where("active = ?", *active)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Restaurant
	err := q.Order("id").Limit(limit).Offset((page - 1) * limit).Find(&out).Error
	return out, total, err
}

func (r *RestaurantRepository) Save(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}
