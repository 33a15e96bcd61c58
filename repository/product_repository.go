package repository

import (
	"github.com/PatrickBizetto/delivery-api-patrick/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindAll() ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *ProductRepository) FindByCategoryAvailable(category string) ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Where("category = ? AND available = ?", category, true).Find(&out).Error
	return out, err
}

func (r *ProductRepository) SearchByNameAvailable(name string) ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Where("name LIKE ? AND available = ?", "%"+name+"%", true).Find(&out).Error
	return out, err
}

func (r *ProductRepository) FindByRestaurant(restaurantID uint, availableOnly bool) ([]entity.Product, error) {
	q := r.DB.Where("restaurant_id = ?", restaurantID)
	if availableOnly {
		q = q.Where("available = ?", true)
	}
	var out []entity.Product
	err := q.Order("id").Find(&out).Error
	return out, err
}

func (r *ProductRepository) Save(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}

// InAnyOrder reports whether some order item still references the product.
func (r *ProductRepository) InAnyOrder(productID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.OrderItem{}).Where("product_id = ?", productID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
