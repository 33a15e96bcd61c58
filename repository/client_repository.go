package repository

import (
	"github.com/PatrickBizetto/delivery-api-patrick/entity"

	"gorm.io/gorm"
)

type ClientRepository struct {
	DB *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) Create(c *entity.Client) error {
	return r.DB.Create(c).Error
}

func (r *ClientRepository) FindByID(id uint) (*entity.Client, error) {
	var c entity.Client
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) CountByEmail(email string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Client{}).Where("email = ?", email).Count(&cnt).Error
	return cnt, err
}

// ListActive returns only clients that were not soft-deleted by deactivation.
func (r *ClientRepository) ListActive() ([]entity.Client, error) {
	var out []entity.Client
	err := r.DB.Where("active = ?", true).Order("id").Find(&out).Error
	return out, err
}

func (r *ClientRepository) Save(c *entity.Client) error {
	return r.DB.Save(c).Error
}
