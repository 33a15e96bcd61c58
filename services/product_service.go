package services

import (
	"errors"
	"strings"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"
	"github.com/PatrickBizetto/delivery-api-patrick/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService struct {
	Products    *repository.ProductRepository
	Restaurants *repository.RestaurantRepository
}

func NewProductService(products *repository.ProductRepository, restaurants *repository.RestaurantRepository) *ProductService {
	return &ProductService{Products: products, Restaurants: restaurants}
}

type ProductReq struct {
	Name         string          `json:"nome" binding:"required,min=2"`
	Description  string          `json:"descricao"`
	Price        decimal.Decimal `json:"preco" binding:"required"`
	Category     string          `json:"categoria"`
	RestaurantID uint            `json:"restauranteId" binding:"required"`
}

var minPrice = decimal.New(1, -2) // 0.01

func (s *ProductService) Create(req *ProductReq) (*entity.Product, error) {
	if req.Price.LessThan(minPrice) {
		return nil, ErrInvalidPrice
	}
	if _, err := s.Restaurants.FindByID(req.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	p := &entity.Product{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Price:        req.Price,
		Category:     strings.TrimSpace(req.Category),
		Available:    true,
		RestaurantID: req.RestaurantID,
	}
	if err := s.Products.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Get(id uint) (*entity.Product, error) {
	p, err := s.Products.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductService) ListAll() ([]entity.Product, error) {
	return s.Products.FindAll()
}

func (s *ProductService) ListByCategory(category string) ([]entity.Product, error) {
	return s.Products.FindByCategoryAvailable(category)
}

func (s *ProductService) SearchByName(name string) ([]entity.Product, error) {
	return s.Products.SearchByNameAvailable(name)
}

// Update never moves a product to another restaurant and never touches the
// availability flag; those have their own operations.
func (s *ProductService) Update(id uint, req *ProductReq) (*entity.Product, error) {
	if req.Price.LessThan(minPrice) {
		return nil, ErrInvalidPrice
	}
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	p.Name = strings.TrimSpace(req.Name)
	p.Description = req.Description
	p.Price = req.Price
	p.Category = strings.TrimSpace(req.Category)

	if err := s.Products.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete refuses to remove products already referenced by orders: order items
// snapshot the price but keep the product id for history.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	used, err := s.Products.InAnyOrder(id)
	if err != nil {
		return err
	}
	if used {
		return ErrProductInUse
	}
	return s.Products.Delete(id)
}

func (s *ProductService) ToggleAvailability(id uint) (*entity.Product, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	p.Available = !p.Available
	if err := s.Products.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}
