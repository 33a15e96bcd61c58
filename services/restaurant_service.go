package services

import (
	"errors"
	"strings"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"
	"github.com/PatrickBizetto/delivery-api-patrick/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RestaurantService struct {
	Restaurants *repository.RestaurantRepository
	Products    *repository.ProductRepository
}

func NewRestaurantService(restaurants *repository.RestaurantRepository, products *repository.ProductRepository) *RestaurantService {
	return &RestaurantService{Restaurants: restaurants, Products: products}
}

type RestaurantReq struct {
	Name        string          `json:"nome" binding:"required,min=2"`
	Category    string          `json:"categoria" binding:"required"`
	Address     string          `json:"endereco" binding:"required"`
	Phone       string          `json:"telefone" binding:"required"`
	DeliveryFee decimal.Decimal `json:"taxaEntrega"`
}

type RestaurantPage struct {
	Items []entity.Restaurant `json:"items"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}

func (s *RestaurantService) Create(req *RestaurantReq) (*entity.Restaurant, error) {
	taken, err := s.Restaurants.ExistsByPhone(req.Phone)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrPhoneTaken
	}

	rest := &entity.Restaurant{
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.TrimSpace(req.Category),
		Address:     strings.TrimSpace(req.Address),
		Phone:       strings.TrimSpace(req.Phone),
		DeliveryFee: req.DeliveryFee,
		Active:      true,
	}
	if err := s.Restaurants.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.Restaurants.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) List(category string, active *bool, page, limit int) (*RestaurantPage, error) {
	items, total, err := s.Restaurants.List(category, active, page, limit)
	if err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return &RestaurantPage{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *RestaurantService) Update(id uint, req *RestaurantReq) (*entity.Restaurant, error) {
	rest, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if rest.Phone != req.Phone {
		taken, err := s.Restaurants.ExistsByPhone(req.Phone)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrPhoneTaken
		}
	}

	rest.Name = strings.TrimSpace(req.Name)
	rest.Category = strings.TrimSpace(req.Category)
	rest.Address = strings.TrimSpace(req.Address)
	rest.Phone = strings.TrimSpace(req.Phone)
	rest.DeliveryFee = req.DeliveryFee

	if err := s.Restaurants.Save(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) ToggleActive(id uint) (*entity.Restaurant, error) {
	rest, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	rest.Active = !rest.Active
	if err := s.Restaurants.Save(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) ListProducts(id uint, availableOnly bool) ([]entity.Product, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	return s.Products.FindByRestaurant(id, availableOnly)
}

// DeliveryFeeForCEP returns the restaurant's current fee. Distance-based
// pricing per CEP is not implemented; existing orders keep their snapshot
// either way.
func (s *RestaurantService) DeliveryFeeForCEP(id uint, cep string) (decimal.Decimal, error) {
	if !cepPattern.MatchString(cep) {
		return decimal.Zero, ErrInvalidCEP
	}
	rest, err := s.Get(id)
	if err != nil {
		return decimal.Zero, err
	}
	return rest.DeliveryFee, nil
}
