package services

import (
	"errors"
	"strings"
	"time"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"
	"github.com/PatrickBizetto/delivery-api-patrick/repository"
	"github.com/PatrickBizetto/delivery-api-patrick/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles register/login and JWT issuance.
type AuthService struct {
	Users       *repository.UserRepository
	Clients     *repository.ClientRepository
	Restaurants *repository.RestaurantRepository
	jwtSecret   string
	jwtTTL      time.Duration
}

func NewAuthService(users *repository.UserRepository, clients *repository.ClientRepository,
	restaurants *repository.RestaurantRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, Clients: clients, Restaurants: restaurants, jwtSecret: secret, jwtTTL: ttl}
}

type RegisterReq struct {
	Name         string `json:"nome" binding:"required,min=3"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"senha" binding:"required,min=6"`
	Role         string `json:"role" binding:"required,oneof=CLIENTE RESTAURANTE"`
	Phone        string `json:"telefone"`
	Address      string `json:"endereco"`
	RestaurantID *uint  `json:"restauranteId"`
}

// Register creates a user. CLIENTE registrations also create the linked
// Client record; RESTAURANTE registrations must name an existing restaurant.
// ADMIN users only come from seeding.
func (s *AuthService) Register(req *RegisterReq) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	count, err := s.Users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(req.Name),
		Role:     req.Role,
	}

	switch req.Role {
	case entity.RoleCliente:
		client := &entity.Client{
			Name:    user.Name,
			Email:   email,
			Phone:   strings.TrimSpace(req.Phone),
			Address: strings.TrimSpace(req.Address),
			Active:  true,
		}
		if err := s.Clients.Create(client); err != nil {
			return nil, err
		}
		user.ClientID = &client.ID

	case entity.RoleRestaurante:
		if req.RestaurantID == nil {
			return nil, ErrRestaurantRequired
		}
		if _, err := s.Restaurants.FindByID(*req.RestaurantID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRestaurantNotFound
			}
			return nil, err
		}
		user.RestaurantID = req.RestaurantID
	}

	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and returns a signed token plus the user.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Users.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
