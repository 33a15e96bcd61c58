package services

import (
	"errors"
	"strings"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"
	"github.com/PatrickBizetto/delivery-api-patrick/repository"

	"gorm.io/gorm"
)

type ClientService struct {
	Clients *repository.ClientRepository
}

func NewClientService(clients *repository.ClientRepository) *ClientService {
	return &ClientService{Clients: clients}
}

type ClientReq struct {
	Name    string `json:"nome" binding:"required,min=3"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"telefone"`
	Address string `json:"endereco"`
}

func (s *ClientService) Create(req *ClientReq) (*entity.Client, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	count, err := s.Clients.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	client := &entity.Client{
		Name:    strings.TrimSpace(req.Name),
		Email:   email,
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
		Active:  true,
	}
	if err := s.Clients.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Get(id uint) (*entity.Client, error) {
	client, err := s.Clients.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *ClientService) ListActive() ([]entity.Client, error) {
	return s.Clients.ListActive()
}

func (s *ClientService) Update(id uint, req *ClientReq) (*entity.Client, error) {
	client, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if client.Email != email {
		count, err := s.Clients.CountByEmail(email)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
	}

	client.Name = strings.TrimSpace(req.Name)
	client.Email = email
	client.Phone = strings.TrimSpace(req.Phone)
	client.Address = strings.TrimSpace(req.Address)

	if err := s.Clients.Save(client); err != nil {
		return nil, err
	}
	return client, nil
}

// ToggleActive flips the active flag; deactivation is the soft delete.
func (s *ClientService) ToggleActive(id uint) (*entity.Client, error) {
	client, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	client.Active = !client.Active
	if err := s.Clients.Save(client); err != nil {
		return nil, err
	}
	return client, nil
}
