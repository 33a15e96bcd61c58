package controllers

import (
	"net/http"

	"github.com/PatrickBizetto/delivery-api-patrick/pkg/resp"
	"github.com/PatrickBizetto/delivery-api-patrick/services"
	"github.com/PatrickBizetto/delivery-api-patrick/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Service.Register(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"id": user.ID, "nome": user.Name, "email": user.Email, "role": user.Role,
		"clientId": user.ClientID, "restaurantId": user.RestaurantID,
	})
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Service.Login(req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"type":  "Bearer",
		"user": gin.H{
			"id": user.ID, "nome": user.Name, "email": user.Email, "role": user.Role,
			"clientId": user.ClientID, "restaurantId": user.RestaurantID,
		},
	})
}

// GET /api/auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"id": user.ID, "nome": user.Name, "email": user.Email, "role": user.Role,
		"clientId": user.ClientID, "restaurantId": user.RestaurantID,
	})
}
