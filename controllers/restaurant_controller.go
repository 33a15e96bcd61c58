package controllers

import (
	"strconv"

	"github.com/PatrickBizetto/delivery-api-patrick/pkg/resp"
	"github.com/PatrickBizetto/delivery-api-patrick/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(service *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: service}
}

// POST /api/restaurantes (admin)
func (rc *RestaurantController) Create(c *gin.Context) {
	var req services.RestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := rc.Service.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, rest)
}

// GET /api/restaurantes?categoria=&ativo=&page=&limit= (public)
func (rc *RestaurantController) List(c *gin.Context) {
	var active *bool
	if v := c.Query("ativo"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			resp.BadRequest(c, "invalid ativo")
			return
		}
		active = &b
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := rc.Service.List(c.Query("categoria"), active, page, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/restaurantes/:id (public)
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	rest, err := rc.Service.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}

// PUT /api/restaurantes/:id (admin or the owning restaurant user)
func (rc *RestaurantController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ident := currentIdentity(c)
	if !ident.IsAdmin && (ident.RestaurantID == nil || *ident.RestaurantID != id) {
		resp.Forbidden(c, "forbidden")
		return
	}

	var req services.RestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := rc.Service.Update(id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}

// PATCH /api/restaurantes/:id/status (admin)
func (rc *RestaurantController) ToggleActive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	rest, err := rc.Service.ToggleActive(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /api/restaurantes/:id/produtos?disponivel=true (public)
func (rc *RestaurantController) Products(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	availableOnly, _ := strconv.ParseBool(c.DefaultQuery("disponivel", "false"))

	products, err := rc.Service.ListProducts(id, availableOnly)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": products})
}

// GET /api/restaurantes/:id/taxa-entrega/:cep (authenticated)
func (rc *RestaurantController) DeliveryFee(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	fee, err := rc.Service.DeliveryFeeForCEP(id, c.Param("cep"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"taxaEntrega": fee})
}
