package controllers

import (
	"github.com/PatrickBizetto/delivery-api-patrick/pkg/resp"
	"github.com/PatrickBizetto/delivery-api-patrick/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{Service: service}
}

// ownsProduct: admin, or RESTAURANTE user of the product's restaurant.
func (pc *ProductController) ownsProduct(c *gin.Context, restaurantID uint) bool {
	ident := currentIdentity(c)
	if ident.IsAdmin {
		return true
	}
	return ident.RestaurantID != nil && *ident.RestaurantID == restaurantID
}

// POST /api/produtos (admin or owning restaurant)
func (pc *ProductController) Create(c *gin.Context) {
	var req services.ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if !pc.ownsProduct(c, req.RestaurantID) {
		resp.Forbidden(c, "forbidden")
		return
	}

	p, err := pc.Service.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, p)
}

// GET /api/produtos/:id (public)
func (pc *ProductController) Detail(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	p, err := pc.Service.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, p)
}

// GET /api/produtos?categoria=&nome= (public)
func (pc *ProductController) List(c *gin.Context) {
	if categoria := c.Query("categoria"); categoria != "" {
		products, err := pc.Service.ListByCategory(categoria)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		resp.OK(c, gin.H{"items": products})
		return
	}
	if nome := c.Query("nome"); nome != "" {
		products, err := pc.Service.SearchByName(nome)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		resp.OK(c, gin.H{"items": products})
		return
	}

	products, err := pc.Service.ListAll()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": products})
}

// PUT /api/produtos/:id (admin or owning restaurant)
func (pc *ProductController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	existing, err := pc.Service.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !pc.ownsProduct(c, existing.RestaurantID) {
		resp.Forbidden(c, "forbidden")
		return
	}

	var req services.ProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := pc.Service.Update(id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /api/produtos/:id (admin or owning restaurant)
func (pc *ProductController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	existing, err := pc.Service.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !pc.ownsProduct(c, existing.RestaurantID) {
		resp.Forbidden(c, "forbidden")
		return
	}

	if err := pc.Service.Delete(id); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.NoContent(c)
}

// PATCH /api/produtos/:id/disponibilidade (admin or owning restaurant)
func (pc *ProductController) ToggleAvailability(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	existing, err := pc.Service.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if !pc.ownsProduct(c, existing.RestaurantID) {
		resp.Forbidden(c, "forbidden")
		return
	}

	p, err := pc.Service.ToggleAvailability(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, p)
}
