package controllers

import (
	"github.com/PatrickBizetto/delivery-api-patrick/pkg/resp"
	"github.com/PatrickBizetto/delivery-api-patrick/services"

	"github.com/gin-gonic/gin"
)

type ClientController struct {
	Service *services.ClientService
}

func NewClientController(service *services.ClientService) *ClientController {
	return &ClientController{Service: service}
}

// POST /api/clientes (admin)
func (cc *ClientController) Create(c *gin.Context) {
	var req services.ClientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	client, err := cc.Service.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, client)
}

// GET /api/clientes/:id (admin or the client itself)
func (cc *ClientController) Detail(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ident := currentIdentity(c)
	if !ident.IsAdmin && (ident.ClientID == nil || *ident.ClientID != id) {
		resp.Forbidden(c, "forbidden")
		return
	}

	client, err := cc.Service.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, client)
}

// GET /api/clientes (admin) — only active ones
func (cc *ClientController) ListActive(c *gin.Context) {
	clients, err := cc.Service.ListActive()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": clients})
}

// PUT /api/clientes/:id (admin)
func (cc *ClientController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.ClientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	client, err := cc.Service.Update(id, &req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, client)
}

// PATCH /api/clientes/:id/status (admin)
func (cc *ClientController) ToggleActive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	client, err := cc.Service.ToggleActive(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, client)
}
