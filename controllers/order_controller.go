package controllers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"
	"github.com/PatrickBizetto/delivery-api-patrick/pkg/cache"
	"github.com/PatrickBizetto/delivery-api-patrick/pkg/resp"
	"github.com/PatrickBizetto/delivery-api-patrick/services"
	"github.com/PatrickBizetto/delivery-api-patrick/ws"

	"github.com/gin-gonic/gin"
)

const orderCacheTTL = 5 * time.Minute

type OrderController struct {
	Service *services.OrderService
	Cache   cache.Cache
	Hub     *ws.OrderFeedHub
}

func NewOrderController(service *services.OrderService, cc cache.Cache, hub *ws.OrderFeedHub) *OrderController {
	return &OrderController{Service: service, Cache: cc, Hub: hub}
}

func orderCacheKey(id uint) string {
	return fmt.Sprintf("pedido:%d", id)
}

func (oc *OrderController) invalidate(c *gin.Context, id uint) {
	if oc.Cache != nil {
		_ = oc.Cache.Del(c.Request.Context(), orderCacheKey(id))
	}
}

func (oc *OrderController) publish(eventType string, d *services.OrderDetail) {
	if oc.Hub == nil {
		return
	}
	oc.Hub.Publish(ws.OrderEvent{
		Type:         eventType,
		OrderID:      d.ID,
		RestaurantID: d.Restaurant.ID,
		Status:       d.Status.String(),
		Total:        d.Total,
		At:           time.Now(),
	})
}

// ===== Create =====

// POST /api/pedidos (CLIENTE; admins may order on behalf of any client)
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ident := currentIdentity(c)
	if !ident.IsAdmin {
		if ident.ClientID == nil {
			resp.Forbidden(c, "forbidden")
			return
		}
		// clientes só criam pedidos para si mesmos
		req.ClientID = *ident.ClientID
	}

	detail, err := oc.Service.Create(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	oc.publish("order_created", detail)
	resp.Created(c, detail)
}

// ===== Reads =====

// GET /api/pedidos/:id (admin or order owner)
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	detail, err := oc.loadDetail(c, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	ident := currentIdentity(c)
	if !ident.CanReadOrder(detail.Client.ID, detail.Restaurant.ID) {
		resp.Forbidden(c, "forbidden")
		return
	}

	resp.OK(c, detail)
}

// loadDetail goes through the read cache when one is configured.
func (oc *OrderController) loadDetail(c *gin.Context, id uint) (*services.OrderDetail, error) {
	if oc.Cache != nil {
		if raw, err := oc.Cache.Get(c.Request.Context(), orderCacheKey(id)); err == nil && raw != "" {
			var d services.OrderDetail
			if err := json.Unmarshal([]byte(raw), &d); err == nil {
				return &d, nil
			}
		}
	}

	detail, err := oc.Service.Get(id)
	if err != nil {
		return nil, err
	}

	if oc.Cache != nil {
		if raw, err := json.Marshal(detail); err == nil {
			_ = oc.Cache.Set(c.Request.Context(), orderCacheKey(id), string(raw), orderCacheTTL)
		}
	}
	return detail, nil
}

// GET /api/pedidos?status=&dataInicio=&dataFim=&page=&limit= (admin)
func (oc *OrderController) List(c *gin.Context) {
	var status *entity.OrderStatus
	if v := c.Query("status"); v != "" {
		st, err := entity.ParseOrderStatus(v)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		status = &st
	}

	var from, to *time.Time
	if v := c.Query("dataInicio"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "invalid dataInicio, expected YYYY-MM-DD")
			return
		}
		from = &t
	}
	if v := c.Query("dataFim"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "invalid dataFim, expected YYYY-MM-DD")
			return
		}
		to = &t
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := oc.Service.List(status, from, to, page, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/pedidos/cliente/:clienteId (admin or the same client)
func (oc *OrderController) ListByClient(c *gin.Context) {
	clientID, ok := idParam(c, "clienteId")
	if !ok {
		return
	}

	ident := currentIdentity(c)
	if !ident.IsAdmin && (ident.ClientID == nil || *ident.ClientID != clientID) {
		resp.Forbidden(c, "forbidden")
		return
	}

	orders, err := oc.Service.ListByClient(clientID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /api/pedidos/restaurante/:restauranteId?status= (admin or the same restaurant)
func (oc *OrderController) ListByRestaurant(c *gin.Context) {
	restaurantID, ok := idParam(c, "restauranteId")
	if !ok {
		return
	}

	ident := currentIdentity(c)
	if !ident.CanUpdateOrderStatus(restaurantID) { // same ownership rule: admin or that restaurant
		resp.Forbidden(c, "forbidden")
		return
	}

	var status *entity.OrderStatus
	if v := c.Query("status"); v != "" {
		st, err := entity.ParseOrderStatus(v)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		status = &st
	}

	orders, err := oc.Service.ListByRestaurant(restaurantID, status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// ===== Status transitions =====

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/pedidos/:id/status (admin or owning restaurant)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	next, err := entity.ParseOrderStatus(req.Status)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	current, err := oc.Service.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	ident := currentIdentity(c)
	if !ident.CanUpdateOrderStatus(current.Restaurant.ID) {
		resp.Forbidden(c, "forbidden")
		return
	}

	detail, err := oc.Service.UpdateStatus(id, next)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	oc.invalidate(c, id)
	oc.publish("status_changed", detail)
	resp.OK(c, detail)
}

// DELETE /api/pedidos/:id (admin or the ordering client) — cancel, not delete
func (oc *OrderController) Cancel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	current, err := oc.Service.Get(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	ident := currentIdentity(c)
	if !ident.CanCancelOrder(current.Client.ID) {
		resp.Forbidden(c, "forbidden")
		return
	}

	detail, err := oc.Service.Cancel(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	oc.invalidate(c, id)
	oc.publish("status_changed", detail)
	resp.NoContent(c)
}

// ===== Quote =====

// POST /api/pedidos/calcular (authenticated) — prices a cart, persists nothing
func (oc *OrderController) Calculate(c *gin.Context) {
	var req services.QuoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	totals, err := oc.Service.Quote(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"subtotalItens": totals.Subtotal,
		"taxaEntrega":   totals.DeliveryFee,
		"valorTotal":    totals.Total,
	})
}
