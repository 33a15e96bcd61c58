package ws

import (
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"
	"github.com/PatrickBizetto/delivery-api-patrick/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
)

// OrderEvent is pushed to every subscriber of the restaurant's room whenever
// one of its orders is created or changes status.
type OrderEvent struct {
	Type         string          `json:"type"` // "order_created" | "status_changed"
	OrderID      uint            `json:"orderId"`
	RestaurantID uint            `json:"restaurantId"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	At           time.Time       `json:"at"`
}

// OrderFeedHub keeps one room per restaurant with the connections of its
// staff, and fans order events out to them.
type OrderFeedHub struct {
	rooms      map[uint]map[*websocket.Conn]bool // restaurantID -> connections
	broadcast  chan OrderEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
}

func NewOrderFeedHub() *OrderFeedHub {
	return &OrderFeedHub{
		rooms:      make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *OrderFeedHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.rooms[sub.RestaurantID] == nil {
				h.rooms[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.rooms[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.rooms[sub.RestaurantID][sub.Conn]; ok {
				delete(h.rooms[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.rooms[ev.RestaurantID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.rooms[ev.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish never blocks the request path when nobody listens.
func (h *OrderFeedHub) Publish(ev OrderEvent) {
	select {
	case h.broadcast <- ev:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/restaurantes/:id/pedidos — only the owning restaurant
// (or an admin) may subscribe to a room.
func (h *OrderFeedHub) HandleWebSocket(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid restaurant id"})
		return
	}
	restaurantID := uint(id64)

	role := utils.CurrentRole(c)
	if role != entity.RoleAdmin {
		owned := utils.CurrentRestaurantID(c)
		if owned == nil || *owned != restaurantID {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "no access"})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, RestaurantID: restaurantID}
	h.register <- sub

	go h.keepAlive(sub)
}

// keepAlive drains the connection; the feed is one-way, so anything the
// client sends is discarded until it hangs up.
func (h *OrderFeedHub) keepAlive(sub subscription) {
	defer func() { h.unregister <- sub }()

	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
