package ws

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// NotifyHub pushes new-order reminders to every connected admin console.
type NotifyHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
	log        *zap.Logger
}

type OrderEvent struct {
	Type    int    `json:"type"` // 1 = new order
	OrderID uint   `json:"orderId"`
	Number  string `json:"number"`
	Amount  int64  `json:"amount"`
}

func NewNotifyHub(log *zap.Logger) *NotifyHub {
	return &NotifyHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		log:        log,
	}
}

func (h *NotifyHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(evt); err != nil {
					h.log.Warn("ws write failed", zap.Error(err))
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// NotifyNewOrder implements services.OrderNotifier. Drops the event rather
// than blocking the submitting request when the hub is backed up.
func (h *NotifyHub) NotifyNewOrder(orderID uint, number string, amount int64) {
	select {
	case h.broadcast <- OrderEvent{Type: 1, OrderID: orderID, Number: number, Amount: amount}:
	default:
		h.log.Warn("order notification dropped", zap.Uint("orderId", orderID))
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Serve upgrades an admin console connection and keeps it registered until
// the peer goes away.
func (h *NotifyHub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	h.register <- conn

	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
