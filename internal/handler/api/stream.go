package api

import (
	"net/http"
	"sync"

	"PanganPulse/internal/domain/models"
	domrepo "PanganPulse/internal/domain/repository"
	xlogger "PanganPulse/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// PriceStreamHandler pushes newly ingested price records to websocket
// subscribers. A client that cannot keep up is disconnected rather than
// allowed to block the ingest path.
type PriceStreamHandler struct {
	logger   *xlogger.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*streamClient]struct{}
}

type streamClient struct {
	conn *websocket.Conn
	send chan models.PriceRecord
}

func NewPriceStreamHandler(logger *xlogger.Logger) *PriceStreamHandler {
	return &PriceStreamHandler{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*streamClient]struct{}),
	}
}

func (h *PriceStreamHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/prices", h.Subscribe)
}

func (h *PriceStreamHandler) Subscribe(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &streamClient{
		conn: conn,
		send: make(chan models.PriceRecord, 64),
	}

	h.mu.Lock()
	h.clients[client] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	h.logger.Debug("price stream client connected", xlogger.Int("clients", n))

	go h.writePump(client)
	go h.readPump(client)
	return nil
}

// Broadcast fans a record out to all connected clients.
func (h *PriceStreamHandler) Broadcast(rec models.PriceRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		select {
		case client.send <- rec:
		default:
			// slow consumer, drop it
			delete(h.clients, client)
			close(client.send)
		}
	}
}

func (h *PriceStreamHandler) writePump(client *streamClient) {
	defer client.conn.Close()
	for rec := range client.send {
		if err := client.conn.WriteJSON(rec); err != nil {
			h.remove(client)
			return
		}
	}
}

// readPump discards inbound frames and detects disconnects.
func (h *PriceStreamHandler) readPump(client *streamClient) {
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			h.remove(client)
			return
		}
	}
}

func (h *PriceStreamHandler) remove(client *streamClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

var _ domrepo.PriceBroadcaster = (*PriceStreamHandler)(nil)
