package controller

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"clubdesk/config"
	"clubdesk/metrics"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/segmentio/kafka-go"
)

const maxReadBackoff = 30 * time.Second

// StreamController fans the booking-events topic out to dashboard
// websockets so the front desk sees new bookings without polling.
type StreamController struct {
	mu          sync.Mutex
	connections map[*websocket.Conn]bool
	readBackoff time.Duration
}

type bookingReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

func NewStreamController() *StreamController {
	controller := &StreamController{
		connections: make(map[*websocket.Conn]bool),
		readBackoff: time.Second,
	}
	controller.StartBookingFeed()
	return controller
}

func setupStreamController() []RouteInfo {
	e := NewStreamController()
	return []RouteInfo{
		{Method: "GET", Path: "/bookings/ws", HandlerFunc: e.WebSocketHandler},
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// allow any host origin to connect to the websocket
		return true
	},
}

// @id BookingWebSocket
// @Description Websocket for booking updates. Once connected, the client receives every submitted booking in real-time.
// @Tags booking
// @Router /bookings/ws [get]
// @Success 200 {object} service.BookingEvent
func (e *StreamController) WebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		http.NotFound(c.Writer, c.Request)
		return
	}
	defer conn.Close()

	e.mu.Lock()
	e.connections[conn] = true
	e.mu.Unlock()
	metrics.StreamConnectionsGauge.Inc()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			e.mu.Lock()
			delete(e.connections, conn)
			e.mu.Unlock()
			metrics.StreamConnectionsGauge.Dec()
			return
		}
	}
}

// StartBookingFeed consumes the booking-events topic and broadcasts each
// message to all connected dashboards. Without a broker the feed stays
// silent but the websocket endpoint still accepts connections.
func (e *StreamController) StartBookingFeed() {
	reader, err := config.GetBookingReader("dashboard-feed")
	if err != nil {
		log.Printf("booking feed disabled: %v", err)
		return
	}
	go e.consume(context.Background(), reader)
}

// consume reads booking events until the context is cancelled. Read failures
// back off exponentially up to maxReadBackoff so a lost broker doesn't spin
// the loop; a successful read resets the backoff.
func (e *StreamController) consume(ctx context.Context, reader bookingReader) {
	backoff := e.readBackoff
	for {
		message, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("failed to read booking event: %v", err)
			time.Sleep(backoff)
			if backoff < maxReadBackoff {
				backoff *= 2
			}
			continue
		}
		backoff = e.readBackoff
		e.broadcast(message.Value)
	}
}

func (e *StreamController) broadcast(payload []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for conn := range e.connections {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(e.connections, conn)
			metrics.StreamConnectionsGauge.Dec()
		}
	}
}
