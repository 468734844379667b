package realtime

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rafabene/padelmatch-backend/internal/domain/ports"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 32
)

// Event é o envelope enviado aos clientes
type Event struct {
	Topic string `json:"topic"`
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Subscription recebe os eventos de um tópico
type Subscription struct {
	topic string
	send  chan []byte
}

// C expõe o canal de eventos já serializados
func (s *Subscription) C() <-chan []byte {
	return s.send
}

// Hub distribui eventos por tópico ("group:12", "user:7").
// Assinantes lentos perdem eventos em vez de bloquear quem publica.
type Hub struct {
	mu       sync.RWMutex
	topics   map[string]map[*Subscription]struct{}
	upgrader websocket.Upgrader
	logger   ports.Logger
}

// NewHub cria o hub; allowedOrigins segue o formato de CORS_ALLOWED_ORIGINS
func NewHub(allowedOrigins string, logger ports.Logger) *Hub {
	h := &Hub{
		topics: make(map[string]map[*Subscription]struct{}),
		logger: logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

var _ ports.Broadcaster = (*Hub)(nil)

// Subscribe registra um assinante no tópico
func (h *Hub) Subscribe(topic string) *Subscription {
	sub := &Subscription{topic: topic, send: make(chan []byte, sendBufferSize)}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*Subscription]struct{})
	}
	h.topics[topic][sub] = struct{}{}
	return sub
}

// Unsubscribe remove o assinante e fecha seu canal
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.topics[sub.topic]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	close(sub.send)
	if len(subs) == 0 {
		delete(h.topics, sub.topic)
	}
}

// Subscribers retorna quantos assinantes o tópico tem
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Publish envia o evento a todos os assinantes do tópico
func (h *Hub) Publish(topic, event string, payload any) {
	data, err := json.Marshal(Event{Topic: topic, Event: event, Data: payload})
	if err != nil {
		h.logger.Error("failed to encode realtime event", "topic", topic, "event", event, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.topics[topic] {
		select {
		case sub.send <- data:
		default:
			h.logger.Warn("dropping realtime event for slow subscriber", "topic", topic, "event", event)
		}
	}
}

// ServeWS promove a conexão para WebSocket e a mantém inscrita no tópico até fechar
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, topic string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	sub := h.Subscribe(topic)
	h.logger.Debug("websocket subscribed", "topic", topic)

	done := make(chan struct{})
	go h.readPump(conn, done)
	h.writePump(conn, sub, done)

	h.Unsubscribe(sub)
	h.logger.Debug("websocket unsubscribed", "topic", topic)
	return nil
}

// readPump descarta mensagens do cliente; só importa detectar o fechamento
func (h *Hub) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn, sub *Subscription, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case msg, ok := <-sub.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// Close desconecta todos os assinantes
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for topic, subs := range h.topics {
		for sub := range subs {
			close(sub.send)
		}
		delete(h.topics, topic)
	}
}

func originChecker(allowedOrigins string) func(r *http.Request) bool {
	origins := make(map[string]struct{})
	allowAll := false
	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			allowAll = true
		}
		if o != "" {
			origins[o] = struct{}{}
		}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || allowAll {
			return true
		}
		_, ok := origins[origin]
		return ok
	}
}
