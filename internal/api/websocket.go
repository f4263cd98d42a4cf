package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pdf-checker/backend/internal/models"
)

// WebSocket message types for the live check protocol
const (
	// Client -> Server messages
	MsgTypeCheck = "check"
	MsgTypePing  = "ping"

	// Server -> Client messages
	MsgTypeOutcome = "outcome"
	MsgTypeError   = "error"
	MsgTypePong    = "pong"
)

// WSMessage is the envelope for all WebSocket frames.
type WSMessage struct {
	Type      string          `json:"type"`
	ID        string          `json:"id,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

// CheckPayload carries the selected file's metadata for a check message.
type CheckPayload struct {
	File *models.SelectedFile `json:"file"`
}

// OutcomePayload is the reply to a check message. The same payload is
// broadcast to every other connected client so open pages stay in sync.
type OutcomePayload struct {
	Outcome  models.Outcome      `json:"outcome"`
	Details  *models.FileDetails `json:"details,omitempty"`
	RecordID string              `json:"recordId,omitempty"`
}

// WebSocketHandler manages WebSocket connections for live file checks.
type WebSocketHandler struct {
	handler  *Handler
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	conns map[*websocket.Conn]*sync.Mutex // per-connection write lock
}

// NewWebSocketHandler creates a WebSocket handler on top of the API handler.
func NewWebSocketHandler(h *Handler) *WebSocketHandler {
	return &WebSocketHandler{
		handler: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Same-origin policy is handled by the CORS middleware;
			// the embedded frontend connects from the same host.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// HandleWebSocket upgrades the connection and serves the check protocol.
func (ws *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	conn, err := ws.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	writeLock := &sync.Mutex{}
	ws.mu.Lock()
	ws.conns[conn] = writeLock
	ws.mu.Unlock()

	defer func() {
		ws.mu.Lock()
		delete(ws.conns, conn)
		ws.mu.Unlock()
		conn.Close()
	}()

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return nil // client went away
		}

		switch msg.Type {
		case MsgTypePing:
			ws.send(conn, writeLock, WSMessage{Type: MsgTypePong, ID: msg.ID, Timestamp: nowMillis()})

		case MsgTypeCheck:
			var payload CheckPayload
			if msg.Payload != nil {
				if err := json.Unmarshal(msg.Payload, &payload); err != nil {
					ws.sendError(conn, writeLock, msg.ID, "invalid check payload")
					continue
				}
			}

			resp := ws.handler.check(payload.File)
			out, err := json.Marshal(OutcomePayload(resp))
			if err != nil {
				ws.sendError(conn, writeLock, msg.ID, "failed to encode outcome")
				continue
			}

			reply := WSMessage{Type: MsgTypeOutcome, ID: msg.ID, Payload: out, Timestamp: nowMillis()}
			ws.send(conn, writeLock, reply)
			ws.broadcastExcept(conn, reply)

		default:
			ws.sendError(conn, writeLock, msg.ID, "unknown message type: "+msg.Type)
		}
	}
}

// broadcastExcept fans an outcome out to every other open connection.
func (ws *WebSocketHandler) broadcastExcept(src *websocket.Conn, msg WSMessage) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()

	for conn, lock := range ws.conns {
		if conn == src {
			continue
		}
		ws.send(conn, lock, msg)
	}
}

func (ws *WebSocketHandler) send(conn *websocket.Conn, lock *sync.Mutex, msg WSMessage) {
	lock.Lock()
	defer lock.Unlock()
	conn.WriteJSON(msg)
}

func (ws *WebSocketHandler) sendError(conn *websocket.Conn, lock *sync.Mutex, id, message string) {
	payload, _ := json.Marshal(map[string]string{"message": message})
	ws.send(conn, lock, WSMessage{Type: MsgTypeError, ID: id, Payload: payload, Timestamp: nowMillis()})
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
