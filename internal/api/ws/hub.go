package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"ploy/internal/shared"
)

// Hub tracks the websocket subscribers of each room and feeds their
// commands into the room manager. State updates travel the other way:
// the manager broadcasts through the hub after every accepted command.
type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*websocket.Conn]struct{}
	roomManager RoomManager
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*websocket.Conn]struct{}),
		roomManager: roomManager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	if !h.roomManager.Exists(roomCode) {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to upgrade connection")
		return
	}

	log.Info().Str("room", roomCode).Msg("websocket subscriber connected")

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		h.mu.Unlock()
		_ = conn.Close()
		log.Info().Str("room", roomCode).Msg("websocket subscriber disconnected")
	}()

	for {
		var msg shared.Message
		if err := conn.ReadJSON(&msg); err != nil {
			log.Debug().Err(err).Str("room", roomCode).Msg("websocket read ended")
			break
		}
		if err := h.dispatch(roomCode, msg); err != nil {
			h.reply(conn, gin.H{"error": err.Error(), "action": msg.Action})
		}
	}
}

// dispatch routes one client frame to the room manager. Accepted
// commands answer themselves through the manager's state broadcast.
func (h *Hub) dispatch(roomCode string, msg shared.Message) error {
	switch msg.Action {
	case shared.ActionMove:
		var cmd shared.MoveCommand
		if err := json.Unmarshal(msg.Data, &cmd); err != nil {
			return err
		}
		return h.roomManager.Move(roomCode, cmd.PlayerID, cmd.FromRow, cmd.FromCol, cmd.ToRow, cmd.ToCol)
	case shared.ActionRotate:
		var cmd shared.RotateCommand
		if err := json.Unmarshal(msg.Data, &cmd); err != nil {
			return err
		}
		return h.roomManager.Rotate(roomCode, cmd.PlayerID, cmd.Row, cmd.Col, cmd.Clockwise)
	case shared.ActionEndTurn:
		var cmd shared.EndTurnCommand
		if err := json.Unmarshal(msg.Data, &cmd); err != nil {
			return err
		}
		return h.roomManager.EndTurn(roomCode, cmd.PlayerID)
	default:
		log.Debug().Str("action", msg.Action).Msg("unknown websocket action")
		return nil
	}
}

// reply sends a frame to a single connection.
func (h *Hub) reply(conn *websocket.Conn, data interface{}) {
	if err := conn.WriteJSON(data); err != nil {
		log.Error().Err(err).Msg("failed to send reply")
	}
}

// Broadcast pushes an action frame to every subscriber of a room,
// dropping connections that fail to take the write.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Error().Err(err).Str("room", roomCode).Msg("failed to send message")
			conn.Close()
			delete(clients, conn)
		}
	}
}
