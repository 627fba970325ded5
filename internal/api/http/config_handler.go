package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ploy/internal/room"
)

// ConfigHandler serves the per-seat player configuration: display name,
// color, and the AI flag. The flag is stored for the front end; no bot
// plays behind it.
type ConfigHandler struct {
	rm *room.Manager
}

func NewConfigHandler(rm *room.Manager) *ConfigHandler {
	return &ConfigHandler{rm: rm}
}

// GetPlayersHandler returns the seat identities of a room
// @Summary Get player configuration
// @Description Seat identities: display name, color, AI flag, and captures per seat
// @Tags Config
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /config/players [get]
func (h *ConfigHandler) GetPlayersHandler(c *gin.Context) {
	roomCode := c.Query("roomCode")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode is required"})
		return
	}

	st, err := h.rm.State(roomCode)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"roomCode": roomCode,
		"players":  st.Players,
		"seats":    st.Game.Seats,
	})
}

// UpdatePlayerHandler updates the sender's seat identity
// @Summary Update player configuration
// @Description Set display name, color, or the AI flag for the sender's seat
// @Tags Config
// @Accept json
// @Produce json
// @Param request body http.ConfigurePlayerRequest true "Player configuration"
// @Success 200 {object} map[string]interface{}
// @Router /config/players [post]
func (h *ConfigHandler) UpdatePlayerHandler(c *gin.Context) {
	var req ConfigurePlayerRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := h.rm.ConfigurePlayer(req.RoomCode, req.PlayerID, req.Name, req.Color, req.AI); err != nil {
		fail(c, err)
		return
	}

	st, err := h.rm.State(req.RoomCode)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"roomCode": req.RoomCode,
		"seats":    st.Game.Seats,
	})
}
