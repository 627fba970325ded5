package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ploy/internal/config"
	"ploy/internal/game"
	"ploy/internal/room"
)

// fail maps manager errors to HTTP statuses: missing rooms are 404,
// every other rejection is 400.
func fail(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, room.ErrRoomNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// @Summary Create new room
// @Description Create a room for 2 or 4 players and seat the creator at the first seat
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Room settings"
// @Success 200 {object} map[string]interface{}
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		if req.Players == 0 {
			req.Players = cfg.DefaultPlayers
		}
		if req.Rule == "" {
			req.Rule = cfg.DefaultRule
		}
		rx, err := rm.CreateRoom(req.PlayerName, req.Players, req.Rule)
		if err != nil {
			fail(c, err)
			return
		}
		st, err := rm.State(rx.Code)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"roomCode": rx.Code,
			"playerId": rx.Players[0].ID,
			"room":     st,
		})
	}
}

// @Summary Join an existing room
// @Description Take the next free seat in turn order; the game starts once the last seat is taken
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.JoinRoomRequest true "Join info"
// @Success 200 {object} map[string]interface{}
// @Router /join-room [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode and playerName required"})
			return
		}
		rx, p, err := rm.JoinRoom(req.RoomCode, req.PlayerName)
		if err != nil {
			fail(c, err)
			return
		}
		st, err := rm.State(rx.Code)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"roomCode": rx.Code,
			"playerId": p.ID,
			"seat":     p.Seat,
			"room":     st,
		})
	}
}

// @Summary Get room state
// @Description Full room state: seating, status, and the board snapshot
// @Tags Room
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /room [get]
func RoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := rm.State(c.Query("roomCode"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": st})
	}
}

// @Summary Get legal destinations for a piece
// @Description Walks the piece's facing up to its reach; empty for pieces of a waiting seat
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Param playerId query string true "Player ID"
// @Param row query int true "Row"
// @Param col query int true "Column"
// @Success 200 {object} map[string]interface{}
// @Router /valid-moves [get]
func ValidMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, errRow := strconv.Atoi(c.Query("row"))
		col, errCol := strconv.Atoi(c.Query("col"))
		if errRow != nil || errCol != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "row and col must be integers"})
			return
		}
		moves, err := rm.ValidMoves(c.Query("roomCode"), c.Query("playerId"), row, col)
		if err != nil {
			fail(c, err)
			return
		}
		if moves == nil {
			moves = []game.Coord{}
		}
		c.JSON(http.StatusOK, gin.H{"moves": moves})
	}
}

// @Summary Move a piece
// @Description Submit source and destination cells for the active seat's move
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if err := rm.Move(req.RoomCode, req.PlayerID, req.FromRow, req.FromCol, req.ToRow, req.ToCol); err != nil {
			fail(c, err)
			return
		}
		st, err := rm.State(req.RoomCode)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"ok":     true,
			"room":   st,
			"winner": st.WinnerID,
		})
	}
}

// @Summary Rotate a piece
// @Description Turn a piece one compass step clockwise or counterclockwise
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.RotateRequest true "Rotation data"
// @Success 200 {object} map[string]interface{}
// @Router /rotate [post]
func RotateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RotateRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if err := rm.Rotate(req.RoomCode, req.PlayerID, req.Row, req.Col, req.Clockwise); err != nil {
			fail(c, err)
			return
		}
		st, err := rm.State(req.RoomCode)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "room": st})
	}
}

// @Summary End the turn
// @Description Hand the turn to the next seat in order
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.TurnRequest true "Turn info"
// @Success 200 {object} map[string]interface{}
// @Router /end-turn [post]
func EndTurnHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TurnRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if err := rm.EndTurn(req.RoomCode, req.PlayerID); err != nil {
			fail(c, err)
			return
		}
		st, err := rm.State(req.RoomCode)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "turn": st.Game.Turn, "room": st})
	}
}

// @Summary Flip the board orientation
// @Description Point-reflect every piece through the center and reverse facings; consumes no turn action
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.TurnRequest true "Flip info"
// @Success 200 {object} map[string]interface{}
// @Router /flip-board [post]
func FlipHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TurnRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if err := rm.Flip(req.RoomCode, req.PlayerID); err != nil {
			fail(c, err)
			return
		}
		st, err := rm.State(req.RoomCode)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "room": st})
	}
}

// @Summary Restart the game
// @Description Rebuild the board of a full room; seats and names survive, captures and the winner do not
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.TurnRequest true "Restart info"
// @Success 200 {object} map[string]interface{}
// @Router /restart [post]
func RestartHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TurnRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if err := rm.Restart(req.RoomCode, req.PlayerID); err != nil {
			fail(c, err)
			return
		}
		st, err := rm.State(req.RoomCode)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "room": st})
	}
}

// @Summary Get captured pieces
// @Description Each seat's capture list in capture order
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /captured [get]
func CapturedHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		captured, err := rm.Captured(c.Query("roomCode"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"captured": captured})
	}
}
