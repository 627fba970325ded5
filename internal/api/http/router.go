package http

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"

	"ploy/internal/api/ws"
	"ploy/internal/config"
	"ploy/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm, cfg))
	r.POST("/join-room", JoinRoomHandler(rm))
	r.GET("/room", RoomHandler(rm))

	// --- GAME ENDPOINTS ---
	r.GET("/valid-moves", ValidMovesHandler(rm))
	r.POST("/move", MoveHandler(rm))
	r.POST("/rotate", RotateHandler(rm))
	r.POST("/end-turn", EndTurnHandler(rm))
	r.POST("/flip-board", FlipHandler(rm))
	r.POST("/restart", RestartHandler(rm))
	r.GET("/captured", CapturedHandler(rm))

	// --- CONFIG ENDPOINTS ---
	ch := NewConfigHandler(rm)
	r.GET("/config/players", ch.GetPlayersHandler)
	r.POST("/config/players", ch.UpdatePlayerHandler)

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
