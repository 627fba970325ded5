package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	httpapi "ploy/internal/api/http"
	"ploy/internal/api/ws"
	"ploy/internal/config"
	"ploy/internal/room"
	"ploy/internal/store"

	// swagger packages
	_ "ploy/docs"
)

// @title Ploy Game Server API
// @version 1.0
// @description REST and WebSocket API for the Ploy board game (Go + Gin)
// @contact.name Backend Team
// @BasePath /
func main() {
	app := &cli.App{
		Name:  "ploy-server",
		Usage: "host Ploy games over HTTP and WebSocket",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "listen address",
				EnvVars: []string{"HTTP_ADDR"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (trace, debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(cCtx *cli.Context) error {
	cfg := config.Load()
	if addr := cCtx.String("addr"); addr != "" {
		cfg.HTTPAddr = addr
	}
	if lvl := cCtx.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	mem := store.NewMemoryStore()
	rm := room.NewManager(mem, cfg)
	hub := ws.NewHub(rm)
	rm.SetBroadcaster(hub)
	r := httpapi.NewRouter(rm, hub, cfg)

	// Optional: root redirect to swagger
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	return r.Run(cfg.HTTPAddr)
}
