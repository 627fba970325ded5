package config

import (
	"os"
	"strconv"
)

// Config carries the server settings. Values come from the environment
// with sensible defaults; command line flags may override them.
type Config struct {
	HTTPAddr       string
	DefaultPlayers int
	DefaultRule    string
	RoomCodeLen    int
	LogLevel       string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		DefaultPlayers: getenvInt("DEFAULT_PLAYERS", 2),
		DefaultRule:    getenv("DEFAULT_RULE", "shield-pivot"),
		RoomCodeLen:    getenvInt("ROOM_CODE_LEN", 6),
		LogLevel:       getenv("LOG_LEVEL", "info"),
	}
}
