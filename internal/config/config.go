package config

import (
	"log"
	"os"
	"strconv"
)

type Game struct {
	DurationMinutes int
}

type Rating struct {
	BasePoints float64
	KFactor    float64
}

type Settings struct {
	Game   Game
	Rating Rating
}

// Load reads the game and rating settings from the environment, falling back
// to the defaults when a variable is missing or malformed.
func Load() *Settings {
	return &Settings{
		Game: Game{
			DurationMinutes: getEnvInt("GAME_DURATION_MINUTES", 10),
		},
		Rating: Rating{
			BasePoints: getEnvFloat("RATING_BASE_POINTS", 1400),
			KFactor:    getEnvFloat("RATING_K_FACTOR", 32),
		},
	}
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default %d", key, val, fallback)
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default %v", key, val, fallback)
		return fallback
	}
	return parsed
}
