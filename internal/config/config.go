package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries the process configuration. Everything comes from the
// environment (godotenv loads .env in main).
type Config struct {
	Port string

	// SimulatedLatency is the artificial delay applied before login,
	// signup and leave submission resolve, mimicking network latency.
	SimulatedLatency time.Duration

	// EnforceRouteRoles controls whether admin-only routes are actually
	// access-controlled. Off reproduces the legacy behavior where such
	// pages were only hidden from navigation.
	EnforceRouteRoles bool
}

func Load() *Config {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		SimulatedLatency:  500 * time.Millisecond,
		EnforceRouteRoles: true,
	}

	if ms, err := strconv.Atoi(os.Getenv("SIMULATED_LATENCY_MS")); err == nil && ms >= 0 {
		cfg.SimulatedLatency = time.Duration(ms) * time.Millisecond
	}
	if v := os.Getenv("ROUTE_ROLE_ENFORCEMENT"); v == "off" || v == "false" {
		cfg.EnforceRouteRoles = false
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
