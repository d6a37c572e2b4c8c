package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.temporal.io/sdk/client"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port              string
	PostgresDSN       string
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool

	KafkaBrokers []string
	KafkaTopic   string

	SimDisabled       bool
	SimSeed           int64
	SimAdvancePeriod  time.Duration
	SimTrackingPeriod time.Duration
	SimBoardPeriod    time.Duration
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              envDefault("PORT", "8080"),
		PostgresDSN:       strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		KafkaTopic:        envDefault("KAFKA_TOPIC", "order-updates"),
		SimDisabled:       isTruthy(os.Getenv("SIM_DISABLED")),
	}
	if raw := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); raw != "" {
		for _, broker := range strings.Split(raw, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
			}
		}
	}
	if raw := strings.TrimSpace(os.Getenv("SIM_SEED")); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("SIM_SEED must be an integer")
		}
		cfg.SimSeed = seed
	}
	var err error
	if cfg.SimAdvancePeriod, err = envDuration("SIM_ADVANCE_PERIOD"); err != nil {
		return Config{}, err
	}
	if cfg.SimTrackingPeriod, err = envDuration("SIM_TRACKING_PERIOD"); err != nil {
		return Config{}, err
	}
	if cfg.SimBoardPeriod, err = envDuration("SIM_BOARD_PERIOD"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envDuration(key string) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, nil
	}
	period, err := time.ParseDuration(raw)
	if err != nil || period <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration", key)
	}
	return period, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
