package config

import (
	"os"
	"strconv"
)

// Config carries the engine's tunables. Ticket price and reward amount were
// hardcoded in earlier revisions; they are env-backed now so operators can
// change them without a release.
type Config struct {
	Port        string
	PostgresURL string

	TicketPriceMinor  int64
	RewardAmountMinor int64

	BasicTicketCount   int
	PremiumTicketCount int
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		PostgresURL: os.Getenv("POSTGRES_URL"),

		TicketPriceMinor:  getEnvInt64("TICKET_PRICE_MINOR", 1),
		RewardAmountMinor: getEnvInt64("REWARD_AMOUNT_MINOR", 100000),

		BasicTicketCount:   int(getEnvInt64("BASIC_TICKET_COUNT", 1)),
		PremiumTicketCount: int(getEnvInt64("PREMIUM_TICKET_COUNT", 3)),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// TicketsFor maps a plan to its tickets-per-transaction multiplier.
func (c *Config) TicketsFor(plan string) int {
	if plan == "premium" {
		return c.PremiumTicketCount
	}
	return c.BasicTicketCount
}
