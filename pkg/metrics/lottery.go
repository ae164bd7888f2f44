package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ticketsIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lottery_tickets_issued_total",
			Help: "Total lottery tickets minted, by subscription plan",
		},
		[]string{"plan"},
	)

	drawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lottery_draws_total",
			Help: "Total winner selections by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	drawDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lottery_draw_duration_ms",
			Help:    "Winner selection duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(5, 2, 10),
		},
		[]string{"mode"},
	)

	rewardClaims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lottery_reward_claims_total",
			Help: "Reward settlement checks by result",
		},
		[]string{"result"},
	)
)

// RecordIssue counts minted tickets for one entry.
func RecordIssue(plan string, count int) {
	ticketsIssued.WithLabelValues(plan).Add(float64(count))
}

// RecordDraw records one selection attempt.
// mode: "random" | "manual", outcome: "success" | "fail"
func RecordDraw(mode, outcome string, started time.Time) {
	drawsTotal.WithLabelValues(mode, outcome).Inc()
	drawDuration.WithLabelValues(mode).Observe(float64(time.Since(started).Milliseconds()))
}

// RecordClaim records one reward check.
// result: "won" | "not_winner"
func RecordClaim(result string) {
	rewardClaims.WithLabelValues(result).Inc()
}
