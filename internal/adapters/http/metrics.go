package httpadapter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GamesCreated counts game sessions created over the API.
	GamesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hanoi",
		Subsystem: "game",
		Name:      "sessions_created_total",
		Help:      "Total number of game sessions created",
	})

	// ActiveGames tracks currently live game sessions.
	ActiveGames = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "hanoi",
		Subsystem: "game",
		Name:      "sessions_active",
		Help:      "Number of live game sessions",
	})

	// MovesTotal counts move attempts by outcome.
	// Labels: result (applied, rejected, locked)
	MovesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hanoi",
		Subsystem: "game",
		Name:      "moves_total",
		Help:      "Total move attempts by outcome",
	}, []string{"result"})

	// SolveRuns counts auto-solve runs started.
	SolveRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hanoi",
		Subsystem: "game",
		Name:      "solve_runs_total",
		Help:      "Total auto-solve runs started",
	})

	// HintsServed counts hint requests answered with a move.
	HintsServed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hanoi",
		Subsystem: "game",
		Name:      "hints_served_total",
		Help:      "Total hints served",
	})
)

func observeMove(res bool, reason string) {
	switch {
	case res:
		MovesTotal.WithLabelValues("applied").Inc()
	case reason == "Locked":
		MovesTotal.WithLabelValues("locked").Inc()
	default:
		MovesTotal.WithLabelValues("rejected").Inc()
	}
}
