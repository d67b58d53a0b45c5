package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CommandsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "milobot_commands_dispatched_total",
		Help: "The total number of dispatched command invocations",
	}, []string{"command", "status"})

	CooldownDenials = promauto.NewCounter(prometheus.CounterOpts{
		Name: "milobot_cooldown_denials_total",
		Help: "The total number of invocations denied by cooldown",
	})

	UnknownCommands = promauto.NewCounter(prometheus.CounterOpts{
		Name: "milobot_unknown_commands_total",
		Help: "The total number of prefixed messages naming no known command",
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "milobot_active_game_sessions",
		Help: "The number of game sessions currently in the registry",
	})

	SessionsReaped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "milobot_game_sessions_reaped_total",
		Help: "The total number of game sessions evicted for inactivity",
	})
)
