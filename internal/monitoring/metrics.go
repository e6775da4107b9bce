package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	RoundsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "oracle_rounds_started_total",
			Help: "Total blackjack rounds started",
		},
	)

	RoundsFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oracle_rounds_finished_total",
			Help: "Total rounds finished, by terminal status",
		},
		[]string{"status"},
	)

	PayoutUnits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "oracle_payout_units_total",
			Help: "Sum of attested payouts in bet units",
		},
	)

	SigningFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "oracle_signing_failures_total",
			Help: "Total failed attestation attempts",
		},
	)
)

func Init() {
	prometheus.MustRegister(RoundsStarted)
	prometheus.MustRegister(RoundsFinished)
	prometheus.MustRegister(PayoutUnits)
	prometheus.MustRegister(SigningFailures)
}
