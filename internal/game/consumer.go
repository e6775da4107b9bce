package game

import (
	"bj-oracle/internal/event"
	"bj-oracle/internal/monitoring"
)

type Recorder interface {
	Record(gameID, player, status string, payout int64, signature string)
}

type Broadcaster interface {
	BroadcastJSON(v interface{})
}

// RegisterConsumers wires the terminal-round event to the audit trail,
// the metrics, and the live results feed.
func RegisterConsumers(bus *event.Bus, rec Recorder, ws Broadcaster) {

	bus.Subscribe(event.EventGameFinished, func(payload interface{}) {

		ev, ok := payload.(*FinishedEvent)
		if !ok {
			return
		}

		sig := ""
		if ev.Result.Signature != nil {
			sig = *ev.Result.Signature
		}

		rec.Record(ev.GameID, ev.Player, string(ev.Result.Status), ev.Result.Payout, sig)

		monitoring.RoundsFinished.WithLabelValues(string(ev.Result.Status)).Inc()
		monitoring.PayoutUnits.Add(float64(ev.Result.Payout))

		ws.BroadcastJSON(ev)
	})
}
