package event

const (
	EventGameFinished = "game.finished"
)
