package logger

import "go.uber.org/zap"

// Log defaults to a nop logger so library code and tests can log without
// initialization; main swaps in the production logger.
var Log = zap.NewNop()

func Init() {
	l, _ := zap.NewProduction()
	Log = l
}
