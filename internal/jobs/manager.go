package jobs

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"bj-oracle/internal/logger"
)

type Job interface {
	Start(ctx context.Context)
}

// Manager runs background jobs until the context is cancelled.
type Manager struct {
	jobs []Job
}

func New() *Manager {
	return &Manager{}
}

func (m *Manager) Register(job Job) {
	m.jobs = append(m.jobs, job)
}

func (m *Manager) Start(ctx context.Context) {
	logger.Log.Info("background jobs running", zap.Int("count", len(m.jobs)))

	var wg sync.WaitGroup

	for _, job := range m.jobs {
		wg.Add(1)

		go func(j Job) {
			defer wg.Done()
			j.Start(ctx)
		}(job)
	}

	<-ctx.Done()
	wg.Wait()
}
