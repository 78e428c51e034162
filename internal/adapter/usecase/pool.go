package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bcl-factory/internal/core/domain"
	"bcl-factory/internal/core/port"
)

// Pool schedules pipeline runs onto a bounded worker pool. The inbound
// boundary submits and returns immediately; a fixed set of workers drains
// the queue. The queue is in-memory only: accepted but unfinished runs do
// not survive a process restart.
type Pool struct {
	provisioner *Provisioner
	queue       chan domain.Campaign
	runTimeout  time.Duration
	logger      *slog.Logger

	wg        sync.WaitGroup
	closeOnce sync.Once

	mu     sync.RWMutex
	closed bool
}

// NewPool starts workers goroutines draining a queue of queueSize. Each
// run gets a fresh background context with runTimeout so a hung external
// call cannot pin a worker forever.
func NewPool(provisioner *Provisioner, workers, queueSize int, runTimeout time.Duration, logger *slog.Logger) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	p := &Pool{
		provisioner: provisioner,
		queue:       make(chan domain.Campaign, queueSize),
		runTimeout:  runTimeout,
		logger:      logger,
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// Submit validates campaign and enqueues it for background provisioning.
// It never blocks: a full queue returns port.ErrQueueFull so the boundary
// can signal backpressure to the caller. No side effect has happened when
// an error is returned.
func (p *Pool) Submit(_ context.Context, campaign domain.Campaign) error {
	if err := validate(campaign); err != nil {
		return err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return port.ErrQueueFull
	}
	select {
	case p.queue <- campaign:
		return nil
	default:
		return port.ErrQueueFull
	}
}

// Run executes the pipeline synchronously. It exists for tests and for
// callers that want to wait; the queue path goes through Submit.
func (p *Pool) Run(ctx context.Context, campaign domain.Campaign) error {
	return p.provisioner.Run(ctx, campaign)
}

// Close stops intake and waits for in-flight runs to finish. Queued but
// unstarted campaigns are drained and run before workers exit.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.queue)
		p.mu.Unlock()
	})
	p.wg.Wait()
}

// worker drains the queue. The run context is detached from any inbound
// request: the caller already got its acknowledgement.
func (p *Pool) worker() {
	defer p.wg.Done()
	for campaign := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), p.runTimeout)
		if err := p.provisioner.Run(ctx, campaign); err != nil {
			// Run already recorded the failure; this is operator telemetry.
			p.logger.Debug("pipeline run finished with error",
				slog.Int64("campaign_id", campaign.ID),
				slog.Any("error", err))
		}
		cancel()
	}
}
