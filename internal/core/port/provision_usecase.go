package port

import (
	"context"
	"errors"

	"bcl-factory/internal/core/domain"
)

// ErrQueueFull is returned by Submit when the provisioning queue has no
// capacity left. The HTTP boundary maps it to 503 so the caller can retry.
var ErrQueueFull = errors.New("provisioning queue is full")

// ProvisionUseCase is the primary port into the application. Submit
// schedules one background pipeline run for an already-validated campaign
// and returns without waiting for it; Run executes the pipeline
// synchronously and is what the worker pool drains into.
type ProvisionUseCase interface {
	// Submit enqueues campaign for background provisioning. It returns
	// ErrQueueFull when the bounded queue cannot accept more work and a
	// *domain.ValidationError when required fields are missing. No side
	// effect has happened in either error case.
	Submit(ctx context.Context, campaign domain.Campaign) error

	// Run executes the four-step pipeline for campaign and records the
	// terminal status. The returned error mirrors what was recorded; it
	// exists for tests and for synchronous callers, the queue path logs it.
	Run(ctx context.Context, campaign domain.Campaign) error
}

// CompensationHook is invoked after a pipeline run has recorded a failed
// status. Implementations may delete the repository or deployment created
// by the steps that did succeed. The default implementation does nothing:
// compensating rollback is a known gap, externally created artifacts
// survive a later step's failure.
type CompensationHook interface {
	OnPipelineFailure(ctx context.Context, campaign domain.Campaign, failedStep string, cause error)
}
