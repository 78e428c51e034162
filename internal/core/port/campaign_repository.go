package port

import (
	"context"

	"bcl-factory/internal/core/domain"
)

// CampaignRepository is the outbound port to the durable status store.
// Writes are single-row, keyed by campaign id, last-writer-wins; no
// cross-campaign coordination is required. Implementations must be safe
// for concurrent use by independent pipeline runs.
type CampaignRepository interface {
	// Create inserts a new pending campaign row and returns it with
	// timestamps populated.
	Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)

	// Get returns the campaign by id, or nil when no row exists.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)

	// SetActive records the terminal active status together with the
	// service URL and generated credential.
	SetActive(ctx context.Context, id int64, serviceURL, apiKey string) error

	// SetFailed records the terminal failed status. errText replaces the
	// service URL column; callers truncate it before passing.
	SetFailed(ctx context.Context, id int64, errText string) error
}
