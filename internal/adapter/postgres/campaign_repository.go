package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bcl-factory/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. All writes are single-row updates keyed by campaign id;
// concurrent pipeline runs touch disjoint rows so no locking beyond the
// row level is needed.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Create inserts a new pending campaign row. The caller owns the campaign
// id; a retried request creates a fresh row under a fresh id rather than
// resurrecting the old one.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) (domain.Campaign, error) {
	query := `
        INSERT INTO campaigns (
            id, email, campaign_name, objective, assistant_persona,
            tone_of_voice, offer, customer_profile, lead_source_type, status
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING created_at, updated_at`
	c.Status = domain.StatusPending
	err := r.pool.QueryRow(ctx, query,
		c.ID,
		c.Email,
		c.Params.CampaignName,
		c.Params.Objective,
		c.Params.AssistantPersona,
		c.Params.ToneOfVoice,
		c.Params.Offer,
		c.Params.CustomerProfile,
		string(c.Params.LeadSourceType),
		string(c.Status),
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Campaign{}, &domain.PersistenceError{Op: "create campaign", Err: err}
	}
	return c, nil
}

// Get returns the campaign by id, or nil when no row exists.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	query := `
        SELECT
            id, email, campaign_name, objective, assistant_persona,
            tone_of_voice, offer, customer_profile, lead_source_type,
            status, service_url, api_key,
            created_at, updated_at
        FROM campaigns
        WHERE id = $1`
	var (
		c      domain.Campaign
		source string
		status string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Email,
		&c.Params.CampaignName,
		&c.Params.Objective,
		&c.Params.AssistantPersona,
		&c.Params.ToneOfVoice,
		&c.Params.Offer,
		&c.Params.CustomerProfile,
		&source,
		&status,
		&c.ServiceURL,
		&c.APIKey,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.PersistenceError{Op: "get campaign", Err: err}
	}
	c.Params.LeadSourceType = domain.LeadSourceType(source)
	c.Status = domain.Status(status)
	return &c, nil
}

// SetActive records the terminal active status with the service URL and
// generated credential. The status check constraint and the WHERE clause
// make this a last-writer-wins single-row update.
func (r *CampaignRepository) SetActive(ctx context.Context, id int64, serviceURL, apiKey string) error {
	query := `
        UPDATE campaigns
        SET status = $2, service_url = $3, api_key = $4, updated_at = now()
        WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, string(domain.StatusActive), serviceURL, apiKey)
	if err != nil {
		return &domain.PersistenceError{Op: "set campaign active", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return &domain.PersistenceError{Op: "set campaign active", Err: pgx.ErrNoRows}
	}
	return nil
}

// SetFailed records the terminal failed status. The truncated error text
// is stored in the service_url column so operators can see the cause next
// to the row that never got a URL.
func (r *CampaignRepository) SetFailed(ctx context.Context, id int64, errText string) error {
	query := `
        UPDATE campaigns
        SET status = $2, service_url = $3, updated_at = now()
        WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, string(domain.StatusFailed), errText)
	if err != nil {
		return &domain.PersistenceError{Op: "set campaign failed", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return &domain.PersistenceError{Op: "set campaign failed", Err: pgx.ErrNoRows}
	}
	return nil
}
