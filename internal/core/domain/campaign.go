package domain

import "time"

// Status is the lifecycle state of a campaign record. A campaign is created
// as pending by the inbound boundary and moves to exactly one terminal state
// when its provisioning run finishes.
type Status string

const (
	StatusPending Status = "pending"
	StatusActive  Status = "active"
	StatusFailed  Status = "failed"
)

// Terminal reports whether no further transition may occur for this status.
func (s Status) Terminal() bool {
	return s == StatusActive || s == StatusFailed
}

// LeadSourceType selects how the customer's lead source connects to the
// provisioned instance. It only affects which notification template is sent.
type LeadSourceType string

const (
	LeadSourceWebhook LeadSourceType = "webhook"
	LeadSourceMeta    LeadSourceType = "meta"
)

// CampaignParams holds the customer-supplied customization for one campaign.
// All fields except LeadSourceType are required free text; LeadSourceType
// defaults to webhook when absent.
type CampaignParams struct {
	CampaignName     string
	Objective        string
	AssistantPersona string
	ToneOfVoice      string
	Offer            string
	CustomerProfile  string
	LeadSourceType   LeadSourceType
}

// MissingFields returns the canonical names of required params that are
// empty, in a fixed order so callers can report them deterministically.
func (p CampaignParams) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"campaignName", p.CampaignName},
		{"objective", p.Objective},
		{"assistantPersona", p.AssistantPersona},
		{"toneOfVoice", p.ToneOfVoice},
		{"offer", p.Offer},
		{"customerProfile", p.CustomerProfile},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Campaign is the unit of provisioning work and the row in durable storage.
// The inbound boundary creates it as pending; after that the orchestrator is
// the sole writer of Status, ServiceURL and APIKey.
type Campaign struct {
	ID     int64
	Email  string
	Params CampaignParams
	Status Status

	// Assigned during the pipeline.
	InstanceName string
	RepoURL      string
	ServiceURL   string
	APIKey       string

	CreatedAt time.Time
	UpdatedAt time.Time
}
