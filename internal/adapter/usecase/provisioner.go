// Package usecase contains the provisioning orchestrator: the ordered
// four-step pipeline that turns a pending campaign into a running,
// customer-specific instance.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"bcl-factory/internal/core/domain"
	"bcl-factory/internal/core/port"
)

// maxErrTextLen bounds the error text persisted into the service_url
// column on failure.
const maxErrTextLen = 500

// Pipeline step names, used for logging and the compensation hook.
const (
	stepMaterialize = "materialize"
	stepPublish     = "publish"
	stepDeploy      = "deploy"
	stepPersist     = "persist"
	stepNotify      = "notify"
)

// Provisioner executes the fixed pipeline for one campaign at a time per
// run: materialize the template, publish the repository, deploy the
// service, persist the terminal status, notify the customer. It is the
// sole writer of campaign status after creation.
//
// Runs are not idempotent: submitting the same campaign twice provisions
// two repositories and two deployments. The caller owns request
// deduplication.
type Provisioner struct {
	repo         port.CampaignRepository
	materializer port.Materializer
	publisher    port.Publisher
	deployer     port.Deployer
	notifier     port.Notifier
	hook         port.CompensationHook
	logger       *slog.Logger
}

// NewProvisioner wires the orchestrator. A nil hook defaults to
// NoCompensation.
func NewProvisioner(
	repo port.CampaignRepository,
	materializer port.Materializer,
	publisher port.Publisher,
	deployer port.Deployer,
	notifier port.Notifier,
	hook port.CompensationHook,
	logger *slog.Logger,
) *Provisioner {
	if hook == nil {
		hook = NoCompensation{}
	}
	return &Provisioner{
		repo:         repo,
		materializer: materializer,
		publisher:    publisher,
		deployer:     deployer,
		notifier:     notifier,
		hook:         hook,
		logger:       logger,
	}
}

// Run executes the pipeline for campaign and records exactly one terminal
// status. Steps run strictly in order; a failing step stops the run, later
// steps never execute. The working directory is removed on every exit
// path. The returned error mirrors what was recorded for the campaign.
func (p *Provisioner) Run(ctx context.Context, campaign domain.Campaign) error {
	if err := validate(campaign); err != nil {
		return err
	}

	log := p.logger.With(slog.Int64("campaign_id", campaign.ID))
	log.Info("provisioning started")

	workDir, instanceName, err := p.materializer.Materialize(ctx, campaign.ID, campaign.Params)
	if err != nil {
		p.recordFailure(ctx, campaign, stepMaterialize, err)
		return err
	}
	campaign.InstanceName = instanceName
	defer func() {
		if rmErr := os.RemoveAll(workDir); rmErr != nil {
			log.Warn("working directory cleanup failed",
				slog.String("workdir", workDir), slog.Any("error", rmErr))
		}
	}()

	repoURL, err := p.publisher.Publish(ctx, workDir, instanceName)
	if err != nil {
		p.recordFailure(ctx, campaign, stepPublish, err)
		return err
	}
	campaign.RepoURL = repoURL
	log.Info("repository published", slog.String("repo_url", repoURL))

	deployment, err := p.deployer.Deploy(ctx, instanceName, repoURL, campaign.ID)
	if err != nil {
		p.recordFailure(ctx, campaign, stepDeploy, err)
		return err
	}
	log.Info("deployment triggered", slog.String("service_url", deployment.ServiceURL))

	if err = p.repo.SetActive(ctx, campaign.ID, deployment.ServiceURL, deployment.APIKey); err != nil {
		// The deployment already exists and cannot be undone by failing
		// here; record the run as failed so the row is never left pending.
		p.recordFailure(ctx, campaign, stepPersist, err)
		return err
	}

	if delivered := p.notifier.Notify(ctx, campaign.Email, deployment.ServiceURL, campaign.Params.LeadSourceType); !delivered {
		// Best-effort: the run stays successful, the customer can still
		// be reached out of band via the persisted URL.
		log.Warn("completion notification not delivered", slog.String("step", stepNotify))
	}

	log.Info("provisioning completed", slog.String("service_url", deployment.ServiceURL))
	return nil
}

// recordFailure persists the failed status with a truncated error text. A
// store failure on this path is logged only: the run is already in its
// terminal error path and must not raise further. The compensation hook
// fires after the status write; created repositories and deployments are
// deliberately left in place.
func (p *Provisioner) recordFailure(ctx context.Context, campaign domain.Campaign, step string, cause error) {
	p.logger.Error("provisioning step failed",
		slog.Int64("campaign_id", campaign.ID),
		slog.String("step", step),
		slog.Any("error", cause))

	errText := truncate(fmt.Sprintf("%s: %v", step, cause), maxErrTextLen)
	if perr := p.repo.SetFailed(ctx, campaign.ID, errText); perr != nil {
		p.logger.Error("failed-status write failed",
			slog.Int64("campaign_id", campaign.ID),
			slog.Any("error", perr))
	}

	p.hook.OnPipelineFailure(ctx, campaign, step, cause)
}

// validate rejects campaigns with missing identity, contact or params
// before any side effect.
func validate(c domain.Campaign) error {
	var missing []string
	if c.ID == 0 {
		missing = append(missing, "campaignId")
	}
	if c.Email == "" {
		missing = append(missing, "userEmail")
	}
	missing = append(missing, c.Params.MissingFields()...)
	if len(missing) > 0 {
		return &domain.ValidationError{Missing: missing}
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// NoCompensation is the default CompensationHook: partial failures leave
// externally created artifacts (repository, deployment) in place.
type NoCompensation struct{}

func (NoCompensation) OnPipelineFailure(context.Context, domain.Campaign, string, error) {}
