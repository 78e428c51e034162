package port

import (
	"context"

	"bcl-factory/internal/core/domain"
)

// Materializer copies the template project into a fresh working directory
// and rewrites its prompt region from the campaign parameters. It is an
// outbound port; the filesystem adapter implements it.
type Materializer interface {
	// Materialize returns the working directory path and the generated
	// instance name. The instance name is unique per call. Failures are
	// reported as *domain.IOError.
	Materialize(ctx context.Context, campaignID int64, params domain.CampaignParams) (workDir, instanceName string, err error)
}

// Publisher creates a private remote repository named instanceName and
// pushes the working directory to its default branch as a single initial
// commit.
type Publisher interface {
	// Publish returns the clone URL of the created repository. Failures
	// are *domain.AuthError, *domain.DuplicateNameError or *domain.PushError.
	Publish(ctx context.Context, workDir, instanceName string) (repoURL string, err error)
}

// Deployment is the result of a successful deploy request: where the
// instance will be reachable and the credential that guards it.
type Deployment struct {
	ServiceURL string
	APIKey     string
}

// Deployer requests creation of a running service on the cloud platform
// from a published repository. It only returns data; the orchestrator owns
// all writes to the status store.
type Deployer interface {
	// Deploy returns the service URL and the generated per-instance
	// credential. A platform rejection is reported as *domain.DeployError.
	Deploy(ctx context.Context, instanceName, repoURL string, campaignID int64) (Deployment, error)
}

// Notifier informs the customer that their instance is ready. It is
// best-effort: a false return means delivery failed, and the pipeline
// treats that as a warning, never a run failure.
type Notifier interface {
	Notify(ctx context.Context, email, serviceURL string, source domain.LeadSourceType) (delivered bool)
}
