// Package github publishes materialized instances: it creates a private
// repository on GitHub and pushes the working directory to it as a single
// initial commit.
package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	gh "github.com/google/go-github/v68/github"

	"bcl-factory/internal/config/configs"
	"bcl-factory/internal/core/domain"
)

const (
	defaultBranch = "main"
	commitAuthor  = "BCL Factory"
	commitEmail   = "factory@blueconnectlead.com"
	commitMessage = "Initial commit of BCL instance"
)

// Publisher implements port.Publisher against the GitHub API. The remote
// repository is created private under the configured owner; the push
// authenticates with the same token over HTTPS basic auth.
type Publisher struct {
	cfg    configs.GitHub
	client *gh.Client
	logger *slog.Logger
}

// NewPublisher returns a publisher using cfg's token and owner. A
// non-empty BaseURL redirects API calls, for tests and GitHub Enterprise.
func NewPublisher(cfg configs.GitHub, logger *slog.Logger) (*Publisher, error) {
	client := gh.NewClient(nil).WithAuthToken(cfg.Token)
	if cfg.BaseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(cfg.BaseURL, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
	}
	return &Publisher{
		cfg:    cfg,
		client: client,
		logger: logger,
	}, nil
}

// Publish creates the remote repository and pushes workDir to its default
// branch. It returns the repository clone URL.
func (p *Publisher) Publish(ctx context.Context, workDir, instanceName string) (string, error) {
	if p.cfg.Token == "" || p.cfg.Owner == "" {
		return "", &domain.AuthError{Provider: "github"}
	}

	repoURL, err := p.createRemote(ctx, instanceName)
	if err != nil {
		return "", err
	}
	p.logger.Info("repository created", slog.String("repo", instanceName), slog.String("url", repoURL))

	if err = p.pushInitialCommit(ctx, workDir, repoURL); err != nil {
		return "", err
	}
	p.logger.Info("initial commit pushed", slog.String("repo", instanceName))
	return repoURL, nil
}

// createRemote creates the private repository and maps provider rejections
// onto the domain error taxonomy.
func (p *Publisher) createRemote(ctx context.Context, name string) (string, error) {
	repo := &gh.Repository{
		Name:    gh.String(name),
		Private: gh.Bool(true),
	}
	// An empty org routes to POST /user/repos, creating under the
	// authenticated user; the org endpoint 404s for personal accounts,
	// so the owner is only passed through when configured as an org.
	var org string
	if p.cfg.OwnerIsOrg {
		org = p.cfg.Owner
	}
	created, resp, err := p.client.Repositories.Create(ctx, org, repo)
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case http.StatusUnauthorized, http.StatusForbidden:
				return "", &domain.AuthError{Provider: "github", Err: err}
			case http.StatusUnprocessableEntity:
				return "", &domain.DuplicateNameError{Name: name}
			}
		}
		return "", &domain.PushError{Repo: name, Err: err}
	}
	return created.GetCloneURL(), nil
}

// pushInitialCommit initializes a repository in workDir, commits every
// file and pushes main to the new remote.
func (p *Publisher) pushInitialCommit(ctx context.Context, workDir, repoURL string) error {
	local, err := gogit.PlainInitWithOptions(workDir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(defaultBranch),
		},
	})
	if err != nil {
		return &domain.PushError{Repo: repoURL, Err: err}
	}

	wt, err := local.Worktree()
	if err != nil {
		return &domain.PushError{Repo: repoURL, Err: err}
	}
	if err = wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return &domain.PushError{Repo: repoURL, Err: err}
	}
	_, err = wt.Commit(commitMessage, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  commitAuthor,
			Email: commitEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return &domain.PushError{Repo: repoURL, Err: err}
	}

	_, err = local.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{repoURL},
	})
	if err != nil {
		return &domain.PushError{Repo: repoURL, Err: err}
	}

	err = local.PushContext(ctx, &gogit.PushOptions{
		RemoteName: "origin",
		RefSpecs: []gitconfig.RefSpec{
			gitconfig.RefSpec("refs/heads/" + defaultBranch + ":refs/heads/" + defaultBranch),
		},
		Auth: &githttp.BasicAuth{
			Username: p.cfg.Owner,
			Password: p.cfg.Token,
		},
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return &domain.PushError{Repo: repoURL, Err: err}
	}
	return nil
}
