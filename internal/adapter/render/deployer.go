// Package render triggers deployments on the Render platform. It submits
// a create-service request pointing at a published instance repository and
// returns the resulting public URL together with the generated
// per-instance credential.
package render

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"bcl-factory/internal/config/configs"
	"bcl-factory/internal/core/domain"
	"bcl-factory/internal/core/port"
)

// envVar is one entry of the environment injected into the instance.
type envVar struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// serviceDetails is the Render service configuration. Instances are Docker
// web services deployed from the repository's Dockerfile.
type serviceDetails struct {
	Env            string   `json:"env"`
	DockerfilePath string   `json:"dockerfilePath"`
	EnvVars        []envVar `json:"envVars"`
}

type createServiceRequest struct {
	OwnerID        string         `json:"ownerId"`
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Repo           string         `json:"repo"`
	AutoDeploy     string         `json:"autoDeploy"`
	Branch         string         `json:"branch"`
	ServiceDetails serviceDetails `json:"serviceDetails"`
}

type createServiceResponse struct {
	Service struct {
		ID             string `json:"id"`
		ServiceDetails struct {
			URL string `json:"url"`
		} `json:"serviceDetails"`
	} `json:"service"`
}

// Deployer implements port.Deployer against the Render API. It only
// returns deployment data; persisting it against the campaign record is
// the orchestrator's job.
type Deployer struct {
	cfg      configs.Render
	upstream configs.Template
	client   *http.Client
	logger   *slog.Logger
}

// NewDeployer returns a deployer for cfg. The upstream keys are injected
// into every provisioned instance's environment.
func NewDeployer(cfg configs.Render, upstream configs.Template, logger *slog.Logger) *Deployer {
	return &Deployer{
		cfg:      cfg,
		upstream: upstream,
		client:   &http.Client{Timeout: 60 * time.Second},
		logger:   logger,
	}
}

// Deploy submits the create-service request and returns the service URL
// and the generated credential. A non-success platform response becomes a
// *domain.DeployError carrying the response body.
func (d *Deployer) Deploy(ctx context.Context, instanceName, repoURL string, campaignID int64) (port.Deployment, error) {
	apiKey, err := newInstanceKey(campaignID)
	if err != nil {
		return port.Deployment{}, err
	}

	payload := createServiceRequest{
		OwnerID:    d.cfg.OwnerID,
		Name:       instanceName,
		Type:       "web_srv",
		Repo:       repoURL,
		AutoDeploy: "yes",
		Branch:     "main",
		ServiceDetails: serviceDetails{
			Env:            "docker",
			DockerfilePath: "./Dockerfile",
			EnvVars: []envVar{
				{Key: "BCL_API_KEY", Value: apiKey},
				{Key: "GOOGLE_API_KEY", Value: d.upstream.GoogleAPIKey},
				{Key: "OPENAI_API_KEY", Value: d.upstream.OpenAIAPIKey},
				{Key: "EVOLUTION_API_URL", Value: d.upstream.EvolutionAPIURL},
				{Key: "EVOLUTION_API_KEY", Value: d.upstream.EvolutionAPIKey},
				{Key: "EVOLUTION_INSTANCE_NAME", Value: fmt.Sprintf("bcl-instance-%d", campaignID)},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return port.Deployment{}, fmt.Errorf("marshal deploy request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.BaseURL+"/v1/services", bytes.NewReader(body))
	if err != nil {
		return port.Deployment{}, fmt.Errorf("build deploy request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+d.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return port.Deployment{}, fmt.Errorf("deploy request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return port.Deployment{}, &domain.DeployError{Status: resp.StatusCode, Body: string(detail)}
	}

	var created createServiceResponse
	if err = json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return port.Deployment{}, fmt.Errorf("decode deploy response: %w", err)
	}

	d.logger.Info("service created",
		slog.String("service_id", created.Service.ID),
		slog.String("url", created.Service.ServiceDetails.URL),
		slog.Int64("campaign_id", campaignID))

	return port.Deployment{
		ServiceURL: created.Service.ServiceDetails.URL,
		APIKey:     apiKey,
	}, nil
}

// newInstanceKey generates the credential guarding the instance's
// activation endpoint.
func newInstanceKey(campaignID int64) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate instance key: %w", err)
	}
	return fmt.Sprintf("bcl_secret_%d_%s", campaignID, hex.EncodeToString(buf)), nil
}
