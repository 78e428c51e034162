package config

import (
	"github.com/caarlos0/env/v11"

	"bcl-factory/internal/config/configs"
)

// Config aggregates all configuration sections for the factory. Fields are
// populated once at process start from environment variables using the
// caarlos0/env library and passed by reference into the components that
// need them; nothing reads the ambient environment after Load returns.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection used as the campaign
	// status store.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// GitHub configures the hosting provider used by the repository
	// publisher.
	GitHub configs.GitHub `envPrefix:"GITHUB_"`

	// Render configures the cloud platform used by the deployment trigger.
	Render configs.Render `envPrefix:"RENDER_"`

	// SMTP configures the customer notification channel.
	SMTP configs.SMTP `envPrefix:"SMTP_"`

	// Template carries the shared upstream API keys injected into every
	// provisioned instance.
	Template configs.Template `envPrefix:"TEMPLATE_"`

	// Provision configures the template source and the worker pool.
	Provision configs.Provision `envPrefix:"PROVISION_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
