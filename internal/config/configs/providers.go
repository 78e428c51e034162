package configs

// GitHub configures the hosting provider the publisher pushes generated
// instances to. Token and Owner are both required for publishing; the
// publisher reports a credentials error when either is empty.
type GitHub struct {
	// Token is a personal access token with repo scope.
	Token string `env:"TOKEN"`
	// Owner is the user or organisation the instance repositories are
	// created under. It doubles as the basic-auth username on push.
	Owner string `env:"OWNER"`
	// OwnerIsOrg selects the organisation creation endpoint. When false
	// (the default) repositories are created under the authenticated
	// user; GitHub returns 404 from the org endpoint for personal
	// accounts.
	OwnerIsOrg bool `env:"OWNER_IS_ORG" envDefault:"false"`
	// BaseURL is overridable for tests and GitHub Enterprise; empty
	// means the public API.
	BaseURL string `env:"BASE_URL"`
}

// Render configures the cloud platform the deployment trigger talks to.
type Render struct {
	// APIKey authenticates against the Render API.
	APIKey string `env:"API_KEY"`
	// OwnerID is the Render workspace the services are created in.
	OwnerID string `env:"OWNER_ID"`
	// BaseURL is overridable for tests; the default is the public API.
	BaseURL string `env:"BASE_URL" envDefault:"https://api.render.com"`
}

// SMTP configures the outbound notification channel. When Enabled is
// false the notifier logs the message instead of sending it, which is
// the development default.
type SMTP struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	// From is the sender address on provisioning-complete emails.
	From string `env:"FROM" envDefault:"factory@blueconnectlead.com"`
}

// Template carries the shared upstream API keys injected into every
// provisioned instance's environment. They are read once at startup and
// passed into the deployment trigger; per-instance secrets are generated,
// never configured.
type Template struct {
	GoogleAPIKey    string `env:"GOOGLE_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	EvolutionAPIURL string `env:"EVOLUTION_API_URL"`
	EvolutionAPIKey string `env:"EVOLUTION_API_KEY"`
}

// Provision configures the template source and the background worker pool
// that drains provisioning runs.
type Provision struct {
	// TemplatePath is the root of the template project tree that gets
	// copied and customised per campaign.
	TemplatePath string `env:"TEMPLATE_PATH" envDefault:"templates/bcl-activate-template"`
	// QueueSize bounds how many accepted runs may wait for a worker.
	QueueSize int `env:"QUEUE_SIZE" envDefault:"64"`
	// Workers is the number of concurrent pipeline runs.
	Workers int `env:"WORKERS" envDefault:"4"`
	// RunTimeout bounds one pipeline run end to end, in minutes.
	RunTimeoutMinutes int `env:"RUN_TIMEOUT_MINUTES" envDefault:"15"`
}
