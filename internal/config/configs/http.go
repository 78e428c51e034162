package configs

// HTTP defines configuration for the HTTP server. AllowedOrigins feeds the
// CORS middleware; the defaults cover the local frontend and the production
// dashboard domains.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	// AllowedOrigins is the comma-separated list of origins permitted to
	// call the provisioning API from a browser.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:8080,https://blueconnectlead.com,https://www.blueconnectlead.com"`
}
