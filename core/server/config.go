package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the bearer token required on admin routes. Empty disables the guard.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps request bodies, which bounds spreadsheet uploads.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"16"`
	// Prefix is the route group the admin features mount under.
	Prefix string `mapstructure:"prefix" default:"/v1/admin"`
}

const defaultBodyLimitMB = 16

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return defaultBodyLimitMB * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
