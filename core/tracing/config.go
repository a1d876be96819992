package tracing

const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Config holds OpenTelemetry tracing settings.
type Config struct {
	// Enabled turns tracing on. When false a no-op provider stays installed.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Exporter is either stdout or otlp.
	Exporter string `mapstructure:"exporter" default:"stdout"`
	// Endpoint is the OTLP/HTTP collector address (host:port).
	Endpoint string `mapstructure:"endpoint" default:""`
	// Insecure disables TLS towards the collector.
	Insecure bool `mapstructure:"insecure" default:"false"`
	// SampleRatio is the fraction of root traces recorded, clamped to [0, 1].
	SampleRatio float64 `mapstructure:"sample_ratio" default:"0.1"`
	// ServiceName is reported as service.name.
	ServiceName string `mapstructure:"service_name" default:"drinks-api"`
	// Environment is reported as deployment.environment.
	Environment string `mapstructure:"environment" default:"development"`
}

func (c Config) ratio() float64 {
	switch {
	case c.SampleRatio < 0:
		return 0
	case c.SampleRatio > 1:
		return 1
	default:
		return c.SampleRatio
	}
}
