package tracer

// Config holds the configuration for the tracer client.
//
// Fields:
//   - ServiceName: Name of the service reported on every span
//   - AppEnv: Deployment environment tag (e.g. "development", "production")
//   - EnableExport: Whether to export spans over OTLP HTTP. When false the
//     provider is still installed so span creation stays cheap and safe, but
//     nothing leaves the process.
type Config struct {
	ServiceName  string `yaml:"serviceName" env:"TRACER_SERVICE_NAME"`
	AppEnv       string `yaml:"appEnv" env:"TRACER_APP_ENV"`
	EnableExport bool   `yaml:"enableExport" env:"TRACER_ENABLE_EXPORT"`
}

// DefaultConfig returns a Config with sensible defaults for local development.
// Export is disabled by default so applications do not need a collector running.
func DefaultConfig() Config {
	return Config{
		ServiceName:  "search-core",
		AppEnv:       "development",
		EnableExport: false,
	}
}

// WithServiceName returns a copy of the Config with the service name replaced.
func (c Config) WithServiceName(name string) Config {
	c.ServiceName = name
	return c
}

// WithAppEnv returns a copy of the Config with the environment tag replaced.
func (c Config) WithAppEnv(env string) Config {
	c.AppEnv = env
	return c
}

// WithExport returns a copy of the Config with span export toggled.
func (c Config) WithExport(enabled bool) Config {
	c.EnableExport = enabled
	return c
}
