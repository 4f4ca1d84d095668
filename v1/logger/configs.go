package logger

// Level controls the minimum severity emitted by the logger.
type Level string

const (
	Debug   Level = "debug"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Config holds the logger settings.
type Config struct {
	// Level is the minimum severity to emit. Defaults to Info.
	Level Level `yaml:"level" env:"LOGGER_LEVEL"`

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"LOGGER_SERVICE_NAME"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Level:       Info,
		ServiceName: "search-core",
	}
}
