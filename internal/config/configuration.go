package config

// Configuration holds every option the snap accepts through `snap set`.
// Field tags carry the internal snake_case names; external names are derived
// with ToKebab.
type Configuration struct {
	Settings Settings              `json:"settings"`
	Database DatabaseConfiguration `json:"database" schema:"required"`
	RabbitMQ RabbitMQConfiguration `json:"rabbitmq" schema:"required"`
}

// DatabaseConfiguration is the [database] section.
type DatabaseConfiguration struct {
	URL string `json:"url" schema:"required"`
}

// RabbitMQConfiguration is the messaging transport section.
type RabbitMQConfiguration struct {
	URL string `json:"url" schema:"required"`
}

// Settings holds optional service toggles.
type Settings struct {
	Debug                        bool `json:"debug"`
	EnableTelemetryNotifications bool `json:"enable_telemetry_notifications"`
}

// DefaultConfiguration returns the configuration defaults applied to absent optional fields.
func DefaultConfiguration() Configuration {
	return Configuration{
		Settings: Settings{
			Debug:                        false,
			EnableTelemetryNotifications: false,
		},
	}
}

// NewConfigurationSchema returns the schema for Configuration.
func NewConfigurationSchema(opts ...SchemaOption) (*Schema, error) {
	return NewSchema(DefaultConfiguration(), opts...)
}
