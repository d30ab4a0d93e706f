package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Service names accepted by Load.
const (
	ServiceAuthUser = "authuser"
	ServiceCourse   = "course"
)

// Config holds the runtime settings of one service.
type Config struct {
	Service           string
	AppPort           string
	DBDriver          string
	DatabaseDSN       string
	RabbitMQURL       string
	UserEventExchange string
	LogLevel          string
	CORSOrigins       string
}

var defaultPorts = map[string]string{
	ServiceAuthUser: ":8087",
	ServiceCourse:   ":8082",
}

// Load reads the configuration of service from the environment.
func Load(service string) (*Config, error) {
	port, ok := defaultPorts[service]
	if !ok {
		return nil, fmt.Errorf("unknown service %q", service)
	}

	v := viper.New()
	v.SetDefault("APP_PORT", port)
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", fmt.Sprintf("host=127.0.0.1 user=postgres password=postgres dbname=ead-%s port=5432 sslmode=disable", service))
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("USER_EVENT_EXCHANGE", "ead.userevent")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "*")
	v.AutomaticEnv()

	cfg := &Config{
		Service:           service,
		AppPort:           v.GetString("APP_PORT"),
		DBDriver:          v.GetString("DB_DRIVER"),
		DatabaseDSN:       v.GetString("DATABASE_DSN"),
		RabbitMQURL:       v.GetString("RABBITMQ_URL"),
		UserEventExchange: v.GetString("USER_EVENT_EXCHANGE"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		CORSOrigins:       v.GetString("CORS_ORIGINS"),
	}

	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}
