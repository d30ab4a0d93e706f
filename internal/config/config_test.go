package config_test

import (
	"testing"

	"ead/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.ServiceAuthUser)
	require.NoError(t, err)
	assert.Equal(t, ":8087", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Contains(t, cfg.DatabaseDSN, "dbname=ead-authuser")
	assert.Equal(t, "ead.userevent", cfg.UserEventExchange)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.RabbitMQURL)

	cfg, err = config.Load(config.ServiceCourse)
	require.NoError(t, err)
	assert.Equal(t, ":8082", cfg.AppPort)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("APP_PORT", ":9000")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", "file:ead.db")
	t.Setenv("RABBITMQ_URL", "amqp://guest:guest@mq:5672/")

	cfg, err := config.Load(config.ServiceCourse)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file:ead.db", cfg.DatabaseDSN)
	assert.Equal(t, "amqp://guest:guest@mq:5672/", cfg.RabbitMQURL)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load("billing")
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "mysql")
	_, err = config.Load(config.ServiceAuthUser)
	assert.Error(t, err)
}
