package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, time.Minute, cfg.Cache.FlightsTTL())
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Kafka.Enabled())
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
http:
  address: ":9090"
database:
  driver: postgres
  host: db
  port: 5433
  user: app
  password: secret
  name: flights
  ssl_mode: disable
redis:
  addr: redis:6379
kafka:
  brokers: ["kafka:9092"]
  flight_events_topic: flights
cache:
  flights_ttl_seconds: 30
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, "host=db port=5433 user=app password=secret dbname=flights sslmode=disable", cfg.Database.DSN())
	assert.True(t, cfg.Redis.Enabled())
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, 30*time.Second, cfg.Cache.FlightsTTL())
	// untouched keys keep their defaults
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "http:\n  address: \":9090\"\n")
	t.Setenv("FLIGHTS_HTTP_ADDRESS", ":7070")
	t.Setenv("FLIGHTS_KAFKA_BROKERS", "a:9092,b:9092")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Address)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "http: [")

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	cfg.Database.Driver = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Redis.Addr = "localhost:6379"
	cfg.Cache.FlightsTTLSeconds = 0
	assert.Error(t, cfg.Validate())

	assert.NoError(t, Default().Validate())
}
