package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"freightqa/internal/config"

	"github.com/stretchr/testify/require"
)

const minimalConfig = `
postgres:
  host: db
  name: freightqa
  user: app
  password: secret
kafka:
  brokers: ["kafka:9092"]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadPath_Defaults(t *testing.T) {
	cfg, err := config.LoadPath(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	require.Equal(t, "local", cfg.Env)
	require.Equal(t, "5432", cfg.Postgres.Port)
	require.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	require.Equal(t, "en", cfg.Validation.DefaultLanguage)
	require.Equal(t, uint64(500), cfg.Validation.RestoreLimit)
	require.Equal(t, "freight-records-dlq", cfg.DLQ.Topic)
	require.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	require.Equal(t, "postgres://app:secret@db:5432/freightqa?sslmode=disable", cfg.Postgres.URL())
}

func TestLoadPath_EnvOverrides(t *testing.T) {
	t.Setenv("VALIDATION_DEFAULT_LANGUAGE", "ko")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("DB_PASSWORD", "p@ss/word")

	cfg, err := config.LoadPath(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	require.Equal(t, "ko", cfg.Validation.DefaultLanguage)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/freightqa?sslmode=disable", cfg.Postgres.URL())

	dlqReader := cfg.DLQReader()
	require.Equal(t, cfg.DLQ.Topic, dlqReader.Topic)
	require.Equal(t, cfg.DLQ.GroupID, dlqReader.GroupID)
	require.Equal(t, cfg.Kafka.Brokers, dlqReader.Brokers)

	w := cfg.Writer("rejected")
	require.Equal(t, "rejected", w.Topic)
	require.Equal(t, cfg.DLQ.BatchSize, w.BatchSize)
}

func TestLoadPath_Errors(t *testing.T) {
	testCases := []struct {
		desc    string
		body    string
		missing bool
		wantErr string
	}{
		{
			desc:    "MissingFile",
			missing: true,
			wantErr: "config file does not exist",
		},
		{
			desc:    "MissingPostgresHost",
			body:    "postgres:\n  name: x\n  user: x\n  password: x\nkafka:\n  brokers: [\"kafka:9092\"]\n",
			wantErr: "Config.Postgres.Host",
		},
		{
			desc:    "UnsupportedLanguage",
			body:    minimalConfig + "validation:\n  default_language: fr\n",
			wantErr: "DefaultLanguage=fr must satisfy 'oneof'",
		},
		{
			desc:    "BadBroker",
			body:    "postgres:\n  host: db\n  name: x\n  user: x\n  password: x\nkafka:\n  brokers: [\"no-port\"]\n",
			wantErr: "hostname_port",
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.yaml")
			if !tC.missing {
				path = writeConfig(t, tC.body)
			}

			_, err := config.LoadPath(path)
			require.ErrorContains(t, err, tC.wantErr)
		})
	}
}
