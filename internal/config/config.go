package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"freightqa/internal/entity"
	pkgkafka "freightqa/pkg/kafka"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type (
	Config struct {
		App        App        `yaml:"app"        env-prefix:"APP_"`
		Logger     Logger     `yaml:"logger"     env-prefix:"LOGGER_"`
		Postgres   Postgres   `yaml:"postgres"   env-prefix:"DB_"`
		HTTP       HTTP       `yaml:"http"       env-prefix:"HTTP_"`
		Cache      Cache      `yaml:"cache"      env-prefix:"CACHE_"`
		Kafka      Kafka      `yaml:"kafka"      env-prefix:"KAFKA_"`
		DLQ        DLQ        `yaml:"dlq"        env-prefix:"DLQ_"`
		Metrics    Metrics    `yaml:"metrics"    env-prefix:"METRICS_"`
		Validation Validation `yaml:"validation" env-prefix:"VALIDATION_"`
		Env        string     `yaml:"env"        env:"ENV"                 env-default:"local" validate:"oneof=local dev staging prod"`
	}

	App struct {
		Name    string `yaml:"name"    env:"NAME"    validate:"required" env-default:"freightqa"`
		Version string `yaml:"version" env:"VERSION" validate:"required" env-default:"dev"`
	}

	Postgres struct {
		Host           string        `yaml:"host"             env:"HOST"             validate:"required"`
		Port           string        `yaml:"port"             env:"PORT"             validate:"required,numeric"                          env-default:"5432"`
		Name           string        `yaml:"name"             env:"NAME"             validate:"required"`
		User           string        `yaml:"user"             env:"USER"             validate:"required"`
		Password       string        `yaml:"password"         env:"PASSWORD"         validate:"required"`
		SSLMode        string        `yaml:"ssl_mode"         env:"SSL_MODE"         validate:"oneof=disable allow prefer require verify-ca verify-full" env-default:"disable"`
		PoolMax        int32         `yaml:"pool_max"         env:"POOL_MAX"         validate:"min=1,max=100"                             env-default:"20"`
		PoolMin        int32         `yaml:"pool_min"         env:"POOL_MIN"         validate:"min=0,ltefield=PoolMax"                    env-default:"2"`
		ConnectTimeout time.Duration `yaml:"connect_timeout"  env:"CONNECT_TIMEOUT"  validate:"gte=100ms,lte=1m"                          env-default:"5s"`
		ConnAttempts   int           `yaml:"conn_attempts"    env:"CONN_ATTEMPTS"    validate:"min=1,max=10"                              env-default:"5"`
		BaseRetryDelay time.Duration `yaml:"base_retry_delay" env:"BASE_RETRY_DELAY" validate:"gte=10ms,lte=10s"                          env-default:"100ms"`
		MaxRetryDelay  time.Duration `yaml:"max_retry_delay"  env:"MAX_RETRY_DELAY"  validate:"gte=100ms,lte=30s,gtefield=BaseRetryDelay" env-default:"5s"`
		Migrate        bool          `yaml:"migrate"          env:"MIGRATE"                                                               env-default:"true"`
		TxAttempts     int           `yaml:"tx_attempts"      env:"TX_ATTEMPTS"      validate:"min=1,max=10"                              env-default:"3"`
		TxIsolation    string        `yaml:"tx_isolation"     env:"TX_ISOLATION"     validate:"oneof=read_committed repeatable_read serializable" env-default:"read_committed"`
	}

	HTTP struct {
		Host              string        `yaml:"host"                env:"HOST"                validate:"required"          env-default:"0.0.0.0"`
		Port              string        `yaml:"port"                env:"PORT"                validate:"required,numeric"  env-default:"8080"`
		ReadTimeout       time.Duration `yaml:"read_timeout"        env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s"  env-default:"5s"`
		WriteTimeout      time.Duration `yaml:"write_timeout"       env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=30s"  env-default:"5s"`
		IdleTimeout       time.Duration `yaml:"idle_timeout"        env:"IDLE_TIMEOUT"        validate:"gte=10ms,lte=120s" env-default:"60s"`
		ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"    env:"SHUTDOWN_TIMEOUT"    validate:"gte=10ms,lte=30s"  env-default:"10s"`
		ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s"  env-default:"5s"`
		RequestTimeout    time.Duration `yaml:"request_timeout"     env:"REQUEST_TIMEOUT"     validate:"gte=10ms,lte=30s"  env-default:"3s"`
		MaxBodyBytes      int64         `yaml:"max_body_bytes"      env:"MAX_BODY_BYTES"      validate:"min=1024"          env-default:"4194304"`
	}

	Cache struct {
		Capacity        int           `yaml:"capacity"         env:"CAPACITY"         validate:"required,min=1,max=1000000" env-default:"1000"`
		TTL             time.Duration `yaml:"ttl"              env:"TTL"              validate:"required,gt=0s,lte=24h"     env-default:"5m"`
		CleanupInterval time.Duration `yaml:"cleanup_interval" env:"CLEANUP_INTERVAL" validate:"gt=0s,lte=24h"              env-default:"10s"`
	}

	Kafka struct {
		Enabled        bool          `yaml:"enabled"         env:"ENABLED"                                                               env-default:"true"`
		GroupID        string        `yaml:"group_id"        env:"GROUP_ID"        validate:"required_if=Enabled true"                   env-default:"freightqa"`
		Brokers        []string      `yaml:"brokers"         env:"BROKERS"         validate:"required_if=Enabled true,dive,hostname_port" env-separator:","`
		Topic          string        `yaml:"topic"           env:"TOPIC"           validate:"required_if=Enabled true"                   env-default:"freight-records"`
		MinBytes       int           `yaml:"min_bytes"       env:"MIN_BYTES"       validate:"min=1"                                      env-default:"1"`
		MaxBytes       int           `yaml:"max_bytes"       env:"MAX_BYTES"       validate:"gtefield=MinBytes"                          env-default:"10485760"`
		MaxWait        time.Duration `yaml:"max_wait"        env:"MAX_WAIT"        validate:"gte=10ms,lte=30s"                           env-default:"500ms"`
		CommitInterval time.Duration `yaml:"commit_interval" env:"COMMIT_INTERVAL" validate:"gte=0s,lte=30s"                             env-default:"1s"`
	}

	DLQ struct {
		GroupID        string        `yaml:"group_id"         env:"GROUP_ID"         validate:"required"               env-default:"freightqa-dlq"`
		Topic          string        `yaml:"topic"            env:"TOPIC"            validate:"required"               env-default:"freight-records-dlq"`
		BatchSize      int           `yaml:"batch_size"       env:"BATCH_SIZE"       validate:"required,min=1,max=1000" env-default:"100"`
		BatchTimeout   time.Duration `yaml:"batch_timeout"    env:"BATCH_TIMEOUT"    validate:"required,gte=1ms,lte=30s" env-default:"1s"`
		WriteTimeout   time.Duration `yaml:"write_timeout"    env:"WRITE_TIMEOUT"    validate:"required,gte=1ms,lte=30s" env-default:"2s"`
		ReadTimeout    time.Duration `yaml:"read_timeout"     env:"READ_TIMEOUT"     validate:"required,gte=1ms,lte=30s" env-default:"2s"`
		MaxAttempts    int           `yaml:"max_attempts"     env:"MAX_ATTEMPTS"     validate:"min=1,max=20"            env-default:"5"`
		MaxRetryCount  int           `yaml:"max_retry_count"  env:"MAX_RETRY_COUNT"  validate:"min=1,max=20"            env-default:"5"`
		BaseRetryDelay time.Duration `yaml:"base_retry_delay" env:"BASE_RETRY_DELAY" validate:"gte=10ms,lte=30s"        env-default:"100ms"`
		MaxRetryDelay  time.Duration `yaml:"max_retry_delay"  env:"MAX_RETRY_DELAY"  validate:"gtefield=BaseRetryDelay,lte=1m" env-default:"5s"`
	}

	Metrics struct {
		Host              string        `yaml:"host"                env:"HOST"                validate:"required"         env-default:"0.0.0.0"`
		Port              string        `yaml:"port"                env:"PORT"                validate:"required,numeric" env-default:"9090"`
		Namespace         string        `yaml:"namespace"           env:"NAMESPACE"           validate:"required"         env-default:"freightqa"`
		ReadTimeout       time.Duration `yaml:"read_timeout"        env:"READ_TIMEOUT"        validate:"gte=10ms,lte=30s" env-default:"5s"`
		WriteTimeout      time.Duration `yaml:"write_timeout"       env:"WRITE_TIMEOUT"       validate:"gte=10ms,lte=30s" env-default:"5s"`
		ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"READ_HEADER_TIMEOUT" validate:"gte=10ms,lte=30s" env-default:"5s"`
	}

	Logger struct {
		Level      string `yaml:"level"       env:"LEVEL"       env-default:"info"                 validate:"oneof=debug info warn error"`
		Filename   string `yaml:"filename"    env:"FILENAME"    env-default:"./logs/freightqa.log"`
		MaxSize    int    `yaml:"max_size"    env:"MAX_SIZE"    env-default:"100"                  validate:"min=1,max=1000"`
		MaxBackups int    `yaml:"max_backups" env:"MAX_BACKUPS" env-default:"3"                    validate:"min=0,max=20"`
		MaxAge     int    `yaml:"max_age"     env:"MAX_AGE"     env-default:"28"                   validate:"min=1,max=365"`
	}

	Validation struct {
		DefaultLanguage string `yaml:"default_language" env:"DEFAULT_LANGUAGE" env-default:"en"                      validate:"oneof=en ko"`
		RejectedTopic   string `yaml:"rejected_topic"   env:"REJECTED_TOPIC"   env-default:"freight-records-rejected"`
		RestoreLimit    uint64 `yaml:"restore_limit"    env:"RESTORE_LIMIT"    env-default:"500"                     validate:"max=1000000"`
	}
)

// URL returns the pgx connection string.
func (p Postgres) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, p.Port),
		Path:     p.Name,
		RawQuery: url.Values{"sslmode": []string{p.SSLMode}}.Encode(),
	}
	return u.String()
}

func (h HTTP) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

func (m Metrics) Addr() string {
	return net.JoinHostPort(m.Host, m.Port)
}

func (k Kafka) Reader() pkgkafka.ReaderConfig {
	return pkgkafka.ReaderConfig{
		Brokers:        k.Brokers,
		Topic:          k.Topic,
		GroupID:        k.GroupID,
		MinBytes:       k.MinBytes,
		MaxBytes:       k.MaxBytes,
		MaxWait:        k.MaxWait,
		CommitInterval: k.CommitInterval,
	}
}

// Writer configures a producer on topic with the DLQ batching settings.
func (c *Config) Writer(topic string) pkgkafka.WriterConfig {
	return pkgkafka.WriterConfig{
		Brokers:      c.Kafka.Brokers,
		Topic:        topic,
		BatchSize:    c.DLQ.BatchSize,
		BatchTimeout: c.DLQ.BatchTimeout,
		WriteTimeout: c.DLQ.WriteTimeout,
		ReadTimeout:  c.DLQ.ReadTimeout,
	}
}

// DLQReader reads the dead-letter topic with its own consumer group.
func (c *Config) DLQReader() pkgkafka.ReaderConfig {
	r := c.Kafka.Reader()
	r.Topic = c.DLQ.Topic
	r.GroupID = c.DLQ.GroupID
	return r
}

func Load() (*Config, error) {
	path := fetchConfigPath()
	if path == "" {
		return nil, entity.ErrConfigPathNotSet
	}
	return LoadPath(path)
}

func LoadPath(configPath string) (*Config, error) {
	const op = "config.LoadPath"

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
	} else if err != nil {
		return nil, fmt.Errorf("%s: checking config file: %w", op, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: read config: %w", op, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

// Validate reports every failing field at once.
func Validate(cfg *Config) error {
	validate := validator.New()

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("config validation: %w", err)
	}

	validationErrors := make([]string, 0, len(validationErrs))
	for _, ve := range validationErrs {
		validationErrors = append(validationErrors,
			fmt.Sprintf("%s=%v must satisfy '%s'", ve.Namespace(), ve.Value(), ve.Tag()))
	}
	return fmt.Errorf("config validation: %s", strings.Join(validationErrors, "; "))
}

func fetchConfigPath() string {
	var path string
	flag.StringVar(&path, "config", "", "Path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return path
}
