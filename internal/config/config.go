package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type AppConfig struct {
	AppName     string `mapstructure:"name"`
	Environment string `mapstructure:"env"`
	HTTPPort    string `mapstructure:"http_port"`
}

type CatalogConfig struct {
	Source string `mapstructure:"source"`
}

type DatabaseConfig struct {
	DBHost     string `mapstructure:"host"`
	DBPort     string `mapstructure:"port"`
	DBName     string `mapstructure:"name"`
	DBUser     string `mapstructure:"user"`
	DBPassword string `mapstructure:"password"`
	DBSSLMode  string `mapstructure:"ssl_mode"`

	ConnectTimeout        time.Duration `mapstructure:"connect_timeout"`
	PoolMaxConns          int32         `mapstructure:"pool_max_conns"`
	PoolMinConns          int32         `mapstructure:"pool_min_conns"`
	PoolMaxConnLifetime   time.Duration `mapstructure:"pool_max_conn_lifetime"`
	PoolMaxConnIdleTime   time.Duration `mapstructure:"pool_max_conn_idle_time"`
	PoolHealthCheckPeriod time.Duration `mapstructure:"pool_health_check_period"`
}

// DSN renders the keyword/value connection string understood by pgx.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		strings.TrimSpace(c.DBHost),
		strings.TrimSpace(c.DBPort),
		strings.TrimSpace(c.DBUser),
		c.DBPassword,
		strings.TrimSpace(c.DBName),
		strings.TrimSpace(c.DBSSLMode),
	)
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	MatchTTL time.Duration `mapstructure:"match_ttl"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", strings.TrimSpace(c.Host), strings.TrimSpace(c.Port))
}

var (
	errMissingRequiredEnv = errors.New("missing required configuration")
	errInvalidConfig      = errors.New("invalid configuration")
)

var envBindings = map[string]string{
	"app.name":                          "APP_NAME",
	"app.env":                           "APP_ENV",
	"app.http_port":                     "HTTP_PORT",
	"catalog.source":                    "CATALOG_SOURCE",
	"database.host":                     "DB_HOST",
	"database.port":                     "DB_PORT",
	"database.name":                     "DB_NAME",
	"database.user":                     "DB_USER",
	"database.password":                 "DB_PASSWORD",
	"database.ssl_mode":                 "DB_SSL_MODE",
	"database.connect_timeout":          "DB_CONNECT_TIMEOUT",
	"database.pool_max_conns":           "DB_POOL_MAX_CONNS",
	"database.pool_min_conns":           "DB_POOL_MIN_CONNS",
	"database.pool_max_conn_lifetime":   "DB_POOL_MAX_CONN_LIFETIME",
	"database.pool_max_conn_idle_time":  "DB_POOL_MAX_CONN_IDLE_TIME",
	"database.pool_health_check_period": "DB_POOL_HEALTH_CHECK_PERIOD",
	"redis.enabled":                     "REDIS_ENABLED",
	"redis.host":                        "REDIS_HOST",
	"redis.port":                        "REDIS_PORT",
	"redis.password":                    "REDIS_PASSWORD",
	"redis.db":                          "REDIS_DB",
	"redis.match_ttl":                   "MATCH_CACHE_TTL",
}

// Load reads configuration from the environment, an optional .env file and an
// optional config.yaml in the working directory. Environment variables win.
func Load() (Config, error) {
	v, err := newViper()
	if err != nil {
		return Config{}, err
	}
	return load(v)
}

// LoadStores reads the same sources as Load but only requires the database
// keys. It backs careerctl, which talks to the stores and never serves HTTP.
func LoadStores() (Config, error) {
	v, err := newViper()
	if err != nil {
		return Config{}, err
	}
	return loadStores(v)
}

func newViper() (*viper.Viper, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	return v, nil
}

const dotEnvFile = ".env"

// loadDotEnv exports the variables in path without overriding the process
// environment. A missing file is not an error; a malformed one is.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

func load(v *viper.Viper) (Config, error) {
	cfg, err := decode(v)
	if err != nil {
		return Config{}, err
	}

	var missing []string
	req := requireInto(&missing)

	req("app.name", cfg.App.AppName)
	req("app.env", cfg.App.Environment)
	req("app.http_port", cfg.App.HTTPPort)

	switch cfg.Catalog.Source {
	case CatalogSourceStatic:
	case CatalogSourcePostgres:
		requireDatabase(req, cfg.Database)
	default:
		return Config{}, fmt.Errorf("%w: CATALOG_SOURCE must be %q or %q, got %q",
			errInvalidConfig, CatalogSourceStatic, CatalogSourcePostgres, cfg.Catalog.Source)
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func loadStores(v *viper.Viper) (Config, error) {
	cfg, err := decode(v)
	if err != nil {
		return Config{}, err
	}

	var missing []string
	requireDatabase(requireInto(&missing), cfg.Database)
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	return cfg, nil
}

func decode(v *viper.Viper) (Config, error) {
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	trim(&cfg)
	return cfg, nil
}

func requireInto(missing *[]string) func(key, val string) {
	return func(key, val string) {
		if val == "" {
			*missing = append(*missing, envBindings[key])
		}
	}
}

func requireDatabase(req func(key, val string), db DatabaseConfig) {
	req("database.host", db.DBHost)
	req("database.port", db.DBPort)
	req("database.name", db.DBName)
	req("database.user", db.DBUser)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("catalog.source", CatalogSourceStatic)
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.connect_timeout", 5*time.Second)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.match_ttl", 10*time.Minute)
}

func trim(cfg *Config) {
	cfg.App.AppName = strings.TrimSpace(cfg.App.AppName)
	cfg.App.Environment = strings.TrimSpace(cfg.App.Environment)
	cfg.App.HTTPPort = strings.TrimSpace(cfg.App.HTTPPort)
	cfg.Catalog.Source = strings.ToLower(strings.TrimSpace(cfg.Catalog.Source))
	cfg.Database.DBHost = strings.TrimSpace(cfg.Database.DBHost)
	cfg.Database.DBPort = strings.TrimSpace(cfg.Database.DBPort)
	cfg.Database.DBName = strings.TrimSpace(cfg.Database.DBName)
	cfg.Database.DBUser = strings.TrimSpace(cfg.Database.DBUser)
}
