// Package config loads the process configuration from defaults, an optional
// YAML file and environment variables (in increasing precedence).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"admin_backend/internal/platform/db"
)

type HTTP struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	// CORSOrigins lists the browser origins allowed to call the API. Empty allows all.
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type App struct {
	Name string `mapstructure:"name"`
	// Env is development or production; it selects gin's mode and the log encoder.
	Env  string `mapstructure:"env"`
	HTTP HTTP   `mapstructure:"http"`
}

type Log struct {
	Level      string `mapstructure:"level"`
	JSON       bool   `mapstructure:"json"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type DB struct {
	Driver          string        `mapstructure:"driver"`
	DSN             string        `mapstructure:"dsn"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	InstanceName    string        `mapstructure:"instance_name"`
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	LogLevel        string        `mapstructure:"log_level"`
}

type Redis struct {
	// Enabled turns on the listing cache. Off by default.
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Addr returns host:port.
func (r Redis) Addr() string {
	return r.Host + ":" + r.Port
}

type Validation struct {
	// UserProfile is loose, standard or register; applied to add and update.
	UserProfile string `mapstructure:"user_profile"`
	// ProductProfile is standard or register; applied to add and update.
	ProductProfile string `mapstructure:"product_profile"`
}

type Limits struct {
	// RPS and Burst configure the per-IP token bucket. RPS <= 0 disables it.
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
	// MaxInFlight caps concurrent requests. <= 0 disables it.
	MaxInFlight int64 `mapstructure:"max_in_flight"`
}

type Config struct {
	App        App        `mapstructure:"app"`
	Log        Log        `mapstructure:"log"`
	DB         DB         `mapstructure:"db"`
	Redis      Redis      `mapstructure:"redis"`
	Validation Validation `mapstructure:"validation"`
	Limits     Limits     `mapstructure:"limits"`
}

// legacyEnv maps keys to the unprefixed variable names used by existing deployments.
var legacyEnv = map[string]string{
	"db.user":          "DB_USER",
	"db.password":      "DB_PASSWORD",
	"db.name":          "DB_NAME",
	"db.host":          "DB_HOST",
	"db.port":          "DB_PORT",
	"db.instance_name": "INSTANCE_CONNECTION_NAME",
	"redis.host":       "REDIS_HOST",
	"redis.port":       "REDIS_PORT",
	"redis.password":   "REDIS_PASSWORD",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "admin-backend")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.http.addr", ":8080")
	v.SetDefault("app.http.read_timeout", 10*time.Second)
	v.SetDefault("app.http.write_timeout", 15*time.Second)
	v.SetDefault("app.http.idle_timeout", 60*time.Second)
	v.SetDefault("app.http.shutdown_timeout", 10*time.Second)
	v.SetDefault("app.http.max_body_bytes", 1<<20)
	v.SetDefault("app.http.cors_origins", []string{})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "admin")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", "3306")
	v.SetDefault("db.instance_name", "")
	v.SetDefault("db.path", "./admin.db")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", time.Hour)
	v.SetDefault("db.connect_timeout", 60*time.Second)
	v.SetDefault("db.auto_migrate", true)
	v.SetDefault("db.log_level", "warn")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 30*time.Second)

	v.SetDefault("validation.user_profile", "standard")
	v.SetDefault("validation.product_profile", "standard")

	v.SetDefault("limits.rps", 20.0)
	v.SetDefault("limits.burst", 40)
	v.SetDefault("limits.max_in_flight", 64)
}

// Load reads the configuration. path may be empty, in which case only
// defaults and environment variables are used. Environment variables use the
// APP_ prefix with "." replaced by "_" (e.g. APP_DB_DRIVER).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		envKey := "APP_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envKey, legacy); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	var errs []error
	switch c.DB.Driver {
	case db.DriverMySQL, db.DriverPostgres, db.DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("db.driver: unsupported value %q", c.DB.Driver))
	}
	if c.App.HTTP.Addr == "" {
		errs = append(errs, errors.New("app.http.addr: must not be empty"))
	}
	if c.Redis.Enabled && c.Redis.Host == "" {
		errs = append(errs, errors.New("redis.host: required when redis.enabled"))
	}
	return errors.Join(errs...)
}

// DBConfig converts the db section into the connection settings of package db.
func (c *Config) DBConfig() db.Config {
	return db.Config{
		Driver:          c.DB.Driver,
		DSN:             c.DB.DSN,
		User:            c.DB.User,
		Password:        c.DB.Password,
		Name:            c.DB.Name,
		Host:            c.DB.Host,
		Port:            c.DB.Port,
		InstanceName:    c.DB.InstanceName,
		Path:            c.DB.Path,
		MaxOpenConns:    c.DB.MaxOpenConns,
		MaxIdleConns:    c.DB.MaxIdleConns,
		ConnMaxLifetime: c.DB.ConnMaxLifetime,
		ConnectTimeout:  c.DB.ConnectTimeout,
		LogLevel:        c.DB.LogLevel,
	}
}

// IsProduction reports whether app.env is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}
