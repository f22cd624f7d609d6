package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownSessionStore         = errors.New("unknown session store")
)

// Session store backends.
const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
	SessionStoreSQLite   = "sqlite"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string  `mapstructure:"env"`            // current application environment (local, dev, production etc)
	QuestionsPath    string  `mapstructure:"questions_path"` // path to JSON file with quiz questions
	TelegramAPIToken string  `mapstructure:"-"`              // optional Telegram API token loaded from environment
	HTTP             HTTP    `mapstructure:"http"`           // HTTP server section
	Session          Session `mapstructure:"session"`        // session storage and cookie section
	Auth             Auth    `mapstructure:"auth"`           // credential seeding section
	DB               DB      `mapstructure:"database"`       // database configuration section
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Session contains session storage and transport parameters.
type Session struct {
	Store        string `mapstructure:"store"`         // memory, postgres or sqlite
	CookieName   string `mapstructure:"cookie_name"`   // name of the session cookie
	CookieSecure bool   `mapstructure:"cookie_secure"` // send the cookie over HTTPS only
	SQLitePath   string `mapstructure:"sqlite_path"`   // database file for the sqlite store
}

// Auth contains credential table parameters.
type Auth struct {
	UsersFile  string `mapstructure:"users_file"`  // TOML file with seeded accounts
	BcryptCost int    `mapstructure:"bcrypt_cost"` // cost used when hashing seeded plaintext passwords
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int32         `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	return load("./config")
}

func load(configPaths ...string) (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("questions_path", "data/questions.json")
	v.SetDefault("http.addr", ":5000")
	v.SetDefault("http.read_timeout", "10s")
	v.SetDefault("http.write_timeout", "10s")
	v.SetDefault("http.shutdown_timeout", "15s")
	v.SetDefault("session.store", SessionStoreMemory)
	v.SetDefault("session.cookie_name", "quiz_session")
	v.SetDefault("session.cookie_secure", false)
	v.SetDefault("session.sqlite_path", "data/sessions.db")
	v.SetDefault("auth.users_file", "config/users.toml")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_conn_lifetime", "30m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	switch cfg.Session.Store {
	case SessionStoreMemory, SessionStoreSQLite:
	case SessionStorePostgres:
		if cfg.DB.URL == "" {
			return nil, ErrMissingEnvironmentVariables
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSessionStore, cfg.Session.Store)
	}

	return &cfg, nil
}
