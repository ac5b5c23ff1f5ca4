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

// EnvPrefix scopes every environment variable read by the server.
const EnvPrefix = "PORTAL"

// Config holds the application configuration
type Config struct {
	// Database connection string (DSN). Postgres URLs select pgdriver,
	// anything else is opened with SQLite.
	DatabaseURL string

	// Server bind address (host:port)
	ServerAddr string

	// Public base URL, also used as the token issuer when none is set
	ServerURL string

	// Maximum database connection pool size
	MaxDBConnections int

	// Enable debug logging
	Debug bool

	Token TokenConfig

	// Browser origins allowed by the CORS policy
	AllowedOrigins []string

	// Identity promoted to admin at startup, e.g. user:alice
	BootstrapAdmin string

	// Size of the identity to role cache
	RoleCacheSize int
}

// TokenConfig configures the HS256 development tokens.
type TokenConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database_url", "file:portal.db?_pragma=busy_timeout(5000)")
	v.SetDefault("server_addr", "localhost:8080")
	v.SetDefault("server_url", "http://localhost:8080")
	v.SetDefault("max_db_connections", 25)
	v.SetDefault("debug", false)
	v.SetDefault("token.secret", "")
	v.SetDefault("token.issuer", "")
	v.SetDefault("token.ttl", "12h")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173", "http://127.0.0.1:5173"})
	v.SetDefault("bootstrap_admin", "")
	v.SetDefault("role_cache_size", 1024)
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from the global viper instance: config file
// values, then PORTAL_ environment variables, then defaults.
func Load() (*Config, error) {
	v := viper.GetViper()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		DatabaseURL:      v.GetString("database_url"),
		ServerAddr:       v.GetString("server_addr"),
		ServerURL:        v.GetString("server_url"),
		MaxDBConnections: v.GetInt("max_db_connections"),
		Debug:            v.GetBool("debug"),
		Token: TokenConfig{
			Secret: v.GetString("token.secret"),
			Issuer: v.GetString("token.issuer"),
			TTL:    v.GetDuration("token.ttl"),
		},
		AllowedOrigins: splitList(v.GetStringSlice("cors.allowed_origins")),
		BootstrapAdmin: v.GetString("bootstrap_admin"),
		RoleCacheSize:  v.GetInt("role_cache_size"),
	}

	if cfg.Token.Issuer == "" {
		cfg.Token.Issuer = cfg.ServerURL
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PORTAL_DATABASE_URL is required")
	}
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("PORTAL_SERVER_URL is required")
	}
	if cfg.Token.TTL <= 0 {
		return nil, fmt.Errorf("PORTAL_TOKEN_TTL must be positive")
	}

	return cfg, nil
}

// splitList flattens comma separated entries; env values arrive as one string.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
