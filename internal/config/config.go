package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults applied when the config file omits a key.
const (
	defaultPort      = "8080"
	defaultDBPath    = "kinblog.db"
	defaultUploadDir = "uploads"
	defaultLogLevel  = "info"
	defaultTokenTTL  = 24 * time.Hour
)

// Auth holds token-signing configuration. The signing key is read once at
// startup and never changes for the life of the process.
type Auth struct {
	SigningKey string
	TokenTTL   time.Duration
}

// Config is the process-wide immutable configuration. It is built once in
// main and passed explicitly to the services that need it; nothing reads
// viper after Load returns.
type Config struct {
	Port      string
	DBPath    string
	UploadDir string
	LogLevel  string
	Auth      Auth
}

// Load reads configs/<name>.yml and binds it into a Config. Environment
// variables override file values (KINBLOG_AUTH_SIGNING_KEY etc.).
func Load(path, name string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(name)

	v.SetDefault("port", defaultPort)
	v.SetDefault("db.path", defaultDBPath)
	v.SetDefault("uploads.dir", defaultUploadDir)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("auth.token_ttl", defaultTokenTTL)

	v.SetEnvPrefix("kinblog")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %q: %w", name, err)
	}

	cfg := &Config{
		Port:      v.GetString("port"),
		DBPath:    v.GetString("db.path"),
		UploadDir: v.GetString("uploads.dir"),
		LogLevel:  v.GetString("log.level"),
		Auth: Auth{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
	}

	if cfg.Auth.SigningKey == "" {
		return nil, fmt.Errorf("auth.signing_key is required")
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
	return cfg, nil
}
