package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Database struct {
		Path string
	}
	Auth struct {
		JWTSecret string
	}
}

// Load reads configuration from environment variables and an optional config
// file. The database path and signing secret have no defaults; callers are
// expected to fail fast when they are missing.
func Load() (Config, error) {
	// ignore a missing .env, real env vars win either way
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("ACCOUNT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("database.path", "")
	v.SetDefault("auth.jwtsecret", "")

	// unprefixed names kept for parity with earlier deployments
	_ = v.BindEnv("database.path", "ACCOUNT_DATABASE_PATH", "DATABASE")
	_ = v.BindEnv("auth.jwtsecret", "ACCOUNT_AUTH_JWTSECRET", "JWT_SECRET_KEY")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
