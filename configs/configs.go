package configs

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// InsecureFallbackSecret signs tokens when no explicit secret is configured.
// It is public by definition; startup warns loudly whenever it is in use.
const InsecureFallbackSecret = "socketboard-insecure-dev-secret"

var (
	config *Config
	once   sync.Once
)

type Config struct {
	Viper *viper.Viper
}

func GetConfig() *Config {
	once.Do(func() {
		config = &Config{
			Viper: initialize(),
		}
	})
	return config
}

func initialize() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)

	v.SetDefault("log.level", "info")

	v.SetDefault("jwt.secret", InsecureFallbackSecret)
	v.SetDefault("jwt.expiration_time", 3600)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "socketboard")
	v.SetDefault("database.ssl", "disable")
	v.SetDefault("database.timezone", "UTC")

	v.SetDefault("redis.addr", "localhost:6379")

	v.SetDefault("minio.enabled", false)
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.external_endpoint", "localhost:9000")
	v.SetDefault("minio.access_key_id", "")
	v.SetDefault("minio.secret_access_key", "")
	v.SetDefault("minio.use_ssl", false)

	// SERVER_PORT, JWT_SECRET, DATABASE_HOST, ...
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("configs")
	// A config file is optional; env vars and defaults cover everything.
	_ = v.ReadInConfig()

	return v
}

func (c *Config) JwtKey() []byte {
	return []byte(c.Viper.GetString("jwt.secret"))
}

// UsingInsecureSecret reports whether the baked-in fallback secret is active.
func (c *Config) UsingInsecureSecret() bool {
	return c.Viper.GetString("jwt.secret") == InsecureFallbackSecret
}
