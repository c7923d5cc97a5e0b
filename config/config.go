// Package config loads configuration from defaults layered with PULSE_*
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DB      DBConfig      `koanf:"db"`
	Redis   RedisConfig   `koanf:"redis"`
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
}

// DBConfig selects the Postgres store. An empty Host switches the service
// to the in-memory store.
type DBConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
}

// RedisConfig selects the caches. An empty Addr disables them.
type RedisConfig struct {
	Addr string `koanf:"addr"`
	DB   int    `koanf:"db"`
}

type ServerConfig struct {
	Addr string `koanf:"addr"`
}

type LoggingConfig struct {
	Level string `koanf:"level"`
}

func defaultConfig() *Config {
	return &Config{
		DB: DBConfig{
			Host: "",
			Port: 5432,
			User: "pulse",
			Name: "pulse",
		},
		Redis: RedisConfig{
			Addr: "",
			DB:   0,
		},
		Server: ServerConfig{
			Addr: ":3333",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load layers defaults, then PULSE_* environment variables on top.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := k.Load(env.Provider("PULSE_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// envTransform maps PULSE_DB_HOST style variables to config paths. Unknown
// keys map to "" and are skipped, so unrelated environment variables cannot
// leak into the config.
func envTransform(key string) string {
	mappings := map[string]string{
		"db_host":     "db.host",
		"db_port":     "db.port",
		"db_user":     "db.user",
		"db_password": "db.password",
		"db_name":     "db.name",
		"redis_addr":  "redis.addr",
		"redis_db":    "redis.db",
		"server_addr": "server.addr",
		"log_level":   "logging.level",
	}

	key = strings.ToLower(strings.TrimPrefix(key, "PULSE_"))
	return mappings[key]
}

// ConnString renders the pgx connection string for the configured database.
func (c DBConfig) ConnString() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s sslmode=disable host=%s port=%d",
		c.User, c.Password, c.Name, c.Host, c.Port,
	)
}
