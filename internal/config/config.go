package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/DanRulev/finquest.git/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig         `mapstructure:"app" validate:"required"`
	BotToken    string            `mapstructure:"bot_token" validate:"required"`
	DB          DBConfig          `mapstructure:"db" validate:"required"`
	HTTP        HTTPConfig        `mapstructure:"http"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Events      EventsConfig      `mapstructure:"events"`
	Env         string            `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type HTTPConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr" validate:"required_if=Enabled true"`
}

type DBConfig struct {
	Driver     string `mapstructure:"driver" validate:"oneof=postgres sqlite3"`
	SQLitePath string `mapstructure:"sqlite_path" validate:"required_if=Driver sqlite3"`
	Conn       DBConn `mapstructure:"conn"`
	Cfg        DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type LeaderboardConfig struct {
	Limit           int           `mapstructure:"limit" validate:"min=1,max=100"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval" validate:"min=1"`
	Cache           string        `mapstructure:"cache" validate:"oneof=memory redis"`
}

type RedisConfig struct {
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db" validate:"min=0"`
	TTL      time.Duration `mapstructure:"ttl" validate:"min=0"`
}

type EventsConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Queue    string         `mapstructure:"queue" validate:"required_if=Enabled true"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
}

type RabbitMQConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

var envBindings = map[string]string{
	"bot_token":                "BOT_TOKEN",
	"db.driver":                "DB_DRIVER",
	"db.sqlite_path":           "DB_SQLITE_PATH",
	"db.conn.host":             "DB_HOST",
	"db.conn.port":             "DB_PORT",
	"db.conn.user":             "DB_USER",
	"db.conn.password":         "DB_PASSWORD",
	"db.conn.name":             "DB_NAME",
	"db.conn.ssl":              "DB_SSL",
	"redis.host":               "REDIS_HOST",
	"redis.port":               "REDIS_PORT",
	"redis.password":           "REDIS_PASSWORD",
	"events.rabbitmq.host":     "RABBITMQ_HOST",
	"events.rabbitmq.port":     "RABBITMQ_PORT",
	"events.rabbitmq.user":     "RABBITMQ_USER",
	"events.rabbitmq.password": "RABBITMQ_PASSWORD",
}

func Init() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	return Load("configs", configName)
}

// Load reads <dir>/<name>.yaml, applies env overrides and validates the result.
func Load(dir, name string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(dir)
	v.SetConfigName(name)

	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("app.timeout", 10*time.Second)
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.cfg.max_open_conns", 10)
	v.SetDefault("db.cfg.max_idle_conns", 5)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("leaderboard.limit", 10)
	v.SetDefault("leaderboard.refresh_interval", time.Minute)
	v.SetDefault("leaderboard.cache", "memory")
	v.SetDefault("redis.ttl", 5*time.Minute)
	v.SetDefault("events.queue", "lesson_completed")
}
