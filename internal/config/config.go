package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type OrderConfig struct {
	Env          string `yaml:"env" env:"ORDER_ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	GRPCServer   `yaml:"grpc_server"`
	OrderDB      `yaml:"order_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Auth         `yaml:"auth"`
	Background   `yaml:"background"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"9090"`
}

type OrderDB struct {
	// An empty DSN runs the service on the in-memory store.
	Dsn            string `yaml:"dsn" env:"ORDER_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env:"ORDER_DB_MIGRATIONS" env-default:"migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
}

type KafkaService struct {
	Host    string `yaml:"host" env:"KAFKA_HOST"`
	Port    string `yaml:"port" env:"KAFKA_PORT" env-default:"9092"`
	Topic   string `yaml:"topic" env:"KAFKA_ORDER_TOPIC" env-default:"order-events"`
	Enabled bool   `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET"`
}

type Background struct {
	EscrowSweepInterval time.Duration `yaml:"escrow_sweep_interval" env:"ESCROW_SWEEP_INTERVAL" env-default:"1m"`
}

func (k KafkaService) Brokers() []string {
	return []string{fmt.Sprintf("%s:%s", k.Host, k.Port)}
}

func Load(configPath string) (*OrderConfig, error) {
	var cfg OrderConfig
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env config: %w", err)
		}
		return &cfg, cfg.Validate()
	}
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return &cfg, cfg.Validate()
}

func (c *OrderConfig) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if c.KafkaService.Enabled && c.KafkaService.Host == "" {
		return fmt.Errorf("kafka-service.host is required when kafka is enabled")
	}
	if c.Background.EscrowSweepInterval <= 0 {
		return fmt.Errorf("background.escrow_sweep_interval must be positive")
	}
	return nil
}

func MustLoad() *OrderConfig {
	cfg, err := Load(os.Getenv("ORDER_CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v\n", err)
	}
	return cfg
}
