package config

import (
	"time"

	"library-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig maps the app config onto the pool configuration,
// filling in lifecycle defaults the env does not need to control.
func LoadDatabaseConfig(cfg *Config) *database.DBConfig {
	return &database.DBConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		Username: cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Database,
		SSLMode:  cfg.Database.SSLMode,

		MaxConns:          int32(cfg.Database.MaxConns),
		MinConns:          int32(cfg.Database.MinConns),
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: time.Minute,

		MaxRetries:     5,
		RetryDelay:     time.Second,
		ConnectTimeout: 10 * time.Second,
	}
}
