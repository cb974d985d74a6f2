package config

import (
	"fmt"
	"strings"

	apperrors "resource-manager-backend/internal/errors"

	"github.com/spf13/viper"
)

// Storage backends
const (
	StorageDatabase = "database"
	StorageFile     = "file"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Log file rotation, disabled when LOG_FILE is empty
	LogFile        string `mapstructure:"LOG_FILE"`
	LogMaxSizeMB   int    `mapstructure:"LOG_MAX_SIZE_MB"`
	LogMaxBackups  int    `mapstructure:"LOG_MAX_BACKUPS"`
	LogMaxAgeDays  int    `mapstructure:"LOG_MAX_AGE_DAYS"`
	LogCompression bool   `mapstructure:"LOG_COMPRESS"`

	// Storage selection
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`
	DataFile       string `mapstructure:"DATA_FILE"`

	// Database configuration
	DatabaseDriver   string   `mapstructure:"DB_DRIVER"`
	DatabaseURL      string   `mapstructure:"DATABASE_URL"`
	DatabaseHost     string   `mapstructure:"DB_HOST"`
	DatabasePort     string   `mapstructure:"DB_PORT"`
	DatabaseUser     string   `mapstructure:"DB_USER"`
	DatabasePassword string   `mapstructure:"DB_PASSWORD"`
	DatabaseName     string   `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string   `mapstructure:"DB_SSL_MODE"`
	SQLitePath       string   `mapstructure:"SQLITE_PATH"`
	ReplicaURLs      []string `mapstructure:"DB_REPLICA_URLS"`
	MaxOpenConns     int      `mapstructure:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns     int      `mapstructure:"DB_MAX_IDLE_CONNS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Scheduled snapshots, disabled when BACKUP_SCHEDULE is empty
	BackupSchedule  string `mapstructure:"BACKUP_SCHEDULE"`
	BackupDir       string `mapstructure:"BACKUP_DIR"`
	BackupRetention int    `mapstructure:"BACKUP_RETENTION"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Comma separated lists arrive as one element when set through the environment
	config.AllowedOrigins = splitList(config.AllowedOrigins)
	config.ReplicaURLs = splitList(config.ReplicaURLs)

	config.StorageBackend = strings.ToLower(strings.TrimSpace(config.StorageBackend))
	config.DatabaseDriver = strings.ToLower(strings.TrimSpace(config.DatabaseDriver))

	// Build database URL if not provided
	if config.DatabaseURL == "" && config.DatabaseDriver == DriverPostgres {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// Log rotation defaults
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_MAX_SIZE_MB", 10)
	v.SetDefault("LOG_MAX_BACKUPS", 3)
	v.SetDefault("LOG_MAX_AGE_DAYS", 28)
	v.SetDefault("LOG_COMPRESS", true)

	// Storage defaults
	v.SetDefault("STORAGE_BACKEND", StorageDatabase)
	v.SetDefault("DATA_FILE", "public/it-resource-manager-backup.json")

	// Database defaults
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "resource_manager")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("SQLITE_PATH", "it_resource_manager.db")
	v.SetDefault("DB_REPLICA_URLS", []string{})
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Snapshot defaults
	v.SetDefault("BACKUP_SCHEDULE", "")
	v.SetDefault("BACKUP_DIR", "backups")
	v.SetDefault("BACKUP_RETENTION", 7)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func validate(config *Config) error {
	switch config.StorageBackend {
	case StorageDatabase:
		switch config.DatabaseDriver {
		case DriverPostgres:
			if config.DatabaseURL == "" && config.DatabaseName == "" {
				return fmt.Errorf("database name is required")
			}
		case DriverSQLite:
			if config.SQLitePath == "" {
				return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
			}
		default:
			return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedDBDriver, config.DatabaseDriver)
		}
	case StorageFile:
		if config.DataFile == "" {
			return fmt.Errorf("DATA_FILE is required for the file backend")
		}
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedStorage, config.StorageBackend)
	}

	if config.BackupSchedule != "" && config.BackupRetention < 1 {
		return fmt.Errorf("BACKUP_RETENTION must be at least 1")
	}

	return nil
}

// DSN returns the connection string for the configured database driver
func (c *Config) DSN() string {
	if c.DatabaseDriver == DriverSQLite {
		return c.SQLitePath
	}
	return c.DatabaseURL
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
