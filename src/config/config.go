package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Service   ServiceConfig   `mapstructure:"service"`
	Databases DatabasesConfig `mapstructure:"databases"`
	Secrets   SecretsConfig   `mapstructure:"secrets"`
	App       AppConfig       `mapstructure:"app"`
}

type ServiceConfig struct {
	Port           string        `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"readTimeout"`
	WriteTimeout   time.Duration `mapstructure:"writeTimeout"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"`
	AllowedOrigins []string      `mapstructure:"allowedOrigins"`
	LogLevel       string        `mapstructure:"logLevel"`
	LogFile        string        `mapstructure:"logFile"`
}

type DatabasesConfig struct {
	SQL SQLConfig `mapstructure:"sql"`
}

// SQLConfig holds both backends. PostgresURL wins whenever it is set.
type SQLConfig struct {
	PostgresURL     string        `mapstructure:"postgresUrl"`
	SQLitePath      string        `mapstructure:"sqlitePath"`
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
}

type SecretsConfig struct {
	AWS AWSSecretsConfig `mapstructure:"aws"`
}

type AWSSecretsConfig struct {
	Region              string `mapstructure:"region"`
	PostgresURLSecretID string `mapstructure:"postgresUrlSecretId"`
}

type AppConfig struct {
	Title string `mapstructure:"title"`
}

const (
	PostgresURLEnv = "POSTGRES_URL"
	DefaultSQLite  = "data/crm.db"
)

// LoadConfig reads settings/appsettings.yaml and, when env is set, merges
// appsettings.<env>.yaml on top. Environment variables win over both files.
func LoadConfig(path string, env string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("appsettings")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	if env != "" {
		v.SetConfigName("appsettings." + env)
		if err := v.MergeInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading %s config: %w", env, err)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("databases.sql.postgresUrl", PostgresURLEnv)
	_ = v.BindEnv("service.port", "PORT")
	_ = v.BindEnv("service.logLevel", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Databases.SQL.PostgresURL = strings.TrimSpace(cfg.Databases.SQL.PostgresURL)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.port", "8000")
	v.SetDefault("service.readTimeout", 30*time.Second)
	v.SetDefault("service.writeTimeout", 30*time.Second)
	v.SetDefault("service.requestTimeout", 10*time.Second)
	v.SetDefault("service.allowedOrigins", []string{"*"})
	v.SetDefault("service.logLevel", "info")
	v.SetDefault("databases.sql.sqlitePath", DefaultSQLite)
	v.SetDefault("databases.sql.autoMigrate", true)
	v.SetDefault("databases.sql.maxOpenConns", 10)
	v.SetDefault("databases.sql.maxIdleConns", 5)
	v.SetDefault("databases.sql.connMaxLifetime", 5*time.Minute)
	v.SetDefault("app.title", "Rockland Concrete CRM")
}

func validateConfig(cfg *Config) error {
	if cfg.Service.Port == "" {
		return fmt.Errorf("service.port is required")
	}
	if cfg.Databases.SQL.PostgresURL == "" && cfg.Databases.SQL.SQLitePath == "" {
		return fmt.Errorf("either %s or databases.sql.sqlitePath must be set", PostgresURLEnv)
	}
	if cfg.Service.RequestTimeout <= 0 {
		return fmt.Errorf("service.requestTimeout must be positive")
	}
	return nil
}

// loadEnvFile loads the first .env found from the working directory up to
// the module root. Variables already present in the environment are kept.
func loadEnvFile() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err == nil {
			_ = godotenv.Load(candidate)
			return
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
