// Package config reads runtime settings from an optional YAML file and the
// environment. Environment variables win over the file; the file wins over
// defaults. A .env file is loaded by the entry points before Load runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverDynamoDB = "dynamodb"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverS3       = "s3"
)

var Drivers = []string{DriverMemory, DriverFile, DriverDynamoDB, DriverPostgres, DriverSQLite, DriverS3}

var ErrUnknownDriver = errors.New("unknown storage driver")

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Log      LogConfig      `yaml:"log"`
	Storage  StorageConfig  `yaml:"storage"`
	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
	Postgres PostgresConfig `yaml:"postgres"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	S3       S3Config       `yaml:"s3"`
	Print    PrintConfig    `yaml:"print"`
}

type HTTPConfig struct {
	Port    string `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	Dir    string `yaml:"dir"`
}

type DynamoDBConfig struct {
	Table           string `yaml:"table"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type PrintConfig struct {
	Delay time.Duration `yaml:"delay"`
}

func Default() *Config {
	return &Config{
		HTTP:    HTTPConfig{Port: "8080", GinMode: "release"},
		Log:     LogConfig{Level: "info", Format: "json"},
		Storage: StorageConfig{Driver: DriverFile, Dir: "data"},
		DynamoDB: DynamoDBConfig{
			Table:           "contract_tracker_kv",
			Region:          "us-east-1",
			AccessKeyID:     "local",
			SecretAccessKey: "local",
		},
		SQLite: SQLiteConfig{Path: "data/contract_tracker.db"},
		S3:     S3Config{Bucket: "contract-tracker", Region: "us-east-1"},
		Print:  PrintConfig{Delay: 250 * time.Millisecond},
	}
}

// Load builds the configuration. CONFIG_FILE, when set, must point to a
// readable YAML file.
func Load() (*Config, error) {
	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.mergeEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() {
	c.HTTP.Port = getenvDefault("HTTP_PORT", c.HTTP.Port)
	c.HTTP.GinMode = getenvDefault("GIN_MODE", c.HTTP.GinMode)
	c.Log.Level = getenvDefault("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getenvDefault("LOG_FORMAT", c.Log.Format)
	c.Storage.Driver = strings.ToLower(getenvDefault("STORAGE_DRIVER", c.Storage.Driver))
	c.Storage.Dir = getenvDefault("STORAGE_DIR", c.Storage.Dir)

	c.DynamoDB.Table = getenvDefault("KV_TABLE", c.DynamoDB.Table)
	c.DynamoDB.Region = getenvDefault("AWS_REGION", c.DynamoDB.Region)
	c.DynamoDB.Endpoint = getenvDefault("DYNAMODB_ENDPOINT", c.DynamoDB.Endpoint)
	c.DynamoDB.AccessKeyID = getenvDefault("AWS_ACCESS_KEY_ID", c.DynamoDB.AccessKeyID)
	c.DynamoDB.SecretAccessKey = getenvDefault("AWS_SECRET_ACCESS_KEY", c.DynamoDB.SecretAccessKey)

	c.Postgres.DSN = getenvDefault("POSTGRES_DSN", c.Postgres.DSN)
	c.SQLite.Path = getenvDefault("SQLITE_PATH", c.SQLite.Path)

	c.S3.Endpoint = getenvDefault("S3_ENDPOINT", c.S3.Endpoint)
	c.S3.AccessKey = getenvDefault("S3_ACCESS_KEY", c.S3.AccessKey)
	c.S3.SecretKey = getenvDefault("S3_SECRET_KEY", c.S3.SecretKey)
	c.S3.Bucket = getenvDefault("S3_BUCKET", c.S3.Bucket)
	c.S3.Region = getenvDefault("S3_REGION", c.S3.Region)
	c.S3.UseSSL = parseBool("S3_USE_SSL", c.S3.UseSSL)

	c.Print.Delay = parseDuration("PRINT_DELAY", c.Print.Delay)
}

// Validate checks the settings the selected driver needs.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverDynamoDB:
	case DriverFile:
		if c.Storage.Dir == "" {
			return errors.New("STORAGE_DIR is required for the file driver")
		}
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return errors.New("POSTGRES_DSN is required for the postgres driver")
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			return errors.New("SQLITE_PATH is required for the sqlite driver")
		}
	case DriverS3:
		if c.S3.Endpoint == "" || c.S3.Bucket == "" {
			return errors.New("S3_ENDPOINT and S3_BUCKET are required for the s3 driver")
		}
	default:
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownDriver, c.Storage.Driver, strings.Join(Drivers, ", "))
	}
	switch c.HTTP.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got %q", c.HTTP.GinMode)
	}
	if c.Print.Delay < 0 {
		return errors.New("PRINT_DELAY must not be negative")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func parseDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
