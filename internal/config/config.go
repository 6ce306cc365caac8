package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "CATALOG_CONFIG_FILE"

// Store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type AppConfig struct {
	Port string `mapstructure:"port"`
}

type StoreConfig struct {
	Driver   string `mapstructure:"driver"`
	URI      string `mapstructure:"uri"`      // MongoDB connection string
	Database string `mapstructure:"database"` // MongoDB database name
	DSN      string `mapstructure:"dsn"`      // PostgreSQL DSN or SQLite path
}

type RabbitMQConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

// Config is the service configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Store    StoreConfig    `mapstructure:"store"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
}

// Load reads the configuration from defaults, an optional .env file, an
// optional config file and the environment, the latter taking precedence.
// Environment keys are the upper-cased paths with dots replaced by
// underscores, e.g. STORE_DRIVER.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := configFilepath(args); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", ":4000")
	v.SetDefault("store.driver", DriverMongo)
	v.SetDefault("store.uri", "mongodb://localhost:27017")
	v.SetDefault("store.database", "vogue")
	v.SetDefault("store.dsn", "")
	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("rabbitmq.exchange", "catalog")
}

// Validate reports configuration that cannot be used to start the service.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMongo:
		if c.Store.URI == "" || c.Store.Database == "" {
			return fmt.Errorf("store.uri and store.database are required for the %s driver", DriverMongo)
		}
	case DriverPostgres, DriverSQLite:
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required for the %s driver", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}

// configFilepath returns the --config flag value, overridden by
// CATALOG_CONFIG_FILE. Empty means no config file.
func configFilepath(args []string) string {
	cmdLine := pflag.NewFlagSet("catalog", pflag.ContinueOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(args)
	if env, ok := os.LookupEnv(configFileEnvName); ok {
		return env
	}
	return *arg
}
