package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/kyctrust/kyctrust-manager/internal/api/http"
	"github.com/kyctrust/kyctrust-manager/internal/apisrv/admin"
	"github.com/kyctrust/kyctrust-manager/internal/apisrv/frontend"
	"github.com/kyctrust/kyctrust-manager/internal/apisrv/gate"
	"github.com/kyctrust/kyctrust-manager/internal/revalidation"
	"github.com/kyctrust/kyctrust-manager/internal/store"
	"github.com/kyctrust/kyctrust-manager/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB           store.Config        `mapstructure:"mysql"`
	Logger       log.Config          `mapstructure:"logger"`
	HTTP         httpapi.Config      `mapstructure:"http"`
	Gate         gate.Config         `mapstructure:"gate"`
	Admin        admin.Config        `mapstructure:"admin"`
	Frontend     frontend.Config     `mapstructure:"frontend"`
	Revalidation revalidation.Config `mapstructure:"revalidation"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Env vars use underscores and uppercase, e.g., MYSQL_DSN, GATE_COOKIE_MAX_AGE.
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	// Viper will automatically read env vars and override config file values
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	bindEnvVars()

	// Try to read config file (optional - can work with env vars only)
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			// If config file doesn't exist, continue with env vars only
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("$HOME/config/kyctrust-manager")
		viper.AddConfigPath("/etc/kyctrust-manager")
		// Try to read config, but don't fail if it doesn't exist
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Handle MySQL DSN construction from individual env vars if DSN is not set
	if config.DB.DSN == "" {
		mysqlHost := os.Getenv("MYSQL_HOST")
		mysqlPort := os.Getenv("MYSQL_PORT")
		mysqlUser := os.Getenv("MYSQL_USER")
		mysqlPassword := os.Getenv("MYSQL_PASSWORD")
		mysqlDatabase := os.Getenv("MYSQL_DATABASE")

		if mysqlHost != "" {
			if mysqlPort == "" {
				mysqlPort = "3306"
			}
			if mysqlUser != "" && mysqlPassword != "" && mysqlDatabase != "" {
				config.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8&parseTime=true",
					mysqlUser, mysqlPassword, mysqlHost, mysqlPort, mysqlDatabase)
			}
		}
	}

	return &config, nil
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars() {
	// MySQL
	viper.BindEnv("mysql.dsn", "MYSQL_DSN")
	viper.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	viper.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	viper.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.address", "HTTP_ADDRESS")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	viper.BindEnv("http.global_rate_limit", "HTTP_GLOBAL_RATE_LIMIT")
	viper.BindEnv("http.global_rate_window", "HTTP_GLOBAL_RATE_WINDOW")

	// Gate
	viper.BindEnv("gate.password_hasher_salt_size", "GATE_PASSWORD_HASHER_SALT_SIZE")
	viper.BindEnv("gate.password_hasher_iterations", "GATE_PASSWORD_HASHER_ITERATIONS")
	viper.BindEnv("gate.cookie_max_age", "GATE_COOKIE_MAX_AGE")
	viper.BindEnv("gate.unlock_limit", "GATE_UNLOCK_LIMIT")
	viper.BindEnv("gate.unlock_window", "GATE_UNLOCK_WINDOW")
	viper.BindEnv("gate.secure", "GATE_SECURE")

	// Admin
	viper.BindEnv("admin.publish_limit", "ADMIN_PUBLISH_LIMIT")
	viper.BindEnv("admin.publish_window", "ADMIN_PUBLISH_WINDOW")

	// Frontend
	viper.BindEnv("frontend.contact_limit", "FRONTEND_CONTACT_LIMIT")
	viper.BindEnv("frontend.contact_window", "FRONTEND_CONTACT_WINDOW")

	// Revalidation
	viper.BindEnv("revalidation.endpoints", "REVALIDATION_ENDPOINTS")
	viper.BindEnv("revalidation.revalidate_secret", "REVALIDATION_REVALIDATE_SECRET")
	viper.BindEnv("revalidation.http_timeout", "REVALIDATION_HTTP_TIMEOUT")
}
