package config

import (
	"reflect"
	"strings"

	"receiving-manager/core/database"
	"receiving-manager/core/logger"
	"receiving-manager/core/server"
	"receiving-manager/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application, split into partial
// configurations owned by the packages that consume them.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Database holds configuration for the back-office database connection.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the conference archive bucket.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and a .env file.
// Environment variables use the nested key with underscores, e.g.
// SERVER_PORT maps to server.port and DATABASE_NAME to database.name.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env file is fine (e.g. production, where everything comes
	// from the environment).
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Walk the struct tags to register defaults; registering every key is
	// what makes AutomaticEnv pick them up.
	registerDefaults(v, Config{}, "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// registerDefaults recursively walks the struct and registers the value of the
// 'default' tag in Viper under the dotted key built from 'mapstructure' tags.
func registerDefaults(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Empty defaults still register the key for AutomaticEnv.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
