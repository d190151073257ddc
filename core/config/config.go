package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"common-utils/core/files"
	"common-utils/core/format"
	"common-utils/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the command line.
// Library functions never read it implicitly; commands pass the relevant section along.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Files holds configuration for file operations (chunk size, permissions).
	Files files.Config `mapstructure:"files"`
	// Format holds the defaults applied by the formatting commands.
	Format format.Config `mapstructure:"format"`
}

// LoadConfig loads configuration from environment variables and the .env file in dir.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	bindDefaults(v, Config{}, "")

	// FILES_CHUNK_SIZE -> files.chunk_size
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the commands cannot act on.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: want console or json", c.Log.Format)
	}
	if c.Files.ChunkSize <= 0 {
		return fmt.Errorf("invalid files chunk size %d: must be positive", c.Files.ChunkSize)
	}
	if _, err := c.Format.Location(); err != nil {
		return err
	}
	return nil
}

// bindDefaults walks the struct and registers every 'mapstructure' key in Viper with
// its 'default' tag value. Nested structs extend the key prefix.
func bindDefaults(v *viper.Viper, iface any, prefix string) {
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
			bindDefaults(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Registered even when empty so AutomaticEnv picks the key up.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
