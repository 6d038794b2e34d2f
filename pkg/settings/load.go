package settings

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	envPrefix = "CIRCQ"

	defaultCapacity   = 5
	defaultServerMode = "release"
	defaultServerHost = "0.0.0.0"
	defaultServerPort = 8080
	defaultReadHeader = 5     // seconds
	defaultShutdown   = 5     // seconds
	defaultStats      = 30000 // milliseconds
	defaultLogLevel   = "info"
	defaultMaxSize    = 100 // megabytes
	defaultMaxBackups = 3
	defaultMaxAge     = 28 // days
)

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("queue.capacity", defaultCapacity)
	v.SetDefault("server.mode", defaultServerMode)
	v.SetDefault("server.host", defaultServerHost)
	v.SetDefault("server.port", defaultServerPort)
	v.SetDefault("server.read_header_timeout", defaultReadHeader)
	v.SetDefault("server.shutdown_timeout", defaultShutdown)
	v.SetDefault("server.stats_interval", defaultStats)
	v.SetDefault("logger.log_level", defaultLogLevel)
	v.SetDefault("logger.file_log_name", "")
	v.SetDefault("logger.max_size", defaultMaxSize)
	v.SetDefault("logger.max_backups", defaultMaxBackups)
	v.SetDefault("logger.max_age", defaultMaxAge)
	v.SetDefault("logger.compress", false)
}

// Load reads configuration from path (YAML, JSON or TOML by extension) and
// CIRCQ_* environment variables, on top of built-in defaults. An empty path
// skips the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config against its struct tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
