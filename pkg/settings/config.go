package settings

// Config is the root configuration for circq.
type Config struct {
	Queue  Queue  `mapstructure:"queue"`
	Server Server `mapstructure:"server"`
	Logger Logger `mapstructure:"logger"`
}

// Queue is the configuration for the bounded queue
type Queue struct {
	Capacity int `mapstructure:"capacity" validate:"gte=1"`
}

// Server is the configuration for the HTTP control surface
type Server struct {
	Mode              string `mapstructure:"mode" validate:"oneof=debug release test"`
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	ReadHeaderTimeout int    `mapstructure:"read_header_timeout" validate:"gte=0"` // Seconds
	ShutdownTimeout   int    `mapstructure:"shutdown_timeout" validate:"gte=0"`    // Seconds
	StatsInterval     int    `mapstructure:"stats_interval" validate:"gte=0"`      // Milliseconds, 0 disables
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"`
	Compress    bool   `mapstructure:"compress"`
}
