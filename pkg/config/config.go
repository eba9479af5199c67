package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// Config is the top-level application configuration.
type Config struct {
	Server          ServerConfig          `mapstructure:"server"`
	Database        DatabaseConfig        `mapstructure:"database"`
	Redis           RedisConfig           `mapstructure:"redis"`
	Queue           QueueConfig           `mapstructure:"queue"`
	Kafka           KafkaConfig           `mapstructure:"kafka"`
	Log             LogConfig             `mapstructure:"log"`
	ServiceRegistry ServiceRegistryConfig `mapstructure:"service_registry"`
	Profiling       ProfilingConfig       `mapstructure:"profiling"`
}

// ServerConfig HTTP server configuration.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig MySQL configuration.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	Charset         string        `mapstructure:"charset"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// RedisConfig Redis connection configuration. The push retry policy is
// intentionally not configurable here; see pkg/redisclient.
type RedisConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Username     string        `mapstructure:"username"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	EnableTLS    bool          `mapstructure:"enable_tls"`
}

// QueueConfig controls the VMAF job hand-off. ProcessorVersion selects the
// wire shape the downstream worker expects and is fixed per deployment.
type QueueConfig struct {
	ProcessorVersion string        `mapstructure:"processor_version"`
	V1Name           string        `mapstructure:"v1_name"`
	V2Name           string        `mapstructure:"v2_name"`
	BlpopTimeout     time.Duration `mapstructure:"blpop_timeout"`
}

// KafkaConfig optional video-created event stream.
type KafkaConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	BootstrapServers []string `mapstructure:"bootstrap_servers"`
	ClientID         string   `mapstructure:"client_id"`
	VideoCreatedTopic string  `mapstructure:"video_created_topic"`
}

// LogConfig logging configuration.
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	Filename string `mapstructure:"filename"`
}

// ServiceRegistryConfig etcd registration configuration.
type ServiceRegistryConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Endpoints       []string      `mapstructure:"endpoints"`
	ServiceName     string        `mapstructure:"service_name"`
	ServiceID       string        `mapstructure:"service_id"`
	RegisterHost    string        `mapstructure:"register_host"`
	DialTimeout     time.Duration `mapstructure:"dial_timeout"`
	TTL             time.Duration `mapstructure:"ttl"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

// ProfilingConfig pyroscope continuous profiling.
type ProfilingConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	ServerAddress string `mapstructure:"server_address"`
}

var (
	globalMu     sync.RWMutex
	globalConfig *Config
)

// SetGlobalConfig stores the process-wide configuration. Must be called
// before any resource is opened.
func SetGlobalConfig(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// GetGlobalConfig returns the process-wide configuration, nil before startup.
func GetGlobalConfig() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig
}

// Load reads the yaml configuration file and applies environment overrides.
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("queue.processor_version", "v1")
	viper.SetDefault("queue.v1_name", "queue:vmaf_jobs")
	viper.SetDefault("queue.v2_name", "queue:vmaf_jobs:v2")
	viper.SetDefault("queue.blpop_timeout", 20*time.Second)
	viper.SetDefault("kafka.enabled", false)
	viper.SetDefault("kafka.client_id", "highlight-vmaf-service")
	viper.SetDefault("kafka.bootstrap_servers", []string{"localhost:29092"})
	viper.SetDefault("kafka.video_created_topic", "video.created")
	viper.SetDefault("service_registry.enabled", false)
	viper.SetDefault("service_registry.service_name", "highlight-vmaf-service")

	viper.SetEnvPrefix("HIGHLIGHT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.normalize()

	return &config, nil
}

// normalize fills in defaults that viper cannot express per field.
func (c *Config) normalize() {
	if c.Database.Charset == "" {
		c.Database.Charset = "utf8mb4"
	}
	if c.Database.MaxIdleConns <= 0 {
		c.Database.MaxIdleConns = 2
	}
	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = time.Hour
	}
	if c.Redis.PoolSize <= 0 {
		c.Redis.PoolSize = 50
	}
	if c.Queue.ProcessorVersion != "v1" && c.Queue.ProcessorVersion != "v2" {
		c.Queue.ProcessorVersion = "v1"
	}
	if c.Queue.BlpopTimeout < 0 {
		c.Queue.BlpopTimeout = 0
	}
	if c.ServiceRegistry.ServiceID == "" {
		c.ServiceRegistry.ServiceID = uuid.NewString()
	}
	if c.ServiceRegistry.TTL == 0 {
		c.ServiceRegistry.TTL = 30 * time.Second
	}
	if c.ServiceRegistry.RefreshInterval == 0 {
		c.ServiceRegistry.RefreshInterval = 10 * time.Second
	}
	if c.ServiceRegistry.DialTimeout == 0 {
		c.ServiceRegistry.DialTimeout = 5 * time.Second
	}
	if len(c.Kafka.BootstrapServers) == 0 {
		c.Kafka.BootstrapServers = []string{"localhost:29092"}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// QueueName returns the queue matching the configured processor version.
func (c *QueueConfig) QueueName() string {
	if c.ProcessorVersion == "v2" {
		return c.V2Name
	}
	return c.V1Name
}

// GetDSN builds the MySQL connection string.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		c.Username, c.Password, c.Host, c.Port, c.Database, c.Charset)
}

// GetRedisAddr returns the host:port Redis address.
func (c *RedisConfig) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
