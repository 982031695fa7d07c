package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server   ServerConfig
	Monitor  MonitorConfig
	Storage  StorageConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Mail     MailConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port           string   `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel       string   `envconfig:"LOG_LEVEL" default:"info"`
	LogFile        string   `envconfig:"LOG_FILE" default:"./log/monitor-service.log"`
	LogRotate      bool     `envconfig:"LOG_ROTATE" default:"false"`
	LogMaxSizeMB   int      `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	LogMaxBackups  int      `envconfig:"LOG_MAX_BACKUPS" default:"5"`
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`
}

type MonitorConfig struct {
	ProbeTimeout     time.Duration `envconfig:"PROBE_TIMEOUT" default:"5s"`
	DefaultFrequency time.Duration `envconfig:"DEFAULT_FREQUENCY" default:"1m"`
	ResultBuffer     int           `envconfig:"RESULT_BUFFER" default:"64"`
	PublishQueueSize int           `envconfig:"PUBLISH_QUEUE_SIZE" default:"1024"`
	PublishTimeout   time.Duration `envconfig:"PUBLISH_TIMEOUT" default:"5s"`
	ICMPPrivileged   bool          `envconfig:"ICMP_PRIVILEGED" default:"false"`
	FlushSchedule    string        `envconfig:"STATUS_FLUSH_SCHEDULE" default:"@every 30s"`
}

type StorageConfig struct {
	// Driver is "file" or "postgres".
	Driver     string `envconfig:"STORAGE_DRIVER" default:"file"`
	DataDir    string `envconfig:"DATA_DIR" default:"./data"`
	FileFormat string `envconfig:"DATA_FORMAT" default:"json"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER"`
	Password string `envconfig:"POSTGRES_PASSWORD"`
	DBName   string `envconfig:"POSTGRES_DB"`
	SSLMode  string `envconfig:"POSTGRES_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Host      string        `envconfig:"REDIS_HOST"`
	Port      int           `envconfig:"REDIS_PORT" default:"6379"`
	Password  string        `envconfig:"REDIS_PASSWORD"`
	DB        int           `envconfig:"REDIS_DB" default:"0"`
	StatusTTL time.Duration `envconfig:"REDIS_STATUS_TTL" default:"10m"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"KAFKA_STATUS_TOPIC" default:"monitor-status"`
}

type MailConfig struct {
	Email         string        `envconfig:"MAIL_EMAIL"`
	Password      string        `envconfig:"MAIL_PASSWORD"`
	Host          string        `envconfig:"MAIL_HOST"`
	Port          int           `envconfig:"MAIL_PORT" default:"587"`
	FromName      string        `envconfig:"MAIL_FROM_NAME" default:"Uptime Monitor"`
	AlertEmails   []string      `envconfig:"MAIL_ALERT_EMAILS"`
	AlertInterval time.Duration `envconfig:"MAIL_ALERT_INTERVAL" default:"1m"`
	AlertBurst    int           `envconfig:"MAIL_ALERT_BURST" default:"5"`
	SendTimeout   time.Duration `envconfig:"MAIL_SEND_TIMEOUT" default:"10s"`
}

type AuthConfig struct {
	// An empty secret disables token checks.
	JWTSecret string `envconfig:"AUTH_JWT_SECRET"`
}

func (c PostgresConfig) Enabled() bool {
	return c.Host != ""
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

func (c MailConfig) Enabled() bool {
	return c.Host != "" && len(c.AlertEmails) > 0
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
