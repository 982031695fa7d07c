package status_consumer

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Kafka    KafkaConfig
}

type ServerConfig struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE" default:"./log/status-consumer.log"`
}

type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     int    `envconfig:"POSTGRES_PORT" required:"true"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DB" required:"true"`
	SSLMode  string `envconfig:"POSTGRES_SSL_MODE" default:"disable"`
}

type KafkaConfig struct {
	Brokers         []string `envconfig:"KAFKA_BROKERS" required:"true"`
	ConsumerTopic   string   `envconfig:"KAFKA_STATUS_TOPIC" default:"monitor-status"`
	ConsumerGroupID string   `envconfig:"KAFKA_CONSUMER_GROUP_ID" default:"status-consumer"`
	ConsumerCnt     int      `envconfig:"KAFKA_CONSUMER_CNT" default:"1"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
