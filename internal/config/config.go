package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service   Service
	Postgres  Postgres
	Kafka     Kafka
	Roster    Roster
	Logger    Logger
	Metrics   Metrics
	Platform  Platform
	Messenger Messenger
}

type Service struct {
	Port string `env:"MESSENGER_SERVICE_PORT"`
	Name string `env:"MESSENGER_SERVICE_NAME" env-default:"messenger-service"`
}

type Postgres struct {
	User     string `env:"MESSENGER_SERVICE_POSTGRES_USER"`
	Password string `env:"MESSENGER_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"MESSENGER_SERVICE_POSTGRES_DB"`
	Host     string `env:"MESSENGER_SERVICE_POSTGRES_HOST"`
	Port     string `env:"MESSENGER_SERVICE_POSTGRES_PORT"`
}

type Kafka struct {
	Host              string `env:"KAFKA_HOST"`
	Port              string `env:"KAFKA_PORT"`
	UserTopic         string `env:"KAFKA_USER_TOPIC"`
	NotificationTopic string `env:"KAFKA_NOTIFICATION_TOPIC"`
}

type Roster struct {
	BaseURL string        `env:"ROSTER_SERVICE_BASE_URL"`
	Timeout time.Duration `env:"ROSTER_SERVICE_TIMEOUT" env-default:"3s"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type Platform struct {
	Env       string `env:"ENV"`
	JWTSecret string `env:"JWT_SECRET"`
}

type Messenger struct {
	TypingWindow time.Duration `env:"MESSENGER_SERVICE_TYPING_WINDOW" env-default:"1s"`
	EventBuffer  int           `env:"MESSENGER_SERVICE_EVENT_BUFFER" env-default:"64"`
}

func MustLoad() *Config {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	return cfg
}
