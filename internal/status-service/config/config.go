package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server  ServerConfig
	Monitor MonitorConfig
	SSO     SSOConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Mail    MailConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE" default:"./log/status-service.log"`
	Version  string `envconfig:"VERSION" default:"2.0.0"`

	// Origins allowed to open /api/ws besides the serving host itself.
	AllowedOrigins []string `envconfig:"WS_ALLOWED_ORIGINS" default:"https://status.orcest.ai"`
}

type MonitorConfig struct {
	RegistryFile        string        `envconfig:"REGISTRY_FILE"`
	ProbeTimeout        time.Duration `envconfig:"PROBE_TIMEOUT" default:"10s"`
	ProbeConcurrency    int           `envconfig:"PROBE_CONCURRENCY" default:"0"`
	CacheTTL            time.Duration `envconfig:"CACHE_TTL" default:"30s"`
	UptimeCountDegraded bool          `envconfig:"UPTIME_COUNT_DEGRADED" default:"true"`
	RefreshSchedule     string        `envconfig:"REFRESH_SCHEDULE" default:"@every 30s"`
	StreamInterval      time.Duration `envconfig:"STREAM_INTERVAL" default:"15s"`
}

type SSOConfig struct {
	Enabled      bool          `envconfig:"SSO_ENABLED" default:"true"`
	Issuer       string        `envconfig:"SSO_ISSUER" default:"https://login.orcest.ai"`
	ClientID     string        `envconfig:"SSO_CLIENT_ID" default:"status"`
	ClientSecret string        `envconfig:"SSO_CLIENT_SECRET"`
	CallbackURL  string        `envconfig:"SSO_CALLBACK_URL" default:"https://status.orcest.ai/auth/callback"`
	JWTSecret    string        `envconfig:"SSO_JWT_SECRET"`
	VerifyTTL    time.Duration `envconfig:"SSO_VERIFY_CACHE_TTL" default:"5m"`
	Timeout      time.Duration `envconfig:"SSO_TIMEOUT" default:"10s"`
}

// RedisConfig is optional, an empty host disables the verification cache.
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"KAFKA_STATUS_TOPIC" default:"service-status-changes"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type MailConfig struct {
	Email            string `envconfig:"MAIL_EMAIL"`
	Password         string `envconfig:"MAIL_PASSWORD"`
	Host             string `envconfig:"MAIL_HOST"`
	Port             int    `envconfig:"MAIL_PORT" default:"587"`
	AdminMailAddress string `envconfig:"MAIL_ADMIN_EMAIL"`
	ReportSchedule   string `envconfig:"REPORT_SCHEDULE" default:"0 0 * * *"`
}

func (m MailConfig) Enabled() bool {
	return m.Host != "" && m.AdminMailAddress != ""
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
