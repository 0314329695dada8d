package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - empty address/broker values disable the optional integration (cache, kafka, payment gateway)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Shipping ShippingConfig
	Payment  PaymentConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Outbox   OutboxConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host          string `envconfig:"DB_HOST" default:"localhost"`
	Port          string `envconfig:"DB_PORT" default:"5432"`
	User          string `envconfig:"DB_USER" required:"true"`
	Password      string `envconfig:"DB_PASSWORD" required:"true"`
	DBName        string `envconfig:"DB_NAME" required:"true"`
	SSLMode       string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone      string `envconfig:"DB_TIMEZONE" default:"Asia/Hong_Kong"`
	MaxConns      int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate   bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"` // cmd/migrate remains the production path
	MigrationsDir string `envconfig:"DB_MIGRATIONS_DIR" default:"migrations"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Hong_Kong"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

type JWTConfig struct {
	Secret               string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  time.Duration `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration time.Duration `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain        string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure        bool          `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite      string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	SessionMaxAge time.Duration `envconfig:"COOKIE_SESSION_MAX_AGE" default:"720h"`
}

// Amounts are in the smallest currency unit.
type ShippingConfig struct {
	FlatFee       int64 `envconfig:"SHIPPING_FLAT_FEE" default:"5000"`
	FreeThreshold int64 `envconfig:"SHIPPING_FREE_THRESHOLD" default:"50000"`
}

type PaymentConfig struct {
	GatewayURL string        `envconfig:"PAYMENT_GATEWAY_URL" default:""`
	APIKey     string        `envconfig:"PAYMENT_API_KEY" default:""`
	Timeout    time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	Address   string        `envconfig:"REDIS_ADDRESS" default:""`
	Password  string        `envconfig:"REDIS_PASSWORD" default:""`
	DB        int           `envconfig:"REDIS_DB" default:"0"`
	RecordTTL time.Duration `envconfig:"REDIS_RECORD_TTL" default:"10m"`
}

type KafkaConfig struct {
	Brokers    string `envconfig:"KAFKA_BROKERS" default:""`
	OrderTopic string `envconfig:"KAFKA_ORDER_TOPIC" default:"vinyl.orders.notifications"`
}

type OutboxConfig struct {
	PollInterval   time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"5s"`
	BatchSize      int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts    int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"5"`
	RetryBackoff   time.Duration `envconfig:"OUTBOX_RETRY_BACKOFF" default:"30s"`
	PublishTimeout time.Duration `envconfig:"OUTBOX_PUBLISH_TIMEOUT" default:"3s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not loaded", "error", err.Error())
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Hong_Kong",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Hong_Kong",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 28800,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-e2e-only",
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 168 * time.Hour,
		},
		Cookie: CookieConfig{
			SameSite:      "Lax",
			SessionMaxAge: 24 * time.Hour,
		},
		Shipping: ShippingConfig{
			FlatFee:       5000,
			FreeThreshold: 50000,
		},
		Payment: PaymentConfig{
			Timeout: 2 * time.Second,
		},
		Redis: RedisConfig{
			RecordTTL: time.Minute,
		},
		Kafka: KafkaConfig{
			OrderTopic: "vinyl.orders.notifications",
		},
		Outbox: OutboxConfig{
			PollInterval:   time.Hour, // relay is driven manually in tests
			BatchSize:      50,
			MaxAttempts:    3,
			RetryBackoff:   time.Second,
			PublishTimeout: time.Second,
		},
	}
}
