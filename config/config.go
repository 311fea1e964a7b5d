package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Name        string
	Version     string
	LogLevel    string
	HTTP        HTTPConfig
	Postgres    PostgresConfig
	JWT         JWTConfig
	Admin       AdminConfig
	S3          S3Config
	Redis       RedisConfig
	Booking     BookingConfig
	Snapshot    SnapshotConfig
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxHeaderMB  int
}

type PostgresConfig struct {
	Host               string
	Port               string
	Username           string
	Password           string
	DBName             string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	MaxLifetime        time.Duration
	MigrationsDir      string
}

type JWTConfig struct {
	SigningKey      string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// AdminConfig describes the single operator account of the admin dashboard.
// PasswordHash is an argon2id hash produced by pkg/auth.HashPassword.
type AdminConfig struct {
	Login        string
	PasswordHash string
}

type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
}

type RedisConfig struct {
	Addr               string
	Password           string
	DB                 int
	RateLimitPerMinute int
}

type BookingConfig struct {
	Timezone        string
	Location        *time.Location
	DefaultDuration int
	MaxHorizonDays  int
	ContactPhone    string
}

type SnapshotConfig struct {
	Schedule  string
	ObjectKey string
}

func NewConfig() (*Config, error) {
	// .env is optional; real deployments pass the environment directly
	_ = godotenv.Load()

	httpReadTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	httpWriteTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	postgresMaxLifetime, err := time.ParseDuration(getEnv("POSTGRES_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, err
	}

	jwtAccessTokenTTL, err := time.ParseDuration(getEnv("JWT_ACCESS_TOKEN_TTL", "15m"))
	if err != nil {
		return nil, err
	}

	jwtRefreshTokenTTL, err := time.ParseDuration(getEnv("JWT_REFRESH_TOKEN_TTL", "24h"))
	if err != nil {
		return nil, err
	}

	timezone := getEnv("BOOKING_TIMEZONE", "Asia/Seoul")
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", timezone, err)
	}

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Name:        getEnv("APP_NAME", "masgolf-booking"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		HTTP: HTTPConfig{
			Port:         getEnv("HTTP_PORT", "8080"),
			ReadTimeout:  httpReadTimeout,
			WriteTimeout: httpWriteTimeout,
			MaxHeaderMB:  getEnvAsInt("HTTP_MAX_HEADER_MB", 1),
		},
		Postgres: PostgresConfig{
			Host:               getEnv("POSTGRES_HOST", "localhost"),
			Port:               getEnv("POSTGRES_PORT", "5432"),
			Username:           getEnv("POSTGRES_USER", "postgres"),
			Password:           getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:             getEnv("POSTGRES_DB", "masgolf"),
			SSLMode:            getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConnections:     getEnvAsInt("POSTGRES_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("POSTGRES_MAX_IDLE_CONNECTIONS", 2),
			MaxLifetime:        postgresMaxLifetime,
			MigrationsDir:      getEnv("POSTGRES_MIGRATIONS_DIR", "./migrations"),
		},
		JWT: JWTConfig{
			SigningKey:      getEnv("JWT_SIGNING_KEY", "your_secret_key"),
			AccessTokenTTL:  jwtAccessTokenTTL,
			RefreshTokenTTL: jwtRefreshTokenTTL,
		},
		Admin: AdminConfig{
			Login:        getEnv("ADMIN_LOGIN", "admin"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		S3: S3Config{
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			Region:          getEnv("S3_REGION", "ap-northeast-2"),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			Bucket:          getEnv("S3_BUCKET", "masgolf"),
			UseSSL:          getEnvAsBool("S3_USE_SSL", true),
		},
		Redis: RedisConfig{
			Addr:               getEnv("REDIS_ADDR", ""),
			Password:           getEnv("REDIS_PASSWORD", ""),
			DB:                 getEnvAsInt("REDIS_DB", 0),
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		},
		Booking: BookingConfig{
			Timezone:        timezone,
			Location:        location,
			DefaultDuration: getEnvAsInt("BOOKING_DEFAULT_DURATION", 60),
			MaxHorizonDays:  getEnvAsInt("BOOKING_MAX_HORIZON_DAYS", 90),
			ContactPhone:    getEnv("BOOKING_CONTACT_PHONE", "080-028-8888"),
		},
		Snapshot: SnapshotConfig{
			Schedule:  getEnv("SNAPSHOT_CRON", "@every 15m"),
			ObjectKey: getEnv("SNAPSHOT_OBJECT_KEY", "availability/next-available.json"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value := 0
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
