package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `env:"ENV" env-default:"local"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Store      Store
	Database   Database
	Cache      Cache
	Limiter    Limiter
	Auth       AuthConfig
	Admin      AdminSeed
	SMTP       SMTPConfig
	Email      EmailConfig
}

type HttpServer struct {
	Port        string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout     time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Store struct {
	// Driver selects the record store backend: memory, redis or mysql.
	Driver string `env:"STORE_DRIVER" env-default:"redis"`
	// RedisKey is the single key the whole record list lives under when the
	// redis driver is active.
	RedisKey string `env:"STORE_REDIS_KEY" env-default:"userData"`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-default:""`
	DBName             string        `env:"DB_NAME" env-default:""`
	User               string        `env:"DB_USER" env-default:""`
	Password           string        `env:"DB_PASSWORD" env-default:""`
	TimeZone           string        `env:"DB_TIMEZONE"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
}

type Cache struct {
	Type  string `env:"REDIS_TYPE" env-default:"redis" env-description:"specifies provider, one of redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"localhost:6379" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type AuthConfig struct {
	JWT JWTConfig
}

type JWTConfig struct {
	AccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL" env-default:"15m"`
	SigningKey     string        `env:"JWT_SIGNING_KEY" env-required:"true"`
}

// AdminSeed describes the out-of-band admin record created at startup when
// the store has none. Seeding is skipped when the password is empty.
type AdminSeed struct {
	UserName string `env:"ADMIN_USERNAME" env-default:"admin"`
	Password string `env:"ADMIN_PASSWORD" env-default:""`
	Email    string `env:"ADMIN_EMAIL" env-default:""`
}

type SMTPConfig struct {
	Host string `env:"SMTP_HOST" env-default:""`
	Port int    `env:"SMTP_PORT" env-default:"587"`
	From string `env:"SMTP_FROM" env-default:""`
	Pass string `env:"SMTP_PASS" env-default:""`
}

type EmailConfig struct {
	Enabled   bool `env:"EMAIL_ENABLED" env-default:"false"`
	Templates EmailTemplates
}

type EmailTemplates struct {
	Approval string `env:"EMAIL_TEMPLATE_APPROVAL" env-default:"approval.html"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return &cfg
}
