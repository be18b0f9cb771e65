package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
)

type HTTPCfg struct {
	Port             int           `env:"PORT" envDefault:"5000"`
	ShutdownTimeout  time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CorsAllowOrigins []string      `env:"HTTP_CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

type StorageCfg struct {
	Driver         string        `env:"STORAGE_DRIVER" envDefault:"mongo"`
	ConnectTimeout time.Duration `env:"STORAGE_CONNECT_TIMEOUT" envDefault:"5s"`
}

type MongoCfg struct {
	URI                    string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	Database               string        `env:"MONGO_DATABASE" envDefault:"cases"`
	MaxPoolSize            uint64        `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
	ServerSelectionTimeout time.Duration `env:"MONGO_SERVER_SELECTION_TIMEOUT" envDefault:"5s"`
	SocketTimeout          time.Duration `env:"MONGO_SOCKET_TIMEOUT" envDefault:"45s"`
}

type PostgresCfg struct {
	User        string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password    string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	Host        string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	Database    string `env:"POSTGRES_DB" envDefault:"cases"`
	SslMode     string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

type RedisCfg struct {
	Enabled  bool          `env:"REDIS_ENABLED" envDefault:"false"`
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	CaseTTL  time.Duration `env:"REDIS_CASE_TTL" envDefault:"10m"`
}

// PolicyCfg holds schema and listing rules which are decided by system owner
type PolicyCfg struct {
	Departments          []string `env:"CASE_DEPARTMENTS" envDefault:"Payments,Payroll,QBO" envSeparator:","`
	RequireContactFields bool     `env:"CASE_REQUIRE_CONTACT_FIELDS" envDefault:"false"`
	MaxListLimit         int      `env:"CASE_LIST_MAX_LIMIT" envDefault:"0"`
	UniqueCustomFieldIDs bool     `env:"CUSTOM_FIELD_UNIQUE_IDS" envDefault:"false"`
}

type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type Config struct {
	HTTPCfg     HTTPCfg
	StorageCfg  StorageCfg
	MongoCfg    MongoCfg
	PostgresCfg PostgresCfg
	RedisCfg    RedisCfg
	PolicyCfg   PolicyCfg
	LogCfg      LogCfg
}

func Build() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	switch cfg.StorageCfg.Driver {
	case StorageMongo, StoragePostgres:
	default:
		return cfg, fmt.Errorf("unsupported storage driver %q, expected %s or %s", cfg.StorageCfg.Driver, StorageMongo, StoragePostgres)
	}

	return cfg, nil
}
