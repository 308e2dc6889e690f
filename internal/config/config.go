package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`

	MySQLHost string `env:"MYSQL_HOST" envDefault:"mysql"`
	MySQLPort string `env:"MYSQL_PORT" envDefault:"3306"`
	MySQLDB   string `env:"MYSQL_DB"   envDefault:"seismic_catalog"`
	MySQLUser string `env:"MYSQL_USER" envDefault:"seismic"`
	MySQLPass string `env:"MYSQL_PASS" envDefault:"seismic"`

	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"redis:6379"`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	IdempEnabled bool `env:"IDEMPOTENCY_ENABLED"     envDefault:"true"`
	IdempTTLSecs int  `env:"IDEMPOTENCY_TTL_SECONDS" envDefault:"300"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL"    envDefault:"12h"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"seismic-catalog"`

	TxTimeout         time.Duration `env:"TX_TIMEOUT"          envDefault:"10s"`
	UnknownRolePolicy string        `env:"UNKNOWN_ROLE_POLICY" envDefault:"restrict"`

	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
	LoginRateLimit   string   `env:"LOGIN_RATE_LIMIT"   envDefault:"10-M"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	BcryptCost  int    `env:"BCRYPT_COST"  envDefault:"10"`
	MetricsPath string `env:"METRICS_PATH" envDefault:"/metrics"`
}

// LoadEnv loads whichever of files exist into the process environment.
// Variables already set win.
func LoadEnv(files ...string) (int, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

// Load reads .env and .env.local when present, then parses the environment.
func Load() (*Config, error) {
	if _, err := LoadEnv(".env", ".env.local"); err != nil {
		return nil, fmt.Errorf("load env files: %w", err)
	}
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if len(c.JWTSecret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 bytes")
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if c.TxTimeout <= 0 {
		return errors.New("TX_TIMEOUT must be positive")
	}
	switch strings.ToLower(c.UnknownRolePolicy) {
	case "restrict", "deny":
	default:
		return fmt.Errorf("invalid UNKNOWN_ROLE_POLICY %q (want restrict or deny)", c.UnknownRolePolicy)
	}
	if c.IdempEnabled && c.IdempTTLSecs <= 0 {
		return errors.New("IDEMPOTENCY_TTL_SECONDS must be positive")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("invalid BCRYPT_COST %d (want 4..31)", c.BcryptCost)
	}
	return nil
}

func (c *Config) IdempotencyTTL() time.Duration { return time.Duration(c.IdempTTLSecs) * time.Second }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements for goose migrations; parseTime for DATETIME columns
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&loc=UTC&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
