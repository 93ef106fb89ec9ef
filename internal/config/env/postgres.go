package envconfig

import (
	"fmt"
)

type postgresEnv struct {
	Host     string `env:"POSTGRES_HOST,required" validate:"required"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432" validate:"min=1,max=65535"`
	User     string `env:"POSTGRES_USER,required" validate:"required"`
	Password string `env:"POSTGRES_PASSWORD,required" validate:"required"`
	DBName   string `env:"POSTGRES_DB,required" validate:"required"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" envDefault:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

type postgres struct {
	raw postgresEnv
}

func NewPostgresConfig() (*postgres, error) {
	var raw postgresEnv
	if err := parse(&raw); err != nil {
		return nil, err
	}
	return &postgres{raw: raw}, nil
}

func (cfg *postgres) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.raw.User,
		cfg.raw.Password,
		cfg.raw.Host,
		cfg.raw.Port,
		cfg.raw.DBName,
		cfg.raw.SSLMode,
	)
}
