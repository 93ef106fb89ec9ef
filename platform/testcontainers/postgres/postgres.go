package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	defaultImage    = "postgres:17.0-alpine3.20"
	defaultDatabase = "catalog"
	defaultUser     = "catalog"
	defaultPassword = "catalog" //nolint:gosec
	startupTimeout  = time.Minute
)

type Container struct {
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	dsn       string
}

func NewContainer(ctx context.Context) (*Container, error) {
	container, err := tcpostgres.Run(ctx,
		defaultImage,
		tcpostgres.WithDatabase(defaultDatabase),
		tcpostgres.WithUsername(defaultUser),
		tcpostgres.WithPassword(defaultPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "start postgres container")
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, errors.Wrap(err, "postgres connection string")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, errors.Wrap(err, "create pgx pool")
	}

	return &Container{container: container, pool: pool, dsn: dsn}, nil
}

func (c *Container) Pool() *pgxpool.Pool { return c.pool }
func (c *Container) DSN() string         { return c.dsn }

func (c *Container) Terminate(context.Context) error {
	c.pool.Close()
	return testcontainers.TerminateContainer(c.container)
}
