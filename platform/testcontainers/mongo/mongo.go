package mongo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
)

type Container struct {
	container *mongodb.MongoDBContainer
	client    *mongo.Client
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts...)

	container, err := mongodb.Run(ctx, cfg.ImageName, mongodb.WithReplicaSet(cfg.ReplicaSet))
	if err != nil {
		return nil, errors.Wrap(err, "start mongo container")
	}

	success := false
	defer func() {
		if !success {
			if err := testcontainers.TerminateContainer(container); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate mongo container", zap.Error(err))
			}
		}
	}()

	cfg.URI, err = container.ConnectionString(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "mongo connection string")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI).SetDirect(true))
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongo")
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, errors.Wrap(err, "ping mongo")
	}

	cfg.Logger.Info(ctx, "mongo container started", zap.String("uri", cfg.URI))
	success = true

	return &Container{
		container: container,
		client:    client,
		cfg:       cfg,
	}, nil
}

func (c *Container) Client() *mongo.Client {
	return c.client
}

func (c *Container) Database() *mongo.Database {
	return c.client.Database(c.cfg.Database)
}

func (c *Container) Config() *Config {
	return c.cfg
}

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to disconnect mongo client", zap.Error(err))
	}

	if err := testcontainers.TerminateContainer(c.container); err != nil {
		return errors.Wrap(err, "terminate mongo container")
	}

	c.cfg.Logger.Info(ctx, "mongo container terminated")
	return nil
}
