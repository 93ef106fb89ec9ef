package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/internal/repository/mongodb"
)

type repository struct {
	coll *mongo.Collection
}

func NewAdminRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	return mongodb.EnsureIndexes(ctx, r.coll,
		mongodb.Index{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("username_unique"),
		},
	)
}

func (r *repository) Create(ctx context.Context, a *model.Admin) error {
	const op = "repository.admin.Create"

	_, err := r.coll.InsertOne(ctx, AdminEntity{
		ID:           a.ID,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	})
	if err != nil {
		return mongodb.WrapError(op, err)
	}
	return nil
}

func (r *repository) AdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	const op = "repository.admin.AdminByUsername"

	var ent AdminEntity
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&ent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, model.ErrNotFound)
		}
		return nil, mongodb.WrapError(op, err)
	}

	return &model.Admin{
		ID:           ent.ID,
		Username:     ent.Username,
		PasswordHash: ent.PasswordHash,
		CreatedAt:    ent.CreatedAt,
	}, nil
}
