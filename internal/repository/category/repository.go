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

func NewCategoryRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	return mongodb.EnsureIndexes(ctx, r.coll,
		mongodb.Index{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("slug_unique"),
		},
		mongodb.Index{Keys: bson.D{{Key: "parent", Value: 1}}},
		mongodb.Index{Keys: bson.D{{Key: "ancestors", Value: 1}}},
	)
}

func (r *repository) Create(ctx context.Context, c *model.Category) error {
	const op = "repository.category.Create"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(c)); err != nil {
		return mongodb.WrapError(op, err)
	}
	return nil
}

func (r *repository) CategoryByID(ctx context.Context, id string) (*model.Category, error) {
	const op = "repository.category.CategoryByID"

	var ent CategoryEntity
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, model.ErrNotFound)
		}
		return nil, mongodb.WrapError(op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) List(ctx context.Context) ([]*model.Category, error) {
	const op = "repository.category.List"

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, mongodb.WrapError(op, err)
	}

	var ents []CategoryEntity
	if err := cur.All(ctx, &ents); err != nil {
		return nil, mongodb.WrapError(op, err)
	}

	out := make([]*model.Category, 0, len(ents))
	for i := range ents {
		out = append(out, EntityToModel(&ents[i]))
	}
	return out, nil
}

func (r *repository) CountChildren(ctx context.Context, id string) (int64, error) {
	const op = "repository.category.CountChildren"

	n, err := r.coll.CountDocuments(ctx, bson.M{"parent": id})
	if err != nil {
		return 0, mongodb.WrapError(op, err)
	}
	return n, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.category.Delete"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mongodb.WrapError(op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	}
	return nil
}
