package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/internal/repository/mongodb"
)

type repository struct {
	coll *mongo.Collection
}

func NewBannerRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	return mongodb.EnsureIndexes(ctx, r.coll,
		mongodb.Index{Keys: bson.D{{Key: "type", Value: 1}, {Key: "active", Value: 1}, {Key: "order", Value: 1}}},
	)
}

func (r *repository) Create(ctx context.Context, b *model.Banner) error {
	const op = "repository.banner.Create"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(b)); err != nil {
		return mongodb.WrapError(op, err)
	}
	return nil
}

func (r *repository) BannerByID(ctx context.Context, id string) (*model.Banner, error) {
	const op = "repository.banner.BannerByID"

	var ent BannerEntity
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, model.ErrNotFound)
		}
		return nil, mongodb.WrapError(op, err)
	}

	return EntityToModel(&ent), nil
}

// List orders by position, newest first among equal positions.
func (r *repository) List(ctx context.Context, f model.BannerFilter) ([]*model.Banner, error) {
	const op = "repository.banner.List"

	sort := bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}
	cur, err := r.coll.Find(ctx, BuildMongoFilter(f), options.Find().SetSort(sort))
	if err != nil {
		return nil, mongodb.WrapError(op, err)
	}

	var ents []BannerEntity
	if err := cur.All(ctx, &ents); err != nil {
		return nil, mongodb.WrapError(op, err)
	}

	out := make([]*model.Banner, 0, len(ents))
	for i := range ents {
		out = append(out, EntityToModel(&ents[i]))
	}
	return out, nil
}

func (r *repository) Update(ctx context.Context, b *model.Banner) error {
	const op = "repository.banner.Update"

	e := EntityFromModel(b)
	res, err := r.coll.UpdateByID(ctx, e.ID, bson.M{"$set": bson.M{
		"title":      e.Title,
		"subtitle":   e.Subtitle,
		"image":      e.Image,
		"link_url":   e.LinkURL,
		"type":       e.Type,
		"order":      e.Order,
		"active":     e.Active,
		"updated_at": e.UpdatedAt,
	}})
	if err != nil {
		return mongodb.WrapError(op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.banner.Delete"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mongodb.WrapError(op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	}
	return nil
}

func (r *repository) ToggleActive(ctx context.Context, id string) (*model.Banner, error) {
	const op = "repository.banner.ToggleActive"

	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "active", Value: bson.D{{Key: "$not", Value: bson.A{"$active"}}}},
			{Key: "updated_at", Value: "$$NOW"},
		}}},
	}

	var ent BannerEntity
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, model.ErrNotFound)
		}
		return nil, mongodb.WrapError(op, err)
	}

	return EntityToModel(&ent), nil
}

// Reorder sets order = position in ids. Unknown ids are skipped.
func (r *repository) Reorder(ctx context.Context, ids []string) (int64, error) {
	const op = "repository.banner.Reorder"

	if len(ids) == 0 {
		return 0, nil
	}

	now := time.Now()
	models := make([]mongo.WriteModel, 0, len(ids))
	for i, id := range ids {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"order": i, "updated_at": now}}),
		)
	}

	res, err := r.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, mongodb.WrapError(op, err)
	}
	return res.MatchedCount, nil
}
