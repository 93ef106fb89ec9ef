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

func NewSettingsRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) Settings(ctx context.Context) (*model.Settings, error) {
	const op = "repository.settings.Settings"

	var ent SettingsEntity
	if err := r.coll.FindOne(ctx, bson.M{"_id": settingsID}).Decode(&ent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, model.ErrNotFound)
		}
		return nil, mongodb.WrapError(op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) SetRate(ctx context.Context, rate float64) (*model.Settings, error) {
	const op = "repository.settings.SetRate"

	s, err := r.upsert(ctx, bson.M{
		"$set":         bson.M{"rate": rate, "updated_at": time.Now()},
		"$setOnInsert": bson.M{"install_kit": bson.A{}},
	})
	if err != nil {
		return nil, mongodb.WrapError(op, err)
	}
	return s, nil
}

func (r *repository) SetInstallKit(ctx context.Context, items []model.KitItemSpec) (*model.Settings, error) {
	const op = "repository.settings.SetInstallKit"

	kit := make([]KitItemEntity, 0, len(items))
	for _, it := range items {
		kit = append(kit, KitItemFromModel(it))
	}

	s, err := r.upsert(ctx, bson.M{
		"$set":         bson.M{"install_kit": kit, "updated_at": time.Now()},
		"$setOnInsert": bson.M{"rate": model.DefaultExchangeRate},
	})
	if err != nil {
		return nil, mongodb.WrapError(op, err)
	}
	return s, nil
}

func (r *repository) upsert(ctx context.Context, update bson.M) (*model.Settings, error) {
	var ent SettingsEntity
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": settingsID}, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&ent)
	if err != nil {
		return nil, err
	}
	return EntityToModel(&ent), nil
}
