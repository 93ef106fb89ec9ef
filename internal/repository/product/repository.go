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
	"github.com/you-humble/frio-catalog/platform/logger"
)

type repository struct {
	coll *mongo.Collection
}

func NewProductRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) EnsureIndexes(ctx context.Context) error {
	return mongodb.EnsureIndexes(ctx, r.coll,
		mongodb.Index{
			Keys:    bson.D{{Key: "product_code", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("product_code_unique"),
		},
		mongodb.Index{Keys: bson.D{{Key: "categories", Value: 1}}},
		mongodb.Index{Keys: bson.D{{Key: "subcategories", Value: 1}}},
		mongodb.Index{Keys: bson.D{{Key: "active", Value: 1}, {Key: "created_at", Value: -1}}},
		mongodb.Index{Keys: bson.D{{Key: "fixed_in_ars", Value: 1}}},
	)
}

func (r *repository) Create(ctx context.Context, p *model.Product) error {
	const op = "repository.product.Create"

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(p)); err != nil {
		return mongodb.WrapError(op, err)
	}
	return nil
}

// Update rewrites the editable fields. Counters are left to atomic $inc.
func (r *repository) Update(ctx context.Context, p *model.Product) error {
	const op = "repository.product.Update"

	e := EntityFromModel(p)
	res, err := r.coll.UpdateByID(ctx, e.ID, bson.M{"$set": bson.M{
		"product_code":  e.ProductCode,
		"name":          e.Name,
		"description":   e.Description,
		"image":         e.Image,
		"price_usd":     e.PriceUSD,
		"price_ars":     e.PriceARS,
		"fixed_in_ars":  e.FixedInARS,
		"categories":    e.Categories,
		"subcategories": e.Subcategories,
		"active":        e.Active,
		"updated_at":    e.UpdatedAt,
	}})
	if err != nil {
		return mongodb.WrapError(op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	}

	return nil
}

func (r *repository) ProductByID(ctx context.Context, id string) (*model.Product, error) {
	const op = "repository.product.ProductByID"

	var ent ProductEntity
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, model.ErrNotFound)
		}
		return nil, mongodb.WrapError(op, err)
	}

	return EntityToModel(&ent), nil
}

// ProductByCode returns an active product. With incrementViews the view
// counter is bumped in the same round trip and the updated document returned.
func (r *repository) ProductByCode(ctx context.Context, code string, incrementViews bool) (*model.Product, error) {
	const op = "repository.product.ProductByCode"

	filter := bson.M{"product_code": code, "active": true}

	var res *mongo.SingleResult
	if incrementViews {
		res = r.coll.FindOneAndUpdate(ctx, filter,
			bson.M{"$inc": bson.M{"views": 1}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		)
	} else {
		res = r.coll.FindOne(ctx, filter)
	}

	var ent ProductEntity
	if err := res.Decode(&ent); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, model.ErrNotFound)
		}
		return nil, mongodb.WrapError(op, err)
	}

	return EntityToModel(&ent), nil
}

func (r *repository) ProductsByIDs(ctx context.Context, ids []string) ([]*model.Product, error) {
	const op = "repository.product.ProductsByIDs"

	if len(ids) == 0 {
		return []*model.Product{}, nil
	}

	out, err := r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, mongodb.WrapError(op, err)
	}
	return out, nil
}

func (r *repository) ProductsByCodes(ctx context.Context, codes []string) ([]*model.Product, error) {
	const op = "repository.product.ProductsByCodes"

	if len(codes) == 0 {
		return []*model.Product{}, nil
	}

	out, err := r.find(ctx, bson.M{"product_code": bson.M{"$in": codes}})
	if err != nil {
		return nil, mongodb.WrapError(op, err)
	}
	return out, nil
}

func (r *repository) List(ctx context.Context, f model.ProductFilter) ([]*model.Product, int64, error) {
	const op = "repository.product.List"

	filter := BuildMongoFilter(f)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, mongodb.WrapError(op, err)
	}

	opts := options.Find().SetSort(BuildSort(f.SortField, f.SortOrder))
	if f.Limit > 0 {
		page := max(f.Page, 1)
		opts.SetSkip((page - 1) * f.Limit).SetLimit(f.Limit)
	}

	out, err := r.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, mongodb.WrapError(op, err)
	}

	return out, total, nil
}

// ToggleActive flips the flag server-side so concurrent toggles do not race.
func (r *repository) ToggleActive(ctx context.Context, id string) (*model.Product, error) {
	const op = "repository.product.ToggleActive"

	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "active", Value: bson.D{{Key: "$not", Value: bson.A{"$active"}}}},
			{Key: "updated_at", Value: "$$NOW"},
		}}},
	}

	var ent ProductEntity
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

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.product.Delete"

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mongodb.WrapError(op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	}

	return nil
}

// RepriceAll sets price_ars = ifNull(price_usd, 0) * rate on every product
// that is not fixed in ARS, in a single server-side update.
func (r *repository) RepriceAll(ctx context.Context, rate float64) (int64, error) {
	const op = "repository.product.RepriceAll"

	filter := bson.M{"fixed_in_ars": bson.M{"$ne": true}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "price_ars", Value: bson.D{{Key: "$multiply", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$price_usd", 0}}},
				rate,
			}}}},
			{Key: "updated_at", Value: "$$NOW"},
		}}},
	}

	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, mongodb.WrapError(op, err)
	}

	return res.ModifiedCount, nil
}

func (r *repository) Counts(ctx context.Context) (model.ProductCounts, error) {
	const op = "repository.product.Counts"

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return model.ProductCounts{}, mongodb.WrapError(op, err)
	}

	active, err := r.coll.CountDocuments(ctx, bson.M{"active": true})
	if err != nil {
		return model.ProductCounts{}, mongodb.WrapError(op, err)
	}

	return model.ProductCounts{
		Total:    total,
		Active:   active,
		Inactive: total - active,
	}, nil
}

func (r *repository) CreateBatch(ctx context.Context, products []*model.Product) error {
	const op = "repository.product.CreateBatch"

	docs := make([]any, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		if p.ID == "" {
			return fmt.Errorf("%s: product ID is empty: %w", op, model.ErrValidation)
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now()
			p.UpdatedAt = p.CreatedAt
		}

		docs = append(docs, EntityFromModel(p))
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return mongodb.WrapError(op, err)
	}

	return nil
}

func (r *repository) find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) ([]*model.Product, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close products cursor", logger.ErrorF(cerr))
		}
	}()

	out := make([]*model.Product, 0)
	for cur.Next(ctx) {
		var ent ProductEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}

	return out, nil
}
