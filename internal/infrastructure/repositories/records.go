package repositories

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// records is a typed wrapper over one Mongo collection implementing the
// record-store contract shared by every repository.
type records[T any] struct {
	coll *mongo.Collection
}

func newRecords[T any](db *mongo.Database, name string) *records[T] {
	return &records[T]{coll: db.Collection(name)}
}

func (r *records[T]) find(ctx context.Context, filter domain.Filter, opts domain.ListOptions) ([]T, error) {
	findOpts := options.Find()
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if len(opts.Sort) > 0 {
		sort := bson.D{}
		for _, f := range opts.Sort {
			order := 1
			if f.Desc {
				order = -1
			}
			sort = append(sort, bson.E{Key: f.Key, Value: order})
		}
		findOpts.SetSort(sort)
	}
	if len(opts.Projection) > 0 {
		projection := bson.D{}
		for _, field := range opts.Projection {
			projection = append(projection, bson.E{Key: field, Value: 1})
		}
		findOpts.SetProjection(projection)
	}

	cursor, err := r.coll.Find(ctx, toBSON(filter), findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *records[T]) count(ctx context.Context, filter domain.Filter) (int64, error) {
	return r.coll.CountDocuments(ctx, toBSON(filter))
}

// findOne returns (nil, nil) when no record matches; callers attach their
// resource-specific not-found error.
func (r *records[T]) findOne(ctx context.Context, filter domain.Filter) (*T, error) {
	var result T
	err := r.coll.FindOne(ctx, toBSON(filter)).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *records[T]) insert(ctx context.Context, doc *T) error {
	_, err := r.coll.InsertOne(ctx, doc)
	return mapWriteError(err)
}

// updateByID applies a $set patch and returns the updated record, or
// (nil, nil) when the id matches nothing.
func (r *records[T]) updateByID(ctx context.Context, id bson.ObjectID, set domain.Filter) (*T, error) {
	patch := toBSON(set)
	patch["updatedAt"] = time.Now()

	var result T
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, mapWriteError(err)
	}
	return &result, nil
}

func (r *records[T]) deleteByID(ctx context.Context, id bson.ObjectID) (*T, error) {
	var result T
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *records[T]) existsByID(ctx context.Context, id bson.ObjectID) (bool, error) {
	return r.exists(ctx, domain.Filter{"_id": id})
}

func (r *records[T]) exists(ctx context.Context, filter domain.Filter) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, toBSON(filter), options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *records[T]) deleteManyByID(ctx context.Context, ids []bson.ObjectID) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func toBSON(filter domain.Filter) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return bson.M(filter)
}

var dupIndexRe = regexp.MustCompile(`index: ([0-9A-Za-z_.]+?)_-?\d`)

// mapWriteError remaps store-level uniqueness violations to Conflict with
// the offending field named. Raw driver error shapes never reach callers.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		field := "value"
		if m := dupIndexRe.FindStringSubmatch(err.Error()); m != nil {
			field = m[1]
		}
		return domain.Conflict("%s must be unique", field)
	}
	return err
}
