package store

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// Opener hands out a collection by name. In production it is db.OpenCollections
// from the Core bootstrap, resolved per call so the store can be built before
// the client connects.
type Opener func(name string) *mongo.Collection

func NewMongo(open Opener) *Store {
	return &Store{
		Users:    &MongoUsers{open: open},
		Doctors:  &MongoDoctors{open: open},
		Bookings: &MongoBookings{open: open},
	}
}

func mapMongoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments), strings.Contains(err.Error(), "no matching document found"):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return err
	}
}

func decodeAll[T any](ctx context.Context, cur *mongo.Cursor) ([]T, error) {
	defer cur.Close(ctx)
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
