package migrations

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Backfill sets defaults on documents written before a field existed.
type Backfill struct {
	Name       string
	Collection string
	Filter     bson.M
	Update     interface{}
}

func (b Backfill) Apply(ctx context.Context, database *mongo.Database) error {
	result, err := database.Collection(b.Collection).UpdateMany(ctx, b.Filter, b.Update)
	if err != nil {
		log.Println("Migration", b.Name, "failed:", err)
		return err
	}
	log.Printf("Migration %s applied: %d documents updated\n", b.Name, result.ModifiedCount)
	return nil
}

func Backfills() []Backfill {
	return []Backfill{
		TokenVersionBackfill(),
		OTPStateBackfill(),
		ProfilePhotoBackfill(),
		BookingDefaultsBackfill(),
	}
}

/*
* Indexes first so the backfills run against the final shape
* Then every backfill in order; the first failure stops the run
 */
func Run(ctx context.Context, database *mongo.Database) error {
	if err := CreateIndexes(ctx, database); err != nil {
		return err
	}
	for _, b := range Backfills() {
		if err := b.Apply(ctx, database); err != nil {
			return err
		}
	}
	return nil
}
