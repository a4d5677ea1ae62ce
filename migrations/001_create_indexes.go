package migrations

import (
	"context"
	"log"

	"DocSlot/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Indexes lists the indexes each collection needs. The unique email indexes
// back the duplicate checks in the stores.
func Indexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		store.UserCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
		},
		store.DoctorCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
			{Keys: bson.D{{Key: "specialization", Value: 1}}, Options: options.Index().SetName("specialization")},
		},
		store.BookingCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("user_created")},
			{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("doctor_created")},
		},
	}
}

func CreateIndexes(ctx context.Context, database *mongo.Database) error {
	for collection, models := range Indexes() {
		names, err := database.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			log.Println("Migration failed creating indexes on", collection, ":", err)
			return err
		}
		log.Println("Indexes ready on", collection, ":", names)
	}
	return nil
}
