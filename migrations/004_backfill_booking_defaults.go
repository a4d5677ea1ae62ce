package migrations

import (
	"DocSlot/models"
	"DocSlot/store"

	"go.mongodb.org/mongo-driver/bson"
)

func BookingDefaultsBackfill() Backfill {
	return Backfill{
		Name:       "booking_defaults",
		Collection: store.BookingCollection,
		Filter: bson.M{"$or": bson.A{
			bson.M{"status": bson.M{"$exists": false}},
			bson.M{"paymentStatus": bson.M{"$exists": false}},
		}},
		Update: bson.A{
			bson.M{"$set": bson.M{
				"status":        bson.M{"$ifNull": bson.A{"$status", models.BookingPending}},
				"paymentStatus": bson.M{"$ifNull": bson.A{"$paymentStatus", models.PaymentUnpaid}},
			}},
		},
	}
}
