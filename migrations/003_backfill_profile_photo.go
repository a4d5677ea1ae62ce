package migrations

import (
	"DocSlot/models"
	"DocSlot/store"

	"go.mongodb.org/mongo-driver/bson"
)

func ProfilePhotoBackfill() Backfill {
	return Backfill{
		Name:       "profile_photo",
		Collection: store.UserCollection,
		Filter:     bson.M{"profilePhoto.url": bson.M{"$exists": false}},
		Update:     bson.M{"$set": bson.M{"profilePhoto": models.DefaultProfilePhoto()}},
	}
}
