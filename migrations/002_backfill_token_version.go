package migrations

import (
	"DocSlot/store"

	"go.mongodb.org/mongo-driver/bson"
)

func TokenVersionBackfill() Backfill {
	return Backfill{
		Name:       "token_version",
		Collection: store.UserCollection,
		Filter:     bson.M{"tokenVersion": bson.M{"$exists": false}},
		Update:     bson.M{"$set": bson.M{"tokenVersion": 0}},
	}
}

// OTPStateBackfill closes the reset gate on accounts that predate it.
func OTPStateBackfill() Backfill {
	return Backfill{
		Name:       "otp_verified",
		Collection: store.UserCollection,
		Filter:     bson.M{"otpVerified": bson.M{"$exists": false}},
		Update:     bson.M{"$set": bson.M{"otpVerified": false, "otp": nil, "otpExpire": nil}},
	}
}
