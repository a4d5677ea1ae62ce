package migrations

import (
	"testing"

	"DocSlot/models"
	"DocSlot/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestIndexes_UniqueEmails(t *testing.T) {
	idx := Indexes()

	for _, coll := range []string{store.UserCollection, store.DoctorCollection} {
		defs := idx[coll]
		require.NotEmpty(t, defs, coll)
		first := defs[0]
		assert.Equal(t, bson.D{{Key: "email", Value: 1}}, first.Keys)
		require.NotNil(t, first.Options)
		require.NotNil(t, first.Options.Unique)
		assert.True(t, *first.Options.Unique)
	}
	assert.Len(t, idx[store.BookingCollection], 2)
}

func TestBackfills_Order(t *testing.T) {
	var names []string
	for _, b := range Backfills() {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"token_version", "otp_verified", "profile_photo", "booking_defaults"}, names)
}

func TestTokenVersionBackfill(t *testing.T) {
	b := TokenVersionBackfill()

	assert.Equal(t, store.UserCollection, b.Collection)
	assert.Equal(t, bson.M{"tokenVersion": bson.M{"$exists": false}}, b.Filter)
	assert.Equal(t, bson.M{"$set": bson.M{"tokenVersion": 0}}, b.Update)
}

func TestProfilePhotoBackfill_UsesDefault(t *testing.T) {
	b := ProfilePhotoBackfill()

	set := b.Update.(bson.M)["$set"].(bson.M)
	assert.Equal(t, models.DefaultProfilePhoto(), set["profilePhoto"])
}

func TestBookingDefaultsBackfill_KeepsExistingValues(t *testing.T) {
	b := BookingDefaultsBackfill()

	assert.Equal(t, store.BookingCollection, b.Collection)
	pipeline, ok := b.Update.(bson.A)
	require.True(t, ok)
	set := pipeline[0].(bson.M)["$set"].(bson.M)
	assert.Equal(t, bson.M{"$ifNull": bson.A{"$status", models.BookingPending}}, set["status"])
	assert.Equal(t, bson.M{"$ifNull": bson.A{"$paymentStatus", models.PaymentUnpaid}}, set["paymentStatus"])
}
