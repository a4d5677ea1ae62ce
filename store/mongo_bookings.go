package store

import (
	"context"
	"time"

	"DocSlot/models"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoBookings struct {
	open Opener
}

func (m *MongoBookings) coll() *mongo.Collection {
	return m.open(BookingCollection)
}

func (m *MongoBookings) Create(ctx context.Context, b *models.Booking) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	_, err := m.coll().InsertOne(ctx, b)
	return mapMongoErr(err)
}

func (m *MongoBookings) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	var b models.Booking
	if err := db.FindOne(ctx, m.coll(), bson.M{"_id": oid}, &b); err != nil {
		return nil, mapMongoErr(err)
	}
	return &b, nil
}

func (m *MongoBookings) List(ctx context.Context, filter BookingFilter) ([]models.BookingDetail, error) {
	q := bson.M{}
	if filter.UserID != "" {
		oid, err := ParseID(filter.UserID)
		if err != nil {
			return nil, err
		}
		q["userId"] = oid
	}
	if filter.DoctorID != "" {
		oid, err := ParseID(filter.DoctorID)
		if err != nil {
			return nil, err
		}
		q["doctorId"] = oid
	}
	cur, err := m.coll().Aggregate(ctx, detailPipeline(q))
	if err != nil {
		return nil, err
	}
	return decodeAll[models.BookingDetail](ctx, cur)
}

/*
* Match and sort newest first
* Replace userId and doctorId with the referenced documents
* Keep only the public fields of each
 */
func detailPipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		lookup(UserCollection, "userId"),
		unwind("userId"),
		lookup(DoctorCollection, "doctorId"),
		unwind("doctorId"),
		{{Key: "$project", Value: bson.D{
			{Key: "day", Value: 1},
			{Key: "time", Value: 1},
			{Key: "status", Value: 1},
			{Key: "paymentStatus", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "updatedAt", Value: 1},
			{Key: "userId._id", Value: 1},
			{Key: "userId.username", Value: 1},
			{Key: "userId.email", Value: 1},
			{Key: "doctorId._id", Value: 1},
			{Key: "doctorId.name", Value: 1},
			{Key: "doctorId.specialization", Value: 1},
		}}},
	}
}

func lookup(from, field string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: field},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: field},
	}}}
}

func unwind(field string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$" + field},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
}

func (m *MongoBookings) UpdateStatus(ctx context.Context, id, status, paymentStatus string) (*models.Booking, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"_id": oid}
	if _, err := m.FindByID(ctx, id); err != nil {
		return nil, err
	}
	_, err = db.UpdateOne(ctx, m.coll(), filter, bson.M{"$set": bson.M{
		"status":        status,
		"paymentStatus": paymentStatus,
		"updatedAt":     time.Now(),
	}})
	if err != nil {
		return nil, err
	}
	return m.FindByID(ctx, id)
}
