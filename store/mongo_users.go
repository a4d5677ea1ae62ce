package store

import (
	"context"
	"log"
	"time"

	"DocSlot/models"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUsers struct {
	open Opener
}

func (m *MongoUsers) coll() *mongo.Collection {
	return m.open(UserCollection)
}

func (m *MongoUsers) Create(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	_, err := m.coll().InsertOne(ctx, u)
	if err != nil {
		log.Println("Error while inserting user: ", err)
	}
	return mapMongoErr(err)
}

func (m *MongoUsers) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	if err := db.FindOne(ctx, m.coll(), filter, &u); err != nil {
		return nil, mapMongoErr(err)
	}
	return &u, nil
}

func (m *MongoUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	return m.findOne(ctx, bson.M{"_id": oid})
}

func (m *MongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findOne(ctx, bson.M{"email": email})
}

func (m *MongoUsers) List(ctx context.Context) ([]models.User, error) {
	cur, err := m.coll().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.User](ctx, cur)
}

func (m *MongoUsers) Count(ctx context.Context) (int64, error) {
	return m.coll().CountDocuments(ctx, bson.M{})
}

func (m *MongoUsers) UpdateProfile(ctx context.Context, id string, username, email *string) (*models.User, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{"updatedAt": time.Now()}
	if username != nil {
		set["username"] = *username
	}
	if email != nil {
		set["email"] = *email
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err = m.coll().FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&u)
	if err != nil {
		return nil, mapMongoErr(err)
	}
	return &u, nil
}

func (m *MongoUsers) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	res, err := m.coll().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoUsers) updateByID(ctx context.Context, id string, filter, update bson.M) (*mongo.UpdateResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	filter["_id"] = oid
	res, err := m.coll().UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (m *MongoUsers) mustMatch(ctx context.Context, id string, filter, update bson.M) error {
	res, err := m.updateByID(ctx, id, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoUsers) SetOTP(ctx context.Context, id, code string, expire time.Time) error {
	return m.mustMatch(ctx, id, bson.M{}, bson.M{"$set": bson.M{
		"otp":       code,
		"otpExpire": expire,
		"updatedAt": time.Now(),
	}})
}

func (m *MongoUsers) MarkOTPVerified(ctx context.Context, id string) error {
	return m.mustMatch(ctx, id, bson.M{}, bson.M{"$set": bson.M{
		"otpVerified": true,
		"otp":         nil,
		"otpExpire":   nil,
		"updatedAt":   time.Now(),
	}})
}

func (m *MongoUsers) ResetPassword(ctx context.Context, id, hash string) error {
	res, err := m.updateByID(ctx, id, bson.M{"otpVerified": true}, bson.M{
		"$set": bson.M{"password": hash, "otpVerified": false, "updatedAt": time.Now()},
		"$inc": bson.M{"tokenVersion": 1},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if _, err := m.FindByID(ctx, id); err != nil {
			return err
		}
		return ErrPrecondition
	}
	return nil
}

func (m *MongoUsers) ChangePassword(ctx context.Context, id, hash string) error {
	return m.mustMatch(ctx, id, bson.M{}, bson.M{
		"$set": bson.M{"password": hash, "updatedAt": time.Now()},
		"$inc": bson.M{"tokenVersion": 1},
	})
}

func (m *MongoUsers) SetProfilePhoto(ctx context.Context, id string, photo models.ProfilePhoto) error {
	return m.mustMatch(ctx, id, bson.M{}, bson.M{"$set": bson.M{
		"profilePhoto": photo,
		"updatedAt":    time.Now(),
	}})
}

func (m *MongoUsers) TokenVersion(ctx context.Context, id string) (int, error) {
	oid, err := ParseID(id)
	if err != nil {
		return 0, err
	}
	var doc struct {
		TokenVersion int `bson:"tokenVersion"`
	}
	opts := options.FindOne().SetProjection(bson.M{"tokenVersion": 1})
	if err := m.coll().FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&doc); err != nil {
		return 0, mapMongoErr(err)
	}
	return doc.TokenVersion, nil
}
