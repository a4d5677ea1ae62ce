package store

import (
	"context"
	"log"
	"regexp"
	"time"

	"DocSlot/models"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDoctors struct {
	open Opener
}

func (m *MongoDoctors) coll() *mongo.Collection {
	return m.open(DoctorCollection)
}

func (m *MongoDoctors) Create(ctx context.Context, d *models.Doctor) error {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	_, err := m.coll().InsertOne(ctx, d)
	return mapMongoErr(err)
}

func (m *MongoDoctors) FindByID(ctx context.Context, id string) (*models.Doctor, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	var d models.Doctor
	if err := db.FindOne(ctx, m.coll(), bson.M{"_id": oid}, &d); err != nil {
		return nil, mapMongoErr(err)
	}
	return &d, nil
}

func (m *MongoDoctors) find(ctx context.Context, filter bson.M) ([]models.Doctor, error) {
	cur, err := m.coll().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Doctor](ctx, cur)
}

func (m *MongoDoctors) List(ctx context.Context) ([]models.Doctor, error) {
	return m.find(ctx, bson.M{})
}

func (m *MongoDoctors) SearchBySpecialization(ctx context.Context, term string) ([]models.Doctor, error) {
	return m.find(ctx, bson.M{
		"specialization": bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"},
	})
}

func (m *MongoDoctors) Update(ctx context.Context, id string, upd models.DoctorUpdate) (*models.Doctor, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{"updatedAt": time.Now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Specialization != nil {
		set["specialization"] = *upd.Specialization
	}
	if upd.Experience != nil {
		set["experience"] = *upd.Experience
	}
	if upd.Qualifications != nil {
		set["qualifications"] = upd.Qualifications
	}
	if upd.Availability != nil {
		set["availability"] = upd.Availability
	}
	if upd.Fee != nil {
		set["fee"] = *upd.Fee
	}
	if upd.Addresses != nil {
		set["addresses"] = upd.Addresses
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var d models.Doctor
	if err := m.coll().FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&d); err != nil {
		return nil, mapMongoErr(err)
	}
	return &d, nil
}

func (m *MongoDoctors) Delete(ctx context.Context, id string) error {
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

/*
* Pull the hour out of the matching day with a single conditional update
* If nothing matched, read the doctor to tell which precondition failed
* Drop the day entry once its hours are empty
 */
func (m *MongoDoctors) ClaimSlot(ctx context.Context, id, day, hour string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	coll := m.coll()
	filter := bson.M{
		"_id":          oid,
		"availability": bson.M{"$elemMatch": bson.M{"day": day, "hours": hour}},
	}
	update := bson.M{
		"$pull": bson.M{"availability.$.hours": hour},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		log.Println("Error while claiming slot: ", err)
		return err
	}
	if res.MatchedCount == 0 {
		doctor, err := m.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if _, err := models.ClaimHour(doctor.Availability, day, hour); err != nil {
			return err
		}
		// The hour reappeared between the write and the read; treat it as taken.
		return models.ErrHourTaken
	}

	_, err = coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$pull": bson.M{"availability": bson.M{"day": day, "hours": bson.M{"$size": 0}}},
	})
	if err != nil {
		log.Println("Error while dropping empty day: ", err)
	}
	return nil
}

func (m *MongoDoctors) ReleaseSlot(ctx context.Context, id, day, hour string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	coll := m.coll()
	res, err := coll.UpdateOne(ctx,
		bson.M{"_id": oid, "availability.day": day},
		bson.M{"$addToSet": bson.M{"availability.$.hours": hour}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}
	res, err = coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"availability": models.DaySchedule{Day: day, Hours: []string{hour}}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
