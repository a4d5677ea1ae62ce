package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingPending = "pending"
	PaymentUnpaid  = "unpaid"
)

type Booking struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	DoctorID      primitive.ObjectID `json:"doctorId" bson:"doctorId"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId"`
	Day           string             `json:"day" bson:"day"`
	Time          string             `json:"time" bson:"time"`
	Status        string             `json:"status" bson:"status"`
	PaymentStatus string             `json:"paymentStatus" bson:"paymentStatus"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type BookedSlot struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

type BookingUser struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	Username string             `json:"username" bson:"username"`
	Email    string             `json:"email" bson:"email"`
}

type BookingDoctor struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id"`
	Name           string             `json:"name" bson:"name"`
	Specialization string             `json:"specialization" bson:"specialization"`
}

// BookingDetail is a booking with its user and doctor filled in. Either one is
// nil once the account behind it has been deleted.
type BookingDetail struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id"`
	Doctor        *BookingDoctor     `json:"doctorId" bson:"doctorId,omitempty"`
	User          *BookingUser       `json:"userId" bson:"userId,omitempty"`
	Day           string             `json:"day" bson:"day"`
	Time          string             `json:"time" bson:"time"`
	Status        string             `json:"status" bson:"status"`
	PaymentStatus string             `json:"paymentStatus" bson:"paymentStatus"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
