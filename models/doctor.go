package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DaySchedule struct {
	Day   string   `json:"day" bson:"day" binding:"required"`
	Hours []string `json:"hours" bson:"hours" binding:"required,min=1,dive,required"`
}

type Doctor struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID         primitive.ObjectID `json:"userId" bson:"userId"`
	Name           string             `json:"name" bson:"name"`
	Email          string             `json:"email" bson:"email"`
	Password       string             `json:"-" bson:"password"`
	Specialization string             `json:"specialization" bson:"specialization"`
	Experience     int                `json:"experience" bson:"experience"`
	Qualifications []string           `json:"qualifications" bson:"qualifications"`
	Availability   []DaySchedule      `json:"availability" bson:"availability"`
	Fee            float64            `json:"fee" bson:"fee"`
	Addresses      []string           `json:"addresses" bson:"addresses"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OpenSlots is the availability view returned to patients.
type OpenSlots struct {
	Day   string   `json:"day"`
	Times []string `json:"times"`
}
