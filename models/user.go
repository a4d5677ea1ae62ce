package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultProfilePhotoURL = "https://cdn.pixabay.com/photo/2017/02/25/22/04/user-icon-2098873_1280.png"

type ProfilePhoto struct {
	URL      string  `json:"url" bson:"url"`
	PublicID *string `json:"publicId" bson:"publicId"`
}

func DefaultProfilePhoto() ProfilePhoto {
	return ProfilePhoto{URL: DefaultProfilePhotoURL}
}

// User is the account document. OTP and OTPExpire are either both set or both nil.
type User struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	Email        string             `json:"email" bson:"email"`
	Password     string             `json:"-" bson:"password"`
	IsAdmin      bool               `json:"isAdmin" bson:"isAdmin"`
	TokenVersion int                `json:"-" bson:"tokenVersion"`
	OTP          *string            `json:"-" bson:"otp"`
	OTPExpire    *time.Time         `json:"-" bson:"otpExpire"`
	OTPVerified  bool               `json:"-" bson:"otpVerified"`
	ProfilePhoto ProfilePhoto       `json:"profilePhoto" bson:"profilePhoto"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PublicUser is what listings expose.
type PublicUser struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	ProfilePhoto ProfilePhoto `json:"profilePhoto"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID.Hex(),
		Username:     u.Username,
		Email:        u.Email,
		ProfilePhoto: u.ProfilePhoto,
	}
}
