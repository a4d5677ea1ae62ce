package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type RegisterInput struct {
	Username        string `json:"username" binding:"required,min=2,max=100"`
	Email           string `json:"email" binding:"required,email,max=100"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// OTPCode accepts the code either as a JSON string or a JSON number.
type OTPCode string

func (o *OTPCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*o = OTPCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if _, err := strconv.Atoi(n.String()); err != nil {
		return err
	}
	*o = OTPCode(n.String())
	return nil
}

type VerifyOTPInput struct {
	Email string  `json:"email" binding:"required,email"`
	OTP   OTPCode `json:"otp" binding:"required,len=4,numeric"`
}

type ResetPasswordInput struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type ChangePasswordInput struct {
	OldPassword     string `json:"oldPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}

type DoctorInput struct {
	Name           string        `json:"name" binding:"required"`
	Email          string        `json:"email" binding:"required,email"`
	Password       string        `json:"password" binding:"required,min=6"`
	Specialization string        `json:"specialization" binding:"required"`
	Experience     *int          `json:"experience" binding:"required,min=0"`
	Qualifications []string      `json:"qualifications" binding:"required,dive,required"`
	Availability   []DaySchedule `json:"availability" binding:"required,dive"`
	Fee            *float64      `json:"fee" binding:"required,min=0"`
	Addresses      []string      `json:"addresses" binding:"omitempty,dive,required"`
}

// DoctorUpdate only overwrites the fields that were sent.
type DoctorUpdate struct {
	Name           *string       `json:"name" binding:"omitempty,min=1"`
	Specialization *string       `json:"specialization" binding:"omitempty,min=1"`
	Experience     *int          `json:"experience" binding:"omitempty,min=0"`
	Qualifications []string      `json:"qualifications" binding:"omitempty,dive,required"`
	Availability   []DaySchedule `json:"availability" binding:"omitempty,dive"`
	Fee            *float64      `json:"fee" binding:"omitempty,min=0"`
	Addresses      []string      `json:"addresses" binding:"omitempty,dive,required"`
}

// BookSlotInput and UpdateBookingStatusInput are checked by the booking
// service, which owns their error messages.
type BookSlotInput struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

type UpdateBookingStatusInput struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

type UpdateUserInput struct {
	Username *string `json:"username" binding:"omitempty,min=2,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
}
