package store

import (
	"context"
	"errors"
	"time"

	"DocSlot/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserCollection    = "USERS"
	DoctorCollection  = "DOCTORS"
	BookingCollection = "BOOKINGS"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicate    = errors.New("duplicate key")
	ErrInvalidID    = errors.New("invalid object id")
	ErrPrecondition = errors.New("document state does not allow this update")
)

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int64, error)
	UpdateProfile(ctx context.Context, id string, username, email *string) (*models.User, error)
	Delete(ctx context.Context, id string) error
	SetOTP(ctx context.Context, id, code string, expire time.Time) error
	// MarkOTPVerified opens the reset gate and clears the code and its expiry together.
	MarkOTPVerified(ctx context.Context, id string) error
	// ResetPassword only applies while the reset gate is open and closes it; it
	// returns ErrPrecondition otherwise.
	ResetPassword(ctx context.Context, id, hash string) error
	ChangePassword(ctx context.Context, id, hash string) error
	SetProfilePhoto(ctx context.Context, id string, photo models.ProfilePhoto) error
	TokenVersion(ctx context.Context, id string) (int, error)
}

type DoctorStore interface {
	Create(ctx context.Context, d *models.Doctor) error
	FindByID(ctx context.Context, id string) (*models.Doctor, error)
	List(ctx context.Context) ([]models.Doctor, error)
	SearchBySpecialization(ctx context.Context, term string) ([]models.Doctor, error)
	Update(ctx context.Context, id string, upd models.DoctorUpdate) (*models.Doctor, error)
	Delete(ctx context.Context, id string) error
	// ClaimSlot removes hour from day in one conditional write. It returns
	// ErrNotFound, models.ErrNoSchedule or models.ErrHourTaken when it cannot.
	ClaimSlot(ctx context.Context, id, day, hour string) error
	ReleaseSlot(ctx context.Context, id, day, hour string) error
}

type BookingFilter struct {
	UserID   string
	DoctorID string
}

type BookingStore interface {
	Create(ctx context.Context, b *models.Booking) error
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	// List returns matching bookings newest first, with user and doctor joined in.
	List(ctx context.Context, filter BookingFilter) ([]models.BookingDetail, error)
	UpdateStatus(ctx context.Context, id, status, paymentStatus string) (*models.Booking, error)
}

type Store struct {
	Users    UserStore
	Doctors  DoctorStore
	Bookings BookingStore
}

func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
