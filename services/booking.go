package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"DocSlot/apperrors"
	"DocSlot/cache"
	"DocSlot/metrics"
	"DocSlot/models"
	"DocSlot/store"
)

const (
	BOOKING_SUCCESSFUL = "Booking successful"
	BOOKING_UPDATED    = "Booking updated successfully"
)

type BookingResult struct {
	Message    string            `json:"message"`
	BookedSlot models.BookedSlot `json:"bookedSlot"`
	Booking    *models.Booking   `json:"booking"`
}

type Availability struct {
	AvailableSlots []models.OpenSlots `json:"availableSlots"`
}

type BookingService struct {
	doctors  store.DoctorStore
	bookings store.BookingStore
	cache    cache.Cache
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewBookingService(doctors store.DoctorStore, bookings store.BookingStore, c cache.Cache, m *metrics.Metrics) *BookingService {
	return &BookingService{doctors: doctors, bookings: bookings, cache: c, metrics: m, now: time.Now}
}

func doctorLookupErr(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrInvalidID):
		return apperrors.ErrDoctorNotFound
	default:
		log.Println("Error while fetching the doctor: ", err)
		return err
	}
}

/*
* Day and time are matched after trimming surrounding whitespace
* Claim the hour on the doctor document in one conditional write
* Insert the booking
* If the insert fails, hand the hour back so it is not lost
 */
func (s *BookingService) BookSlot(ctx context.Context, doctorID, userID, day, hour string) (*BookingResult, error) {
	day, hour = strings.TrimSpace(day), strings.TrimSpace(hour)
	if day == "" || hour == "" {
		return nil, apperrors.Validation(apperrors.DAY_AND_TIME_REQUIRED)
	}
	doctorOID, err := store.ParseID(doctorID)
	if err != nil {
		return nil, apperrors.ErrDoctorNotFound
	}
	userOID, err := store.ParseID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	err = s.doctors.ClaimSlot(ctx, doctorID, day, hour)
	switch {
	case errors.Is(err, models.ErrNoSchedule):
		s.metrics.Booking("day_unavailable")
		return nil, apperrors.ErrDayUnavailable
	case errors.Is(err, models.ErrHourTaken):
		s.metrics.Booking("slot_taken")
		return nil, apperrors.ErrSlotTaken
	case err != nil:
		return nil, doctorLookupErr(err)
	}
	s.invalidateDoctor(ctx, doctorID)

	now := s.now()
	booking := &models.Booking{
		DoctorID:      doctorOID,
		UserID:        userOID,
		Day:           day,
		Time:          hour,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		log.Println("Error while creating the booking, releasing the slot: ", err)
		if relErr := s.doctors.ReleaseSlot(ctx, doctorID, day, hour); relErr != nil {
			log.Println("Error while releasing the slot", doctorID, day, hour, ":", relErr)
		}
		s.invalidateDoctor(ctx, doctorID)
		s.metrics.Booking("failed")
		return nil, err
	}

	s.metrics.Booking("booked")
	return &BookingResult{
		Message:    BOOKING_SUCCESSFUL,
		BookedSlot: models.BookedSlot{Day: day, Time: hour},
		Booking:    booking,
	}, nil
}

func (s *BookingService) invalidateDoctor(ctx context.Context, doctorID string) {
	if err := s.cache.Delete(ctx, cache.DoctorKey(doctorID)); err != nil {
		log.Println("Error while clearing the doctor cache: ", err)
	}
}

func (s *BookingService) Availability(ctx context.Context, doctorID string) (*Availability, error) {
	doctor, err := s.doctors.FindByID(ctx, doctorID)
	if err != nil {
		return nil, doctorLookupErr(err)
	}
	return &Availability{AvailableSlots: models.ToOpenSlots(doctor.Availability)}, nil
}

func (s *BookingService) list(ctx context.Context, filter store.BookingFilter, emptyMsg string) ([]models.BookingDetail, error) {
	bookings, err := s.bookings.List(ctx, filter)
	if errors.Is(err, store.ErrInvalidID) {
		return nil, apperrors.ErrInvalidID
	}
	if err != nil {
		log.Println("Error while listing the bookings: ", err)
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, apperrors.NotFound(emptyMsg)
	}
	return bookings, nil
}

func (s *BookingService) ListAll(ctx context.Context) ([]models.BookingDetail, error) {
	return s.list(ctx, store.BookingFilter{}, apperrors.NO_BOOKINGS_FOUND)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]models.BookingDetail, error) {
	return s.list(ctx, store.BookingFilter{UserID: userID}, apperrors.NO_BOOKINGS_FOR_USER)
}

func (s *BookingService) ListByDoctor(ctx context.Context, doctorID string) ([]models.BookingDetail, error) {
	return s.list(ctx, store.BookingFilter{DoctorID: doctorID}, apperrors.NO_BOOKINGS_FOR_DOCTOR)
}

// UpdateStatus overwrites both fields; there is no transition check.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID, status, paymentStatus string) (*models.Booking, error) {
	status, paymentStatus = strings.TrimSpace(status), strings.TrimSpace(paymentStatus)
	if status == "" || paymentStatus == "" {
		return nil, apperrors.Validation(apperrors.STATUS_AND_PAYMENT_MISSING)
	}
	booking, err := s.bookings.UpdateStatus(ctx, bookingID, status, paymentStatus)
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrInvalidID):
		return nil, apperrors.ErrBookingNotFound
	case err != nil:
		log.Println("Error while updating the booking: ", err)
		return nil, err
	}
	return booking, nil
}
