package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"DocSlot/apperrors"
	"DocSlot/cache"
	"DocSlot/models"
	"DocSlot/password"
	"DocSlot/store"
)

const (
	DOCTOR_ADDED   = "Doctor added successfully"
	DOCTOR_UPDATED = "Doctor updated successfully"
	DOCTOR_DELETED = "Doctor deleted successfully"
)

type DoctorList struct {
	Count   int             `json:"count"`
	Doctors []models.Doctor `json:"doctors"`
}

type DoctorService struct {
	doctors store.DoctorStore
	hasher  password.Hasher
	cache   cache.Cache
	ttl     time.Duration
	now     func() time.Time
}

func NewDoctorService(doctors store.DoctorStore, hasher password.Hasher, c cache.Cache) *DoctorService {
	return &DoctorService{doctors: doctors, hasher: hasher, cache: c, ttl: cache.DoctorTTL, now: time.Now}
}

/*
* Hash the doctor's password with bcrypt
* Record the admin who created the doctor
* A duplicate email is a conflict
 */
func (s *DoctorService) Create(ctx context.Context, adminID string, in models.DoctorInput) (*models.Doctor, error) {
	adminOID, err := store.ParseID(adminID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		log.Println("Error while hashing the doctor password: ", err)
		return nil, err
	}

	now := s.now()
	doctor := &models.Doctor{
		UserID:         adminOID,
		Name:           strings.TrimSpace(in.Name),
		Email:          strings.TrimSpace(in.Email),
		Password:       hash,
		Specialization: strings.TrimSpace(in.Specialization),
		Qualifications: in.Qualifications,
		Availability:   in.Availability,
		Addresses:      in.Addresses,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if in.Experience != nil {
		doctor.Experience = *in.Experience
	}
	if in.Fee != nil {
		doctor.Fee = *in.Fee
	}
	if doctor.Availability == nil {
		doctor.Availability = []models.DaySchedule{}
	}

	if err := s.doctors.Create(ctx, doctor); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperrors.ErrDoctorEmailTaken
		}
		log.Println("Error while creating the doctor: ", err)
		return nil, err
	}
	return doctor, nil
}

func (s *DoctorService) List(ctx context.Context) (*DoctorList, error) {
	doctors, err := s.doctors.List(ctx)
	if err != nil {
		log.Println("Error while listing the doctors: ", err)
		return nil, err
	}
	return &DoctorList{Count: len(doctors), Doctors: doctors}, nil
}

/*
* Serve from the cache when possible
* On a miss read the store and fill the cache
* Cache failures never fail the read
 */
func (s *DoctorService) Get(ctx context.Context, id string) (*models.Doctor, error) {
	key := cache.DoctorKey(id)
	var cached models.Doctor
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Println("Error while reading the doctor cache: ", err)
	}
	if found {
		return &cached, nil
	}

	doctor, err := s.doctors.FindByID(ctx, id)
	if err != nil {
		return nil, doctorLookupErr(err)
	}
	if err := s.cache.Set(ctx, key, doctor, s.ttl); err != nil {
		log.Println("Error while writing the doctor cache: ", err)
	}
	return doctor, nil
}

// Update only touches the fields present in upd.
func (s *DoctorService) Update(ctx context.Context, id string, upd models.DoctorUpdate) (*models.Doctor, error) {
	doctor, err := s.doctors.Update(ctx, id, upd)
	if err != nil {
		return nil, doctorLookupErr(err)
	}
	s.invalidate(ctx, id)
	return doctor, nil
}

func (s *DoctorService) Delete(ctx context.Context, id string) error {
	if err := s.doctors.Delete(ctx, id); err != nil {
		return doctorLookupErr(err)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *DoctorService) SearchBySpecialty(ctx context.Context, specialty string) (*DoctorList, error) {
	specialty = strings.TrimSpace(specialty)
	if specialty == "" {
		return nil, apperrors.Validation(apperrors.INVALID_SPECIALTY)
	}
	doctors, err := s.doctors.SearchBySpecialization(ctx, specialty)
	if err != nil {
		log.Println("Error while searching the doctors: ", err)
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, apperrors.NotFound(apperrors.NO_DOCTORS_FOR_SPECIALTY)
	}
	return &DoctorList{Count: len(doctors), Doctors: doctors}, nil
}

func (s *DoctorService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, cache.DoctorKey(id)); err != nil {
		log.Println("Error while clearing the doctor cache: ", err)
	}
}
