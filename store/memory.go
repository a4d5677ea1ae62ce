package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"DocSlot/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewMemory returns a Store kept in process memory. Every method copies
// documents in and out so callers never share slices with the store.
func NewMemory() *Store {
	users := &MemoryUsers{byID: map[primitive.ObjectID]*models.User{}}
	doctors := &MemoryDoctors{byID: map[primitive.ObjectID]*models.Doctor{}}
	return &Store{
		Users:   users,
		Doctors: doctors,
		Bookings: &MemoryBookings{
			byID:    map[primitive.ObjectID]*models.Booking{},
			users:   users,
			doctors: doctors,
		},
	}
}

type MemoryUsers struct {
	mu   sync.RWMutex
	byID map[primitive.ObjectID]*models.User
}

func copyUser(u *models.User) *models.User {
	c := *u
	if u.OTP != nil {
		otp := *u.OTP
		c.OTP = &otp
	}
	if u.OTPExpire != nil {
		exp := *u.OTPExpire
		c.OTPExpire = &exp
	}
	if u.ProfilePhoto.PublicID != nil {
		pid := *u.ProfilePhoto.PublicID
		c.ProfilePhoto.PublicID = &pid
	}
	return &c
}

func (m *MemoryUsers) emailTaken(email string, except primitive.ObjectID) bool {
	for id, u := range m.byID {
		if id != except && u.Email == email {
			return true
		}
	}
	return false
}

func (m *MemoryUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.emailTaken(u.Email, primitive.NilObjectID) {
		return ErrDuplicate
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	m.byID[u.ID] = copyUser(u)
	return nil
}

func (m *MemoryUsers) get(id string) (*models.User, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	u, ok := m.byID[oid]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (m *MemoryUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return copyUser(u), nil
}

func (m *MemoryUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.byID {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryUsers) List(_ context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, *copyUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out, nil
}

func (m *MemoryUsers) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.byID)), nil
}

func (m *MemoryUsers) UpdateProfile(_ context.Context, id string, username, email *string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, err := m.get(id)
	if err != nil {
		return nil, err
	}
	if email != nil && m.emailTaken(*email, u.ID) {
		return nil, ErrDuplicate
	}
	if username != nil {
		u.Username = *username
	}
	if email != nil {
		u.Email = *email
	}
	u.UpdatedAt = time.Now()
	return copyUser(u), nil
}

func (m *MemoryUsers) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, err := m.get(id)
	if err != nil {
		return err
	}
	delete(m.byID, u.ID)
	return nil
}

func (m *MemoryUsers) mutate(id string, fn func(u *models.User) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, err := m.get(id)
	if err != nil {
		return err
	}
	if err := fn(u); err != nil {
		return err
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryUsers) SetOTP(_ context.Context, id, code string, expire time.Time) error {
	return m.mutate(id, func(u *models.User) error {
		u.OTP = &code
		u.OTPExpire = &expire
		return nil
	})
}

func (m *MemoryUsers) MarkOTPVerified(_ context.Context, id string) error {
	return m.mutate(id, func(u *models.User) error {
		u.OTPVerified = true
		u.OTP = nil
		u.OTPExpire = nil
		return nil
	})
}

func (m *MemoryUsers) ResetPassword(_ context.Context, id, hash string) error {
	return m.mutate(id, func(u *models.User) error {
		if !u.OTPVerified {
			return ErrPrecondition
		}
		u.Password = hash
		u.TokenVersion++
		u.OTPVerified = false
		return nil
	})
}

func (m *MemoryUsers) ChangePassword(_ context.Context, id, hash string) error {
	return m.mutate(id, func(u *models.User) error {
		u.Password = hash
		u.TokenVersion++
		return nil
	})
}

func (m *MemoryUsers) SetProfilePhoto(_ context.Context, id string, photo models.ProfilePhoto) error {
	return m.mutate(id, func(u *models.User) error {
		u.ProfilePhoto = photo
		return nil
	})
}

func (m *MemoryUsers) TokenVersion(_ context.Context, id string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, err := m.get(id)
	if err != nil {
		return 0, err
	}
	return u.TokenVersion, nil
}

type MemoryDoctors struct {
	mu   sync.RWMutex
	byID map[primitive.ObjectID]*models.Doctor
}

func copyDoctor(d *models.Doctor) *models.Doctor {
	c := *d
	c.Qualifications = append([]string(nil), d.Qualifications...)
	c.Addresses = append([]string(nil), d.Addresses...)
	c.Availability = make([]models.DaySchedule, 0, len(d.Availability))
	for _, s := range d.Availability {
		c.Availability = append(c.Availability, models.DaySchedule{Day: s.Day, Hours: append([]string(nil), s.Hours...)})
	}
	return &c
}

func (m *MemoryDoctors) Create(_ context.Context, d *models.Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == d.Email {
			return ErrDuplicate
		}
	}
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	m.byID[d.ID] = copyDoctor(d)
	return nil
}

func (m *MemoryDoctors) get(id string) (*models.Doctor, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	d, ok := m.byID[oid]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

func (m *MemoryDoctors) FindByID(_ context.Context, id string) (*models.Doctor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return copyDoctor(d), nil
}

func (m *MemoryDoctors) filter(keep func(d *models.Doctor) bool) []models.Doctor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Doctor{}
	for _, d := range m.byID {
		if keep(d) {
			out = append(out, *copyDoctor(d))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out
}

func (m *MemoryDoctors) List(_ context.Context) ([]models.Doctor, error) {
	return m.filter(func(*models.Doctor) bool { return true }), nil
}

func (m *MemoryDoctors) SearchBySpecialization(_ context.Context, term string) ([]models.Doctor, error) {
	term = strings.ToLower(term)
	return m.filter(func(d *models.Doctor) bool {
		return strings.Contains(strings.ToLower(d.Specialization), term)
	}), nil
}

func (m *MemoryDoctors) Update(_ context.Context, id string, upd models.DoctorUpdate) (*models.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.get(id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		d.Name = *upd.Name
	}
	if upd.Specialization != nil {
		d.Specialization = *upd.Specialization
	}
	if upd.Experience != nil {
		d.Experience = *upd.Experience
	}
	if upd.Qualifications != nil {
		d.Qualifications = append([]string(nil), upd.Qualifications...)
	}
	if upd.Availability != nil {
		d.Availability = copyDoctor(&models.Doctor{Availability: upd.Availability}).Availability
	}
	if upd.Fee != nil {
		d.Fee = *upd.Fee
	}
	if upd.Addresses != nil {
		d.Addresses = append([]string(nil), upd.Addresses...)
	}
	d.UpdatedAt = time.Now()
	return copyDoctor(d), nil
}

func (m *MemoryDoctors) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.get(id)
	if err != nil {
		return err
	}
	delete(m.byID, d.ID)
	return nil
}

func (m *MemoryDoctors) ClaimSlot(_ context.Context, id, day, hour string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.get(id)
	if err != nil {
		return err
	}
	schedule, err := models.ClaimHour(d.Availability, day, hour)
	if err != nil {
		return err
	}
	d.Availability = schedule
	d.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryDoctors) ReleaseSlot(_ context.Context, id, day, hour string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := m.get(id)
	if err != nil {
		return err
	}
	d.Availability = models.ReleaseHour(d.Availability, day, hour)
	d.UpdatedAt = time.Now()
	return nil
}

type MemoryBookings struct {
	mu   sync.RWMutex
	byID map[primitive.ObjectID]*models.Booking

	users   *MemoryUsers
	doctors *MemoryDoctors
}

func (m *MemoryBookings) Create(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	c := *b
	m.byID[b.ID] = &c
	return nil
}

func (m *MemoryBookings) get(id string) (*models.Booking, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	b, ok := m.byID[oid]
	if !ok {
		return nil, ErrNotFound
	}
	return b, nil
}

func (m *MemoryBookings) FindByID(_ context.Context, id string) (*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, err := m.get(id)
	if err != nil {
		return nil, err
	}
	c := *b
	return &c, nil
}

func (m *MemoryBookings) List(_ context.Context, filter BookingFilter) ([]models.BookingDetail, error) {
	for _, id := range []string{filter.UserID, filter.DoctorID} {
		if id == "" {
			continue
		}
		if _, err := ParseID(id); err != nil {
			return nil, err
		}
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.BookingDetail{}
	for _, b := range m.byID {
		if filter.UserID != "" && b.UserID.Hex() != filter.UserID {
			continue
		}
		if filter.DoctorID != "" && b.DoctorID.Hex() != filter.DoctorID {
			continue
		}
		out = append(out, m.detail(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryBookings) detail(b *models.Booking) models.BookingDetail {
	d := models.BookingDetail{
		ID:            b.ID,
		Day:           b.Day,
		Time:          b.Time,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if m.users != nil {
		m.users.mu.RLock()
		if u, ok := m.users.byID[b.UserID]; ok {
			d.User = &models.BookingUser{ID: u.ID, Username: u.Username, Email: u.Email}
		}
		m.users.mu.RUnlock()
	}
	if m.doctors != nil {
		m.doctors.mu.RLock()
		if doc, ok := m.doctors.byID[b.DoctorID]; ok {
			d.Doctor = &models.BookingDoctor{ID: doc.ID, Name: doc.Name, Specialization: doc.Specialization}
		}
		m.doctors.mu.RUnlock()
	}
	return d
}

func (m *MemoryBookings) UpdateStatus(_ context.Context, id, status, paymentStatus string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := m.get(id)
	if err != nil {
		return nil, err
	}
	b.Status = status
	b.PaymentStatus = paymentStatus
	b.UpdatedAt = time.Now()
	c := *b
	return &c, nil
}
