package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"DocSlot/models"
	"DocSlot/password"
	"DocSlot/store"
	"DocSlot/token"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fastArgon2 = password.Argon2Params{Memory: 1024, Time: 1, Threads: 1, SaltLen: 16, KeyLen: 32}

func testHasher() password.Hasher { return password.NewArgon2(fastArgon2) }

func testBcrypt() password.Hasher { return password.NewBcrypt(bcrypt.MinCost) }

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to, subject, body})
	return nil
}

type fakeImages struct {
	uploadErr     error
	destroyResult string
	destroyErr    error
	destroyed     []string
	nextID        string
}

func (f *fakeImages) Upload(_ context.Context, file io.Reader, _ string) (string, string, error) {
	if f.uploadErr != nil {
		return "", "", f.uploadErr
	}
	if _, err := io.ReadAll(file); err != nil {
		return "", "", err
	}
	return "https://img.example.com/" + f.nextID + ".png", f.nextID, nil
}

func (f *fakeImages) Destroy(_ context.Context, publicID string) (string, error) {
	f.destroyed = append(f.destroyed, publicID)
	if f.destroyErr != nil {
		return "", f.destroyErr
	}
	if f.destroyResult == "" {
		return "ok", nil
	}
	return f.destroyResult, nil
}

// failingBookings refuses every insert.
type failingBookings struct {
	store.BookingStore
}

func (failingBookings) Create(context.Context, *models.Booking) error {
	return errors.New("insert failed")
}

func seedUser(t *testing.T, users store.UserStore, hasher password.Hasher, email, plain string, admin bool) *models.User {
	t.Helper()
	hash, err := hasher.Hash(plain)
	require.NoError(t, err)
	u := &models.User{
		Username:     "user",
		Email:        email,
		Password:     hash,
		IsAdmin:      admin,
		ProfilePhoto: models.DefaultProfilePhoto(),
	}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func seedDoctor(t *testing.T, doctors store.DoctorStore, email string, schedule []models.DaySchedule) *models.Doctor {
	t.Helper()
	d := &models.Doctor{
		Name:           "Dr. Grey",
		Email:          email,
		Specialization: "Cardiology",
		Availability:   schedule,
		CreatedAt:      time.Now(),
	}
	require.NoError(t, doctors.Create(context.Background(), d))
	return d
}

func testTokens(users store.UserStore) *token.Service {
	return token.NewService("test-secret", time.Hour, users)
}
