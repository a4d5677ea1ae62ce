package services

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"math/big"
	"strconv"
	"strings"
	"time"

	"DocSlot/apperrors"
	"DocSlot/mailer"
	"DocSlot/metrics"
	"DocSlot/models"
	"DocSlot/password"
	"DocSlot/store"
)

const (
	OTP_SENT       = "OTP sent to your email"
	OTP_VERIFIED   = "OTP verified, proceed to reset password"
	PASSWORD_RESET = "Password reset successfully"

	otpMin = 1000
	otpMax = 9999
)

// RandomOTP draws a code from [1000, 9999).
func RandomOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+otpMin, 10), nil
}

type OTPService struct {
	users    store.UserStore
	hasher   password.Hasher
	mail     mailer.Sender
	metrics  *metrics.Metrics
	ttl      time.Duration
	now      func() time.Time
	generate func() (string, error)
}

func NewOTPService(users store.UserStore, hasher password.Hasher, mail mailer.Sender, ttl time.Duration, m *metrics.Metrics) *OTPService {
	return &OTPService{
		users:    users,
		hasher:   hasher,
		mail:     mail,
		metrics:  m,
		ttl:      ttl,
		now:      time.Now,
		generate: RandomOTP,
	}
}

func (s *OTPService) userByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		log.Println("Error while fetching the user by email: ", err)
		return nil, err
	}
	return user, nil
}

/*
* Generate the code and store it with its expiry
* Mail it; a mail failure leaves the stored code in place
 */
func (s *OTPService) Request(ctx context.Context, email string) error {
	user, err := s.userByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := s.generate()
	if err != nil {
		log.Println("Error while generating the otp: ", err)
		return err
	}
	if err := s.users.SetOTP(ctx, user.ID.Hex(), code, s.now().Add(s.ttl)); err != nil {
		log.Println("Error while saving the otp: ", err)
		return err
	}

	if err := s.mail.Send(ctx, user.Email, mailer.OTP_SUBJECT, mailer.OTPBody(code, s.ttl)); err != nil {
		log.Println("Error while mailing the otp: ", err)
		s.metrics.OTP("mail_failed")
		return apperrors.Upstream(apperrors.OTP_MAIL_FAILED, err)
	}
	s.metrics.OTP("requested")
	return nil
}

/*
* An expired code fails as expired whatever was typed
* Otherwise the code has to match exactly
* Success opens the reset gate and clears the code
 */
func (s *OTPService) Verify(ctx context.Context, email, code string) error {
	user, err := s.userByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user.OTP != nil && (user.OTPExpire == nil || !s.now().Before(*user.OTPExpire)) {
		s.metrics.OTP("expired")
		return apperrors.ErrOTPExpired
	}
	if user.OTP == nil || *user.OTP != strings.TrimSpace(code) {
		s.metrics.OTP("invalid")
		return apperrors.ErrInvalidOTP
	}

	if err := s.users.MarkOTPVerified(ctx, user.ID.Hex()); err != nil {
		return userLookupErr(err)
	}
	s.metrics.OTP("verified")
	return nil
}

/*
* Refuse early when the gate is shut
* The store re-checks the gate in the same write that closes it
 */
func (s *OTPService) Reset(ctx context.Context, email, newPassword string) error {
	user, err := s.userByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !user.OTPVerified {
		return apperrors.ErrOTPNotVerified
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		log.Println("Error while hashing the password: ", err)
		return err
	}
	err = s.users.ResetPassword(ctx, user.ID.Hex(), hash)
	switch {
	case errors.Is(err, store.ErrPrecondition):
		return apperrors.ErrOTPNotVerified
	case err != nil:
		return userLookupErr(err)
	}
	s.metrics.OTP("reset")
	return nil
}
