package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOTPBody(t *testing.T) {
	assert.Equal(t, "Your OTP is 4821. This OTP will expire in 10 minutes.", OTPBody("4821", 10*time.Minute))
}

func TestSMTP_CancelledContext(t *testing.T) {
	s := NewSMTP(SMTPConfig{Host: "localhost", Port: 1, From: "noreply@example.com"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Send(ctx, "a@x.com", OTP_SUBJECT, "body"), context.Canceled)
}
