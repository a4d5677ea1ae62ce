package mailer

import (
	"context"
	"fmt"
	"log"
	"time"

	"gopkg.in/gomail.v2"
)

const OTP_SUBJECT = "Password Reset Request"

type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type SMTP struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTP(cfg SMTPConfig) *SMTP {
	return &SMTP{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

/*
* Build the plain text message
* Dial and send; gomail has no context support so ctx is only checked up front
 */
func (s *SMTP) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Println("Error while sending mail to", to, ":", err)
		return err
	}
	return nil
}

func OTPBody(code string, ttl time.Duration) string {
	return fmt.Sprintf("Your OTP is %s. This OTP will expire in %d minutes.", code, int(ttl.Minutes()))
}
