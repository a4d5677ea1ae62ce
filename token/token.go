package token

import (
	"context"
	"errors"
	"log"
	"time"

	"DocSlot/apperrors"
	"DocSlot/models"
	"DocSlot/store"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed session bundle. TokenVersion must equal the user's
// stored counter for the token to be accepted.
type Claims struct {
	UserID       string `json:"_id"`
	IsAdmin      bool   `json:"isAdmin"`
	TokenVersion int    `json:"tokenVersion"`
	jwt.RegisteredClaims
}

type VersionLookup interface {
	TokenVersion(ctx context.Context, userID string) (int, error)
}

type Service struct {
	secret []byte
	ttl    time.Duration
	users  VersionLookup
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration, users VersionLookup) *Service {
	return &Service{secret: []byte(secret), ttl: ttl, users: users, now: time.Now}
}

func (s *Service) Issue(u *models.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID:       u.ID.Hex(),
		IsAdmin:      u.IsAdmin,
		TokenVersion: u.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse checks signature and expiry only.
func (s *Service) Parse(raw string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidToken, err)
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || claims.UserID == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

/*
* Parse the token
* Look up the user it names
* Reject it when the embedded tokenVersion no longer matches
 */
func (s *Service) Verify(ctx context.Context, raw string) (*Claims, error) {
	claims, err := s.Parse(raw)
	if err != nil {
		return nil, err
	}
	version, err := s.users.TokenVersion(ctx, claims.UserID)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
		return nil, apperrors.ErrTokenUserNotFound
	}
	if err != nil {
		log.Println("Error while reading tokenVersion: ", err)
		return nil, err
	}
	if version != claims.TokenVersion {
		return nil, apperrors.ErrStaleToken
	}
	return claims, nil
}
