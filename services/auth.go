package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"DocSlot/apperrors"
	"DocSlot/metrics"
	"DocSlot/models"
	"DocSlot/password"
	"DocSlot/store"
)

const (
	USER_REGISTERED  = "User registered successfully"
	PASSWORD_UPDATED = "Password updated successfully"
)

type TokenIssuer interface {
	Issue(u *models.User) (string, error)
}

type LoginResult struct {
	ID           string              `json:"_id"`
	IsAdmin      bool                `json:"isAdmin"`
	ProfilePhoto models.ProfilePhoto `json:"profilePhoto"`
	Token        string              `json:"token"`
}

type AuthService struct {
	users   store.UserStore
	hasher  password.Hasher
	tokens  TokenIssuer
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewAuthService(users store.UserStore, hasher password.Hasher, tokens TokenIssuer, m *metrics.Metrics) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, metrics: m, now: time.Now}
}

/*
* Check that the email is free
* Hash the password and create the account with the default photo
* The unique index catches a racing duplicate
 */
func (s *AuthService) Register(ctx context.Context, in models.RegisterInput) error {
	email := strings.TrimSpace(in.Email)
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return apperrors.ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Println("Error while checking the email: ", err)
		return err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		log.Println("Error while hashing the password: ", err)
		return err
	}

	now := s.now()
	user := &models.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        email,
		Password:     hash,
		ProfilePhoto: models.DefaultProfilePhoto(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return apperrors.ErrEmailTaken
		}
		log.Println("Error while creating the user: ", err)
		return err
	}
	return nil
}

/*
* Fetch the user by email
* Unknown email and wrong password give the same answer
* Issue a token carrying the current tokenVersion
 */
func (s *AuthService) Login(ctx context.Context, in models.LoginInput) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if errors.Is(err, store.ErrNotFound) {
		s.metrics.Login("invalid")
		return nil, apperrors.ErrInvalidLogin
	}
	if err != nil {
		log.Println("Error while fetching the user for login: ", err)
		return nil, err
	}

	ok, err := s.hasher.Verify(user.Password, in.Password)
	if err != nil {
		log.Println("Error while verifying the password: ", err)
	}
	if !ok {
		s.metrics.Login("invalid")
		return nil, apperrors.ErrInvalidLogin
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		log.Println("Error while generating the token: ", err)
		return nil, err
	}
	s.metrics.Login("success")
	return &LoginResult{
		ID:           user.ID.Hex(),
		IsAdmin:      user.IsAdmin,
		ProfilePhoto: user.ProfilePhoto,
		Token:        token,
	}, nil
}

/*
* Verify the old password
* Store the new hash; the store bumps tokenVersion with it
 */
func (s *AuthService) ChangePassword(ctx context.Context, userID string, in models.ChangePasswordInput) error {
	if in.NewPassword != in.ConfirmPassword {
		return apperrors.Validation(apperrors.PASSWORDS_DO_NOT_MATCH)
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return userLookupErr(err)
	}

	ok, err := s.hasher.Verify(user.Password, in.OldPassword)
	if err != nil {
		log.Println("Error while verifying the old password: ", err)
	}
	if !ok {
		return apperrors.Validation(apperrors.OLD_PASSWORD_INCORRECT)
	}

	hash, err := s.hasher.Hash(in.NewPassword)
	if err != nil {
		log.Println("Error while hashing the password: ", err)
		return err
	}
	if err := s.users.ChangePassword(ctx, userID, hash); err != nil {
		return userLookupErr(err)
	}
	return nil
}

// userLookupErr maps store lookups by id onto app errors.
func userLookupErr(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrInvalidID):
		return apperrors.ErrUserNotFound
	default:
		log.Println("Error while fetching the user: ", err)
		return err
	}
}
