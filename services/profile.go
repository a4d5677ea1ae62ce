package services

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"DocSlot/apperrors"
	"DocSlot/media"
	"DocSlot/models"
	"DocSlot/store"
)

const (
	USER_UPDATED  = "User updated successfully"
	USER_DELETED  = "User deleted successfully"
	PHOTO_UPDATED = "Profile photo updated successfully!"
	PHOTO_REMOVED = "Photo removed successfully, and default photo has been set."
)

type UserList struct {
	Success    bool                `json:"success"`
	TotalUsers int64               `json:"totalUsers"`
	Users      []models.PublicUser `json:"users"`
}

type ProfileService struct {
	users  store.UserStore
	images media.ImageHost
}

func NewProfileService(users store.UserStore, images media.ImageHost) *ProfileService {
	return &ProfileService{users: users, images: images}
}

func (s *ProfileService) ListUsers(ctx context.Context) (*UserList, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		log.Println("Error while listing the users: ", err)
		return nil, err
	}
	total, err := s.users.Count(ctx)
	if err != nil {
		log.Println("Error while counting the users: ", err)
		return nil, err
	}
	list := &UserList{Success: true, TotalUsers: total, Users: make([]models.PublicUser, 0, len(users))}
	for _, u := range users {
		list.Users = append(list.Users, u.Public())
	}
	return list, nil
}

func (s *ProfileService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, userLookupErr(err)
	}
	return user, nil
}

/*
* Only the fields that were sent change
* Moving to an email another account holds is a conflict
 */
func (s *ProfileService) UpdateUser(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, error) {
	if in.Username != nil {
		v := strings.TrimSpace(*in.Username)
		in.Username = &v
	}
	if in.Email != nil {
		v := strings.TrimSpace(*in.Email)
		in.Email = &v
	}
	user, err := s.users.UpdateProfile(ctx, id, in.Username, in.Email)
	if errors.Is(err, store.ErrDuplicate) {
		return nil, apperrors.ErrEmailInUse
	}
	if err != nil {
		return nil, userLookupErr(err)
	}
	return user, nil
}

func (s *ProfileService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return userLookupErr(err)
	}
	return nil
}

/*
* Upload the new image first
* Drop the old remote asset; failing to do so is only logged
* Save the new url and public id
 */
func (s *ProfileService) UploadPhoto(ctx context.Context, id string, file io.Reader, filename string) (*models.ProfilePhoto, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, userLookupErr(err)
	}

	url, publicID, err := s.images.Upload(ctx, file, filename)
	if err != nil {
		return nil, apperrors.Upstream(apperrors.IMAGE_UPLOAD_FAILED, err)
	}

	if old := user.ProfilePhoto.PublicID; old != nil && *old != "" {
		if _, err := s.images.Destroy(ctx, *old); err != nil {
			log.Println("Error while removing the old photo", *old, ":", err)
		}
	}

	photo := models.ProfilePhoto{URL: url, PublicID: &publicID}
	if err := s.users.SetProfilePhoto(ctx, id, photo); err != nil {
		return nil, userLookupErr(err)
	}
	return &photo, nil
}

/*
* Nothing to do without a public id
* "ok" and "not found" both mean the remote asset is gone
* Reset to the default photo
 */
func (s *ProfileService) RemovePhoto(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return userLookupErr(err)
	}
	if user.ProfilePhoto.PublicID == nil || *user.ProfilePhoto.PublicID == "" {
		return apperrors.Validation(apperrors.NO_PHOTO_TO_REMOVE)
	}

	result, err := s.images.Destroy(ctx, *user.ProfilePhoto.PublicID)
	if err != nil {
		return apperrors.Upstream(apperrors.PHOTO_REMOVAL_FAILED, err)
	}
	if result != media.DestroyOK && result != media.DestroyNotFound {
		log.Println("Unexpected destroy result for", *user.ProfilePhoto.PublicID, ":", result)
		return apperrors.Validation(apperrors.PHOTO_REMOVAL_FAILED)
	}

	if err := s.users.SetProfilePhoto(ctx, id, models.DefaultProfilePhoto()); err != nil {
		return userLookupErr(err)
	}
	return nil
}
