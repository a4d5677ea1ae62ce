package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"DocSlot/apperrors"
	"DocSlot/models"
	"DocSlot/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(t *testing.T) (*ProfileService, *store.Store, *fakeImages) {
	t.Helper()
	s := store.NewMemory()
	images := &fakeImages{nextID: "img1"}
	return NewProfileService(s.Users, images), s, images
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	svc, s, _ := newProfile(t)
	seedUser(t, s.Users, testHasher(), "a@x.com", "password1", false)
	seedUser(t, s.Users, testHasher(), "b@x.com", "password1", true)

	list, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.True(t, list.Success)
	assert.Equal(t, int64(2), list.TotalUsers)
	assert.Len(t, list.Users, 2)
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	svc, s, _ := newProfile(t)
	a := seedUser(t, s.Users, testHasher(), "a@x.com", "password1", false)
	seedUser(t, s.Users, testHasher(), "b@x.com", "password1", false)

	u, err := svc.UpdateUser(ctx, a.ID.Hex(), models.UpdateUserInput{Username: strPtr(" alice ")})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "a@x.com", u.Email)

	_, err = svc.UpdateUser(ctx, a.ID.Hex(), models.UpdateUserInput{Email: strPtr("b@x.com")})
	assert.ErrorIs(t, err, apperrors.ErrEmailInUse)

	_, err = svc.UpdateUser(ctx, "507f191e810c19729de860ea", models.UpdateUserInput{})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	svc, s, _ := newProfile(t)
	a := seedUser(t, s.Users, testHasher(), "a@x.com", "password1", false)

	require.NoError(t, svc.DeleteUser(ctx, a.ID.Hex()))
	_, err := svc.GetUser(ctx, a.ID.Hex())
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.ErrorIs(t, svc.DeleteUser(ctx, a.ID.Hex()), apperrors.ErrUserNotFound)
}

func TestUploadPhoto_ReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	svc, s, images := newProfile(t)
	a := seedUser(t, s.Users, testHasher(), "a@x.com", "password1", false)

	photo, err := svc.UploadPhoto(ctx, a.ID.Hex(), strings.NewReader("png"), "a.png")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/img1.png", photo.URL)
	require.NotNil(t, photo.PublicID)
	assert.Equal(t, "img1", *photo.PublicID)
	assert.Empty(t, images.destroyed)

	images.nextID = "img2"
	_, err = svc.UploadPhoto(ctx, a.ID.Hex(), strings.NewReader("png"), "b.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"img1"}, images.destroyed)

	got, err := svc.GetUser(ctx, a.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "img2", *got.ProfilePhoto.PublicID)
}

func TestUploadPhoto_HostFailure(t *testing.T) {
	ctx := context.Background()
	svc, s, images := newProfile(t)
	a := seedUser(t, s.Users, testHasher(), "a@x.com", "password1", false)
	images.uploadErr = errors.New("cloud down")

	_, err := svc.UploadPhoto(ctx, a.ID.Hex(), strings.NewReader("png"), "a.png")
	assert.Equal(t, 500, apperrors.StatusOf(err))

	got, err := svc.GetUser(ctx, a.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProfilePhotoURL, got.ProfilePhoto.URL)
}

func TestRemovePhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing to remove", func(t *testing.T) {
		svc, s, _ := newProfile(t)
		a := seedUser(t, s.Users, testHasher(), "a@x.com", "password1", false)
		err := svc.RemovePhoto(ctx, a.ID.Hex())
		assert.Equal(t, apperrors.NO_PHOTO_TO_REMOVE, err.Error())
	})

	for _, result := range []string{"ok", "not found"} {
		t.Run("host says "+result, func(t *testing.T) {
			svc, s, images := newProfile(t)
			a := seedUser(t, s.Users, testHasher(), "a@x.com", "password1", false)
			_, err := svc.UploadPhoto(ctx, a.ID.Hex(), strings.NewReader("png"), "a.png")
			require.NoError(t, err)
			images.destroyResult = result

			require.NoError(t, svc.RemovePhoto(ctx, a.ID.Hex()))
			got, err := svc.GetUser(ctx, a.ID.Hex())
			require.NoError(t, err)
			assert.Equal(t, models.DefaultProfilePhotoURL, got.ProfilePhoto.URL)
			assert.Nil(t, got.ProfilePhoto.PublicID)
		})
	}

	t.Run("host refuses", func(t *testing.T) {
		svc, s, images := newProfile(t)
		a := seedUser(t, s.Users, testHasher(), "a@x.com", "password1", false)
		_, err := svc.UploadPhoto(ctx, a.ID.Hex(), strings.NewReader("png"), "a.png")
		require.NoError(t, err)
		images.destroyResult = "error"

		err = svc.RemovePhoto(ctx, a.ID.Hex())
		assert.Equal(t, 400, apperrors.StatusOf(err))
		got, _ := svc.GetUser(ctx, a.ID.Hex())
		assert.NotNil(t, got.ProfilePhoto.PublicID)
	})

	t.Run("transport error", func(t *testing.T) {
		svc, s, images := newProfile(t)
		a := seedUser(t, s.Users, testHasher(), "a@x.com", "password1", false)
		_, err := svc.UploadPhoto(ctx, a.ID.Hex(), strings.NewReader("png"), "a.png")
		require.NoError(t, err)
		images.destroyErr = errors.New("timeout")

		assert.Equal(t, 500, apperrors.StatusOf(svc.RemovePhoto(ctx, a.ID.Hex())))
	})
}
