package media

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	DestroyOK       = "ok"
	DestroyNotFound = "not found"
)

// ImageHost stores profile photos remotely.
type ImageHost interface {
	Upload(ctx context.Context, file io.Reader, filename string) (url, publicID string, err error)
	// Destroy returns the host's result string ("ok", "not found", ...).
	Destroy(ctx context.Context, publicID string) (string, error)
}

type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary(cloudName, apiKey, apiSecret string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Println("Error while configuring cloudinary: ", err)
		return nil, err
	}
	return &Cloudinary{cld: cld}, nil
}

/*
* Upload the file with resource type auto
* The host reports its own failures in the result body
 */
func (c *Cloudinary) Upload(ctx context.Context, file io.Reader, filename string) (string, string, error) {
	res, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		ResourceType: "auto",
	})
	if err != nil {
		log.Println("Cloudinary Upload Error for", filename, ":", err)
		return "", "", err
	}
	if res.Error.Message != "" {
		log.Println("Cloudinary Upload Error: ", res.Error.Message)
		return "", "", errors.New(res.Error.Message)
	}
	return res.SecureURL, res.PublicID, nil
}

func (c *Cloudinary) Destroy(ctx context.Context, publicID string) (string, error) {
	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		log.Println("Cloudinary Destroy Error: ", err)
		return "", err
	}
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	return res.Result, nil
}

var ErrNotConfigured = errors.New("image host is not configured")

// Unconfigured stands in when no cloudinary credentials are set; every call fails.
type Unconfigured struct{}

func (Unconfigured) Upload(context.Context, io.Reader, string) (string, string, error) {
	return "", "", ErrNotConfigured
}

func (Unconfigured) Destroy(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
