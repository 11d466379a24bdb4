package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage implements Storage against Cloudinary.
type CloudinaryStorage struct {
	client *cloudinary.Cloudinary
}

func NewCloudinary(cloudinaryURL string) (*CloudinaryStorage, error) {
	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary client: %w", err)
	}
	return &CloudinaryStorage{client: client}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, r io.Reader, folder string) (*UploadResult, error) {
	resp, err := s.client.Upload.Upload(ctx, r, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload failed: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload rejected: %s", resp.Error.Message)
	}

	return &UploadResult{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
	}, nil
}

func (s *CloudinaryStorage) Destroy(ctx context.Context, publicID string) error {
	resp, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	if resp.Result == "not found" {
		return ErrAssetNotFound
	}
	if resp.Result != "ok" {
		return fmt.Errorf("cloudinary destroy rejected: %s", resp.Result)
	}
	return nil
}
