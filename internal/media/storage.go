package media

import (
	"context"
	"errors"
	"io"
)

// UploadResult is what the hosted media service returns for a stored
// asset. PublicID is only needed to delete the asset later.
type UploadResult struct {
	URL      string
	PublicID string
}

// Storage is the hosted media service the app forwards photos to.
type Storage interface {
	Upload(ctx context.Context, r io.Reader, folder string) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}

var ErrAssetNotFound = errors.New("asset not found")

const (
	FolderMembers = "gym_members"
	FolderGallery = "gym_gallery"
)
