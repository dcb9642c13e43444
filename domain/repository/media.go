package repository

import "context"

// UploadResult is what the media host hands back for a stored asset.
// Duration is zero when the host cannot probe it.
type UploadResult struct {
	URL      string
	Duration float64
}

// IMediaStorage is the media host boundary. Implementations upload a local
// temp file and return its public URL; failures abort the calling operation
// before any document references the asset.
type IMediaStorage interface {
	Upload(ctx context.Context, localPath, contentType string) (UploadResult, error)
}
