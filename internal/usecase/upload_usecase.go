package usecase

import (
	"context"
)

type UploadURL struct {
	StorageID string `json:"storage_id"`
	UploadURL string `json:"upload_url"`
}

type UploadUsecase interface {
	GenerateUploadURL(ctx context.Context) (UploadURL, error)
}

type Upload struct {
	store ObjectStore
}

func NewUploadUsecase(store ObjectStore) *Upload {
	return &Upload{store: store}
}

func (u *Upload) GenerateUploadURL(ctx context.Context) (UploadURL, error) {
	id, url, err := u.store.NewUploadURL(ctx)
	if err != nil {
		return UploadURL{}, internalError(err)
	}
	return UploadURL{StorageID: id, UploadURL: url}, nil
}
