package storage

import (
	"context"
	"encoding/base64"

	"github.com/google/uuid"
)

// DataURLStorage ничего не сохраняет: изображение встраивается в строку data:.
type DataURLStorage struct{}

func NewDataURLStorage() *DataURLStorage {
	return &DataURLStorage{}
}

func (DataURLStorage) Save(ctx context.Context, _ uuid.UUID, img Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "data:" + img.MIME + ";base64," + base64.StdEncoding.EncodeToString(img.Data), nil
}
