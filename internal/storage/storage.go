package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"github.com/ignatzorin/creative-network/internal/config"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

// Разрешённые типы изображений (по магическим байтам).
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var (
	ErrEmptyUpload = apperror.FieldError("file", "файл не может быть пустым")
	ErrNotImage    = apperror.FieldError("file", "разрешены только изображения jpeg, png, gif и webp")
)

// Image — проверенное изображение, готовое к сохранению.
type Image struct {
	Data      []byte
	MIME      string
	Extension string
}

// Uploader сохраняет изображение и возвращает URL, по которому его можно показать.
type Uploader interface {
	Save(ctx context.Context, userID uuid.UUID, img Image) (string, error)
}

// ErrTooLarge — ошибка валидации для файла больше лимита.
func ErrTooLarge(maxBytes int64) error {
	return apperror.FieldError("file", fmt.Sprintf("размер файла превышает %d байт", maxBytes))
}

// ReadUpload читает не больше maxBytes, превышение лимита считается ошибкой.
func ReadUpload(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeBadRequest, "не удалось прочитать файл")
	}
	if len(data) == 0 {
		return nil, ErrEmptyUpload
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrTooLarge(maxBytes)
	}
	return data, nil
}

// DetectImage определяет реальный тип файла по содержимому, расширение имени не учитывается.
func DetectImage(data []byte) (Image, error) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown || !allowedMimeTypes[kind.MIME.Value] {
		return Image{}, ErrNotImage
	}
	return Image{Data: data, MIME: kind.MIME.Value, Extension: kind.Extension}, nil
}

// New выбирает хранилище по STORAGE_DRIVER.
func New(ctx context.Context, cfg config.StorageConfig) (Uploader, error) {
	switch cfg.Driver {
	case config.StorageMinio:
		return NewMinioStorage(ctx, cfg)
	case config.StorageDataURL:
		return NewDataURLStorage(), nil
	default:
		return NewLocalStorage(cfg.LocalPath, cfg.PublicURL)
	}
}

func objectName(userID uuid.UUID, ext string) string {
	return fmt.Sprintf("%s/%s.%s", userID.String(), uuid.NewString(), ext)
}
