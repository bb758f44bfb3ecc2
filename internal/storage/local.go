package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStorage хранит изображения на диске, раздаются они через MEDIA_PUBLIC_URL.
type LocalStorage struct {
	rootPath  string
	publicURL string
}

func NewLocalStorage(rootPath, publicURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", rootPath, err)
	}
	return &LocalStorage{rootPath: rootPath, publicURL: publicURL}, nil
}

// Root возвращает каталог, который роутер раздаёт статикой.
func (s *LocalStorage) Root() string {
	return s.rootPath
}

// Save пишет во временный файл и затем переименовывает его.
func (s *LocalStorage) Save(ctx context.Context, userID uuid.UUID, img Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := objectName(userID, img.Extension)
	targetPath := filepath.Join(s.rootPath, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		return "", fmt.Errorf("storage: не удалось создать каталог пользователя: %w", err)
	}

	tempPath := targetPath + ".tmp"
	if err := os.WriteFile(tempPath, img.Data, 0o644); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: ошибка записи файла: %w", err)
	}
	if err := os.Rename(tempPath, targetPath); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("storage: не удалось переименовать файл: %w", err)
	}

	return s.publicURL + "/" + name, nil
}

// Delete удаляет файл по относительному пути, отсутствие файла не ошибка.
func (s *LocalStorage) Delete(ctx context.Context, relativePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := filepath.Join(s.rootPath, filepath.Clean("/"+relativePath))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: не удалось удалить файл: %w", err)
	}
	return nil
}
