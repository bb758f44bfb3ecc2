package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-network/internal/config"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

// pngHeader — сигнатура PNG и начало IHDR, достаточные для filetype.
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

func TestReadUpload(t *testing.T) {
	data, err := ReadUpload(bytes.NewReader([]byte("abc")), 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)

	_, err = ReadUpload(bytes.NewReader([]byte("abcd")), 3)
	assert.True(t, apperror.IsValidation(err))

	_, err = ReadUpload(bytes.NewReader(nil), 3)
	assert.ErrorIs(t, err, ErrEmptyUpload)
}

func TestDetectImage(t *testing.T) {
	img, err := DetectImage(pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.MIME)
	assert.Equal(t, "png", img.Extension)

	_, err = DetectImage([]byte("%PDF-1.4 not an image"))
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = DetectImage([]byte("plain text"))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStorage(root, "/media")
	require.NoError(t, err)

	userID := uuid.New()
	url, err := s.Save(context.Background(), userID, Image{Data: pngHeader, MIME: "image/png", Extension: "png"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/media/"+userID.String()+"/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	relative := strings.TrimPrefix(url, "/media/")
	stored, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relative)))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)

	require.NoError(t, s.Delete(context.Background(), relative))
	require.NoError(t, s.Delete(context.Background(), relative))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(relative)))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_CancelledContext(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "/media")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Save(ctx, uuid.New(), Image{Data: pngHeader, Extension: "png"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDataURLStorage(t *testing.T) {
	url, err := NewDataURLStorage().Save(context.Background(), uuid.New(), Image{Data: []byte("hi"), MIME: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,aGk=", url)
}

func TestNew_SelectsDriver(t *testing.T) {
	u, err := New(context.Background(), config.StorageConfig{Driver: config.StorageDataURL})
	require.NoError(t, err)
	assert.IsType(t, &DataURLStorage{}, u)

	u, err = New(context.Background(), config.StorageConfig{Driver: config.StorageLocal, LocalPath: t.TempDir(), PublicURL: "/media"})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, u)
}

func TestMinioPublicURL(t *testing.T) {
	assert.Equal(t, "http://localhost:9000/uploads",
		minioPublicURL(config.StorageConfig{MinioEndpoint: "localhost:9000", MinioBucket: "uploads"}))
	assert.Equal(t, "https://cdn.example.com",
		minioPublicURL(config.StorageConfig{MinioPublicURL: "https://cdn.example.com/", MinioUseSSL: true}))
}
