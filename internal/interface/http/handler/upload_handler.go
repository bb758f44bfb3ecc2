package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/creative-network/internal/domain/session"
	"github.com/ignatzorin/creative-network/internal/interface/http/response"
	"github.com/ignatzorin/creative-network/internal/storage"
)

type UploadHandler struct {
	uploader storage.Uploader
	maxBytes int64
}

func NewUploadHandler(uploader storage.Uploader, maxBytes int64) *UploadHandler {
	return &UploadHandler{uploader: uploader, maxBytes: maxBytes}
}

// Upload принимает multipart-поле file и возвращает URL сохранённого изображения.
func (h *UploadHandler) Upload(c *gin.Context) {
	actor := actorOf(c)
	if err := session.Require(actor); err != nil {
		response.Error(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "файл не передан")
		return
	}
	if fileHeader.Size > h.maxBytes {
		response.Error(c, storage.ErrTooLarge(h.maxBytes))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "не удалось открыть файл")
		return
	}
	defer file.Close()

	data, err := storage.ReadUpload(file, h.maxBytes)
	if err != nil {
		response.Error(c, err)
		return
	}
	img, err := storage.DetectImage(data)
	if err != nil {
		response.Error(c, err)
		return
	}

	url, err := h.uploader.Save(c.Request.Context(), actor.ID, img)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"url": url})
}
