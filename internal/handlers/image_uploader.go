package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/images"
	"github.com/barberbook/barberbook-api/internal/storage"
)

const maxImageBytes = 8 << 20

// ImageUploader is shared by the shop and service handlers: it reads
// the multipart "image" field, normalizes it to webp and stores it.
// A nil store means image uploads are disabled by configuration.
type ImageUploader struct {
	store *storage.ImageStore
}

func NewImageUploader(store *storage.ImageStore) *ImageUploader {
	return &ImageUploader{store: store}
}

func (u *ImageUploader) receive(c *gin.Context, prefix string) (string, bool) {
	if u == nil || u.store == nil {
		httperr.BadRequest(c, "uploads_disabled", "Upload de imagens desativado.")
		return "", false
	}

	header, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Arquivo de imagem obrigatório.")
		return "", false
	}
	if header.Size > maxImageBytes {
		httperr.BadRequest(c, "image_too_large", "Imagem acima de 8MB.")
		return "", false
	}

	file, err := header.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler imagem.")
		return "", false
	}
	defer file.Close()

	var data []byte
	if strings.HasSuffix(strings.ToLower(header.Filename), ".webp") {
		data, err = images.NormalizeWebP(file)
	} else {
		data, err = images.Normalize(file)
	}
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Formato de imagem não suportado.")
		return "", false
	}

	url, err := u.store.Put(c.Request.Context(), prefix, data)
	if err != nil {
		log.Error().Err(err).Msg("image upload failed")
		httperr.Internal(c, "failed_to_store_image", "Erro ao enviar imagem.")
		return "", false
	}
	return url, true
}
