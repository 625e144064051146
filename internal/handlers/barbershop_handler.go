package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/httpresp"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/models"
	"github.com/barberbook/barberbook-api/internal/timezone"
)

type BarbershopHandler struct {
	db     *gorm.DB
	images *ImageUploader
	audit  *audit.Dispatcher
}

func NewBarbershopHandler(db *gorm.DB, images *ImageUploader, auditor *audit.Dispatcher) *BarbershopHandler {
	return &BarbershopHandler{db: db, images: images, audit: auditor}
}

func (h *BarbershopHandler) logChange(c *gin.Context, shop *models.Barbershop, action string) {
	userID := middleware.CurrentUserID(c)
	h.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		UserID:       &userID,
		Action:       action,
		Entity:       "barbershop",
		EntityID:     &shop.ID,
	})
}

type UpdateBarbershopRequest struct {
	Name            *string `json:"name"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	Timezone        *string `json:"timezone"`
	SlotIntervalMin *int    `json:"slot_interval_min"`
}

func (h *BarbershopHandler) ownShop(c *gin.Context) (*models.Barbershop, bool) {
	shopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return nil, false
	}
	return &shop, true
}

func (h *BarbershopHandler) GetMine(c *gin.Context) {
	shop, ok := h.ownShop(c)
	if !ok {
		return
	}
	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) UpdateMine(c *gin.Context) {
	shop, ok := h.ownShop(c)
	if !ok {
		return
	}

	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
			return
		}
		shop.Timezone = *req.Timezone
	}
	if req.SlotIntervalMin != nil {
		if *req.SlotIntervalMin < 5 || *req.SlotIntervalMin > 240 {
			httperr.BadRequest(c, "invalid_slot_interval", "Intervalo inválido.")
			return
		}
		shop.SlotIntervalMin = *req.SlotIntervalMin
	}

	if err := h.db.Save(shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao atualizar barbearia.")
		return
	}

	h.logChange(c, shop, "barbershop_updated")
	httpresp.OK(c, shop)
}

// UploadImage replaces the shop cover picture.
func (h *BarbershopHandler) UploadImage(c *gin.Context) {
	shop, ok := h.ownShop(c)
	if !ok {
		return
	}

	url, ok := h.images.receive(c, "barbershops")
	if !ok {
		return
	}

	shop.ImageURL = url
	if err := h.db.Save(shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao salvar imagem.")
		return
	}

	h.logChange(c, shop, "barbershop_image_updated")
	httpresp.OK(c, shop)
}
