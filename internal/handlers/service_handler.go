package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberbook/barberbook-api/internal/audit"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/httpresp"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/models"
)

type ServiceHandler struct {
	db     *gorm.DB
	images *ImageUploader
	audit  *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, images *ImageUploader, auditor *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, images: images, audit: auditor}
}

func (h *ServiceHandler) logChange(c *gin.Context, svc *models.Service, action string) {
	userID := middleware.CurrentUserID(c)
	h.audit.Dispatch(audit.Event{
		BarbershopID: svc.BarbershopID,
		UserID:       &userID,
		Action:       action,
		Entity:       "service",
		EntityID:     &svc.ID,
	})
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Active      *bool    `json:"active"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ?", shopID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc := models.Service{
		BarbershopID: shopID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Active:       true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.logChange(c, &svc, "service_created")
	httpresp.Created(c, svc)
}

func (h *ServiceHandler) ownService(c *gin.Context) (*models.Service, bool) {
	shopID := c.MustGet(middleware.ContextBarbershopID).(uint)
	id := c.Param("id")

	var svc models.Service
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, shopID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return nil, false
	}
	return &svc, true
}

func (h *ServiceHandler) Update(c *gin.Context) {
	svc, ok := h.ownService(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			httperr.BadRequest(c, "invalid_price", "Preço inválido.")
			return
		}
		svc.Price = *req.Price
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.logChange(c, svc, "service_updated")
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) UploadImage(c *gin.Context) {
	svc, ok := h.ownService(c)
	if !ok {
		return
	}

	url, ok := h.images.receive(c, "services")
	if !ok {
		return
	}

	svc.ImageURL = url
	if err := h.db.Save(svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao salvar imagem.")
		return
	}

	h.logChange(c, svc, "service_image_updated")
	httpresp.OK(c, svc)
}
