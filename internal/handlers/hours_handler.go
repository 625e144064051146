package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/httpresp"
	"github.com/barberbook/barberbook-api/internal/middleware"
	"github.com/barberbook/barberbook-api/internal/models"
)

type HoursHandler struct {
	db *gorm.DB
}

func NewHoursHandler(db *gorm.DB) *HoursHandler {
	return &HoursHandler{db: db}
}

type WeekdayHoursRequest struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	Opens   string `json:"opens"`
	Closes  string `json:"closes"`
	Closed  bool   `json:"closed"`
}

type UpdateHoursRequest struct {
	Week []WeekdayHoursRequest `json:"week" binding:"required,len=7,dive"`
}

func (h *HoursHandler) Get(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var week []models.OperatingHours
	if err := h.db.
		Where("barbershop_id = ?", shopID).
		Order("weekday ASC").
		Find(&week).Error; err != nil {
		httperr.Internal(c, "failed_to_list_hours", "Erro ao listar horários.")
		return
	}

	httpresp.List(c, week)
}

// Update replaces the whole week at once; open days need parseable
// opens/closes with opens strictly before closes.
func (h *HoursHandler) Update(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req UpdateHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	seen := map[int]bool{}
	for _, day := range req.Week {
		if seen[day.Weekday] {
			httperr.BadRequest(c, "duplicate_weekday", "Dia da semana repetido.")
			return
		}
		seen[day.Weekday] = true

		if day.Closed {
			continue
		}

		opens, err1 := time.Parse("15:04", day.Opens)
		closes, err2 := time.Parse("15:04", day.Closes)
		if err1 != nil || err2 != nil || !opens.Before(closes) {
			httperr.BadRequest(c, "invalid_hours", "Horário de funcionamento inválido.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, day := range req.Week {
			row := models.OperatingHours{
				BarbershopID: shopID,
				Weekday:      day.Weekday,
				Opens:        day.Opens,
				Closes:       day.Closes,
				Closed:       day.Closed,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "barbershop_id"},
					{Name: "weekday"},
				},
				DoUpdates: clause.AssignmentColumns([]string{"opens", "closes", "closed"}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_hours", "Erro ao atualizar horários.")
		return
	}

	h.Get(c)
}
