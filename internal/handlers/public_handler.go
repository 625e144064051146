package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/barberbook/barberbook-api/internal/domain/booking"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/httpresp"
	"github.com/barberbook/barberbook-api/internal/timezone"
	ucbooking "github.com/barberbook/barberbook-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	repo         domain.Repository
	availability *ucbooking.GetAvailability
}

func NewPublicHandler(
	repo domain.Repository,
	availability *ucbooking.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		availability: availability,
	}
}

////////////////////////////////////////////////////////
// BARBERSHOPS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBarbershops(c *gin.Context) {
	search := c.Query("search")

	shops, err := h.repo.ListBarbershops(c.Request.Context(), search)
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbershops", "Erro ao listar barbearias.")
		return
	}

	httpresp.List(c, shops)
}

func (h *PublicHandler) GetBarbershop(c *gin.Context) {
	slug := c.Param("slug")

	shop, err := h.repo.GetBarbershopBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	httpresp.OK(c, shop)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")

	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	shop, err := h.repo.GetBarbershopBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	date, err := timezone.ParseDate(shop.Timezone, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), shop.ID, date)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
