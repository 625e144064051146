package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/httpresp"
	"github.com/barberbook/barberbook-api/internal/middleware"
	ucbooking "github.com/barberbook/barberbook-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create *ucbooking.CreateBooking
	list   *ucbooking.ListUserBookings
	flow   *ucbooking.BookingFlow
}

func NewBookingHandler(
	create *ucbooking.CreateBooking,
	list *ucbooking.ListUserBookings,
	flow *ucbooking.BookingFlow,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		list:   list,
		flow:   flow,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarbershopID uint   `json:"barbershop_id" binding:"required"`
	ServiceID    uint   `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time" binding:"required"` // HH:mm
}

type StartFlowRequest struct {
	BarbershopID uint `json:"barbershop_id" binding:"required"`
	ServiceID    uint `json:"service_id" binding:"required"`
}

type FlowDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type FlowSlotRequest struct {
	Slot string `json:"slot" binding:"required"`
}

// ======================================================
// ONE-SHOT CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		BarbershopID: req.BarbershopID,
		ServiceID:    req.ServiceID,
		UserID:       middleware.CurrentUserID(c),
		Date:         req.Date,
		Time:         req.Time,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// MY BOOKINGS
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	bookings, err := h.list.Execute(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// BOOKING FLOW
// ======================================================

func (h *BookingHandler) StartFlow(c *gin.Context) {
	var req StartFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	f, err := h.flow.Start(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		req.BarbershopID,
		req.ServiceID,
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, f)
}

func (h *BookingHandler) GetFlow(c *gin.Context) {
	f, err := h.flow.Get(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.OK(c, f)
}

func (h *BookingHandler) FlowSelectDate(c *gin.Context) {
	var req FlowDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	f, slots, err := h.flow.SelectDate(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		c.Param("id"),
		req.Date,
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(200, gin.H{
		"flow":  f,
		"slots": slots,
	})
}

func (h *BookingHandler) FlowSelectSlot(c *gin.Context) {
	var req FlowSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	f, err := h.flow.SelectSlot(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		c.Param("id"),
		req.Slot,
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.OK(c, f)
}

func (h *BookingHandler) FlowConfirm(c *gin.Context) {
	f, b, err := h.flow.Confirm(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		c.Param("id"),
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(201, gin.H{
		"flow":    f,
		"booking": b,
	})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "unauthenticated"):
		httperr.Unauthorized(c, "unauthenticated", "Faça login para reservar.")
	case httperr.IsBusiness(err, "barbershop_not_found"):
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
	case httperr.IsBusiness(err, "flow_not_found"):
		httperr.NotFound(c, "flow_not_found", "Reserva em andamento não encontrada.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Horário inválido.")
	case httperr.IsBusiness(err, "slot_outside_hours"):
		httperr.BadRequest(c, "slot_outside_hours", "Fora do horário de atendimento.")
	case httperr.IsBusiness(err, "slot_in_past"):
		httperr.BadRequest(c, "slot_in_past", "Horário já passou.")
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "Horário acabou de ser reservado.")
	case httperr.IsBusiness(err, "date_not_selected"):
		httperr.BadRequest(c, "date_not_selected", "Escolha uma data primeiro.")
	case httperr.IsBusiness(err, "slot_not_selected"):
		httperr.BadRequest(c, "slot_not_selected", "Escolha um horário primeiro.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Reserva não pode ser alterada.")
	default:
		log.Error().Err(err).Msg("booking request failed")
		httperr.Internal(c, "booking_failed", "Erro ao processar reserva.")
	}
}
