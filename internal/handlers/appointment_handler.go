package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/velvetnails/salon-scheduler/internal/dto"
	"github.com/velvetnails/salon-scheduler/internal/httpresp"
	ucAppointment "github.com/velvetnails/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	updateUC       *ucAppointment.UpdateAppointment
	deleteUC       *ucAppointment.DeleteAppointment
	cancelUC       *ucAppointment.CancelAppointment
	completeUC     *ucAppointment.CompleteAppointment
	listUC         *ucAppointment.ListAppointments
	listMineUC     *ucAppointment.ListMyAppointments
	blockedSlotsUC *ucAppointment.ListBlockedSlots
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	listUC *ucAppointment.ListAppointments,
	listMineUC *ucAppointment.ListMyAppointments,
	blockedSlotsUC *ucAppointment.ListBlockedSlots,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		cancelUC:       cancelUC,
		completeUC:     completeUC,
		listUC:         listUC,
		listMineUC:     listMineUC,
		blockedSlotsUC: blockedSlotsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID   uint      `json:"client_id" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
	ServiceIDs []uint    `json:"service_ids" binding:"required"`
	Notes      string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Date       *time.Time `json:"date,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
	Status     *string    `json:"status,omitempty"`
	ServiceIDs *[]uint    `json:"service_ids,omitempty"`
	Cancelled  *bool      `json:"cancelled,omitempty"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:   req.ClientID,
		Date:       req.Date,
		ServiceIDs: req.ServiceIDs,
		Notes:      req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, dto.NewAppointmentDTO(ap))
}

// ======================================================
// LIST (ADMIN) / LIST MINE
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	q := parseListQuery(c, 20)

	aps, total, err := h.listUC.Execute(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Paginated(c, dto.NewAppointmentDTOs(aps), q.Skip, q.Limit, total)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	q := parseListQuery(c, 100)

	aps, total, err := h.listMineUC.Execute(c.Request.Context(), actorFrom(c), q)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Paginated(c, dto.NewAppointmentDTOs(aps), q.Skip, q.Limit, total)
}

// ======================================================
// PATCH
// ======================================================

func (h *AppointmentHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), id, ucAppointment.UpdateAppointmentInput{
		Date:       req.Date,
		Notes:      req.Notes,
		Status:     req.Status,
		ServiceIDs: req.ServiceIDs,
		Cancelled:  req.Cancelled,
	}, actorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, actorFrom(c)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CancelAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	cancelation, err := h.cancelUC.Execute(c.Request.Context(), id, req.Reason, actorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, cancelation)
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), id, actorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap))
}

// ======================================================
// BLOCKED SLOTS
// ======================================================

func (h *AppointmentHandler) BlockedSlots(c *gin.Context) {
	slots, err := h.blockedSlotsUC.Execute(c.Request.Context(), actorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, slots)
}
