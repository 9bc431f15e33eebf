package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/velvetnails/salon-scheduler/internal/domain/appointment"
	"github.com/velvetnails/salon-scheduler/internal/httperr"
	"github.com/velvetnails/salon-scheduler/internal/middleware"
)

// ======================================================
// BUSINESS ERROR → HTTP
// ======================================================

var businessStatus = map[string]int{
	httperr.CodeClientNotFound:      http.StatusNotFound,
	httperr.CodeServiceNotFound:     http.StatusNotFound,
	httperr.CodeAppointmentNotFound: http.StatusNotFound,

	httperr.CodeInvalidArgument: http.StatusBadRequest,
	httperr.CodeForbidden:       http.StatusForbidden,

	httperr.CodeSlotUnavailable:         http.StatusBadRequest,
	httperr.CodeAlreadyCancelled:        http.StatusBadRequest,
	httperr.CodeTooLateToCancel:         http.StatusBadRequest,
	httperr.CodeAlreadyCompleted:        http.StatusBadRequest,
	httperr.CodeCannotCompleteCancelled: http.StatusBadRequest,
}

var businessMessage = map[string]string{
	httperr.CodeClientNotFound:      "Client not found.",
	httperr.CodeServiceNotFound:     "One or more services not found.",
	httperr.CodeAppointmentNotFound: "Appointment not found.",

	httperr.CodeInvalidArgument: "Invalid request.",
	httperr.CodeForbidden:       "Not authorized for this appointment.",

	httperr.CodeSlotUnavailable:         "This time slot is not available due to another appointment.",
	httperr.CodeAlreadyCancelled:        "Appointment is already cancelled.",
	httperr.CodeTooLateToCancel:         "Cannot cancel appointment less than 3 hours before the scheduled time.",
	httperr.CodeAlreadyCompleted:        "Appointment is already completed.",
	httperr.CodeCannotCompleteCancelled: "Cannot complete a cancelled appointment.",
}

// writeError maps a use-case error onto the HTTP response. Unknown errors
// stay opaque.
func writeError(c *gin.Context, err error) {
	if code := httperr.BusinessCode(err); code != "" {
		status, ok := businessStatus[code]
		if !ok {
			status = http.StatusBadRequest
		}
		httperr.Write(c, status, code, businessMessage[code])
		return
	}

	httperr.Internal(c, "internal_error", "Something went wrong.")
}

// ======================================================
// REQUEST CONTEXT
// ======================================================

func actorFrom(c *gin.Context) domain.Actor {
	return domain.Actor{
		UserID: c.MustGet(middleware.ContextUserID).(uint),
		Role:   c.MustGet(middleware.ContextUserRole).(string),
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

func parseListQuery(c *gin.Context, defaultLimit int) domain.ListQuery {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	return domain.ListQuery{
		Skip:   skip,
		Limit:  limit,
		Search: c.Query("search"),
	}
}
