package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velvetnails/salon-scheduler/internal/httperr"
	"github.com/velvetnails/salon-scheduler/internal/httpresp"
	"github.com/velvetnails/salon-scheduler/internal/middleware"
	"github.com/velvetnails/salon-scheduler/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// ======================================================
// LIST CLIENTS (ADMIN)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	q := parseListQuery(c, 20)

	base := h.db.Model(&models.Client{})
	if q.Search != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(q.Search)) + "%"
		base = base.Where("LOWER(email) LIKE ?", like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Failed to list clients.")
		return
	}

	var clients []models.Client
	if err := base.
		Order("created_at DESC").
		Offset(q.Skip).
		Limit(q.Limit).
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Failed to list clients.")
		return
	}

	httpresp.Paginated(c, clients, q.Skip, q.Limit, total)
}

// ======================================================
// GET ME
// ======================================================
func (h *ClientHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var client models.Client
	if err := h.db.
		Where("user_id = ?", userID).
		First(&client).Error; err != nil {

		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	httpresp.OK(c, client)
}
