package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velvetnails/salon-scheduler/internal/cache"
	"github.com/velvetnails/salon-scheduler/internal/httperr"
	"github.com/velvetnails/salon-scheduler/internal/httpresp"
	"github.com/velvetnails/salon-scheduler/internal/models"
)

const (
	serviceCachePrefix = "services:"
	serviceCacheTTL    = 5 * time.Minute
)

type ServiceHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewServiceHandler(db *gorm.DB, cc *cache.Cache) *ServiceHandler {
	return &ServiceHandler{db: db, cache: cc}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"min=0"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	name := strings.TrimSpace(req.Name)

	var count int64
	h.db.Model(&models.Service{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "service_name_taken", "Service with this name already exists.")
		return
	}

	service := models.Service{
		Name:        name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
	}

	if err := h.db.Create(&service).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "service_name_taken", "Service with this name already exists.")
			return
		}
		httperr.Internal(c, "failed_to_create_service", "Failed to create service.")
		return
	}

	h.cache.InvalidatePrefix(c.Request.Context(), serviceCachePrefix)

	httpresp.Created(c, service)
}

func (h *ServiceHandler) List(c *gin.Context) {
	q := parseListQuery(c, 20)

	key := fmt.Sprintf("%s%d:%d:%s", serviceCachePrefix, q.Skip, q.Limit, q.Search)

	var cached httpresp.PaginatedResponse[models.Service]
	if h.cache.GetJSON(c.Request.Context(), key, &cached) {
		httpresp.OK(c, cached)
		return
	}

	base := h.db.Model(&models.Service{})
	if q.Search != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(q.Search)) + "%"
		base = base.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	var services []models.Service
	if err := base.
		Order("id ASC").
		Offset(q.Skip).
		Limit(q.Limit).
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	page := httpresp.PaginatedResponse[models.Service]{
		Info: httpresp.PaginationInfo{
			Page:       (q.Skip / q.Limit) + 1,
			PerPage:    q.Limit,
			Total:      total,
			TotalPages: (total + int64(q.Limit) - 1) / int64(q.Limit),
		},
		Data: services,
	}
	h.cache.SetJSON(c.Request.Context(), key, page, serviceCacheTTL)

	httpresp.OK(c, page)
}
