package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/karmacrepes/whenwilldeniusthdie/models"
	"github.com/karmacrepes/whenwilldeniusthdie/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 500
	MaxLimit     = 2000

	// SubmissionsChannel carries accepted submissions to live websocket clients.
	SubmissionsChannel = "prophecy:submissions"

	listCacheTTL = 5 * time.Second
)

type SubmissionsHandler struct {
	db    *gorm.DB
	cache *services.CacheService
}

func NewSubmissionsHandler(db *gorm.DB, cache *services.CacheService) *SubmissionsHandler {
	return &SubmissionsHandler{db: db, cache: cache}
}

type createSubmissionRequest struct {
	Character      string `json:"character" binding:"omitempty,max=64"`
	Username       string `json:"username" binding:"required,min=1,max=50"`
	Cause          string `json:"cause" binding:"required,min=1,max=280"`
	Probability    *int   `json:"probability" binding:"required,gte=0,lte=100"`
	Era            string `json:"era" binding:"omitempty,max=16"`
	Year           *int   `json:"year" binding:"omitempty,gte=0,lte=99999"`
	MonthIndex     int    `json:"month_index" binding:"required,gte=1,lte=16"`
	MonthName      string `json:"month_name" binding:"required,min=1,max=64"`
	DayOfMonth     int    `json:"day_of_month" binding:"required,gte=1,lte=32"`
	DayOfWeekIndex int    `json:"day_of_week_index" binding:"required,gte=1,lte=8"`
	DayOfWeekName  string `json:"day_of_week_name" binding:"required,min=1,max=64"`
}

type listResponse struct {
	Submissions []models.Submission     `json:"submissions"`
	Aggregates  []models.MonthAggregate `json:"aggregates"`
}

// Create validates and stores one submission. Validation runs in a single
// bind pass; nothing is written on a violation.
func (h *SubmissionsHandler) Create(c *gin.Context) {
	var req createSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		submissionsRejected.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Character == "" {
		req.Character = models.DefaultCharacter
	}
	if req.Era == "" {
		req.Era = models.DefaultEra
	}

	sub := models.Submission{
		Character:      req.Character,
		Username:       req.Username,
		Cause:          req.Cause,
		Probability:    *req.Probability,
		Era:            req.Era,
		Year:           req.Year,
		MonthIndex:     req.MonthIndex,
		MonthName:      req.MonthName,
		DayOfMonth:     req.DayOfMonth,
		DayOfWeekIndex: req.DayOfWeekIndex,
		DayOfWeekName:  req.DayOfWeekName,
	}

	if err := h.db.Create(&sub).Error; err != nil {
		submissionsFailed.Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
		return
	}
	submissionsStored.Inc()

	// Best-effort fanout to the live feed; a lost publish only affects
	// connected websocket clients, the row is already stored.
	go h.cache.Publish(context.Background(), SubmissionsChannel, sub)

	c.JSON(http.StatusCreated, gin.H{"ok": true, "submission": sub})
}

// List returns the newest submissions for a character plus the per-month
// aggregate over all of that character's rows. The aggregate is never cut
// down by the page limit.
func (h *SubmissionsHandler) List(c *gin.Context) {
	character := c.DefaultQuery("character", models.DefaultCharacter)
	limit := ParseListLimit(c)

	cacheKey := fmt.Sprintf("submissions:%s:%d", character, limit)
	var cached listResponse
	if err := h.cache.Get(c.Request.Context(), cacheKey, &cached); err == nil && cached.Submissions != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	subs := make([]models.Submission, 0, limit)
	err := h.db.
		Where("character = ?", character).
		Order("created_at DESC").
		Limit(limit).
		Find(&subs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
		return
	}

	aggs := make([]models.MonthAggregate, 0)
	err = h.db.Raw(`
		SELECT month_index, month_name, AVG(probability)::float AS avg_probability, COUNT(*)::int AS count
		FROM submissions
		WHERE character = ?
		GROUP BY month_index, month_name
		ORDER BY month_index ASC
	`, character).Scan(&aggs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not available"})
		return
	}

	resp := listResponse{Submissions: subs, Aggregates: aggs}
	go h.cache.Set(context.Background(), cacheKey, resp, listCacheTTL)

	c.JSON(http.StatusOK, resp)
}

// ParseListLimit reads the limit query parameter, falling back to
// DefaultLimit and clamping to MaxLimit.
func ParseListLimit(c *gin.Context) int {
	limit := DefaultLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return limit
}

// MethodNotAllowed answers any verb outside the supported set, enumerating
// what the API accepts.
func MethodNotAllowed(c *gin.Context) {
	c.Header("Allow", "GET, POST")
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
}
