package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/DanRulev/finquest.git/internal/api/dto"
	"github.com/DanRulev/finquest.git/internal/models"
	"github.com/gin-gonic/gin"
)

type ServiceI interface {
	Lessons(ctx context.Context, userID int64) ([]models.LessonView, error)
	Profile(ctx context.Context, userID int64) (models.ProfileSummary, error)
	Leaderboard(ctx context.Context) (models.LeaderboardSnapshot, error)
}

type PingerI interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	service ServiceI
	db      PingerI
	timeout time.Duration
}

func NewHandler(service ServiceI, db PingerI, timeout time.Duration) *Handler {
	return &Handler{
		service: service,
		db:      db,
		timeout: timeout,
	}
}

func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		_ = c.Error(err)
		dto.JsonError(c, http.StatusServiceUnavailable, "database is unreachable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "finquest",
	})
}

func (h *Handler) Leaderboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	snapshot, err := h.service.Leaderboard(ctx)
	if err != nil {
		_ = c.Error(err)
		dto.JsonError(c, http.StatusInternalServerError, "failed to get leaderboard")
		return
	}

	c.JSON(http.StatusOK, dto.NewLeaderboardDTO(snapshot))
}

func (h *Handler) Profile(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	summary, err := h.service.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrProfileNotFound) {
			dto.JsonError(c, http.StatusNotFound, "profile not found")
			return
		}
		_ = c.Error(err)
		dto.JsonError(c, http.StatusInternalServerError, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, dto.NewProfileDTO(summary))
}

func (h *Handler) Lessons(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	views, err := h.service.Lessons(ctx, userID)
	if err != nil {
		_ = c.Error(err)
		dto.JsonError(c, http.StatusInternalServerError, "failed to get lessons")
		return
	}

	c.JSON(http.StatusOK, dto.NewLessonDTOs(views))
}

func userIDParam(c *gin.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		dto.JsonError(c, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return userID, true
}
