package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/goprofile/internal/database"
	"github.com/jonesrussell/goprofile/internal/domain"
	"github.com/jonesrussell/goprofile/internal/logger"
	"github.com/jonesrussell/goprofile/internal/scraper"
)

const (
	defaultLimit  = 50
	defaultOffset = 0
)

// ProfileService runs a profiling pass against a seed URL.
type ProfileService interface {
	Run(ctx context.Context, seedURL string) (*domain.Result, error)
}

// ProfileStore persists and retrieves profiling results.
type ProfileStore interface {
	Save(ctx context.Context, result *domain.Result) error
	Get(ctx context.Context, id string) (*database.StoredProfile, error)
	List(ctx context.Context, limit, offset int) ([]*database.StoredProfile, error)
}

// ProfileHandler handles profile-related HTTP requests.
type ProfileHandler struct {
	service    ProfileService
	store      ProfileStore
	log        logger.Interface
	runTimeout time.Duration
}

// NewProfileHandler creates a new profile handler. The store is
// optional; without it results are returned but not persisted.
func NewProfileHandler(
	service ProfileService,
	store ProfileStore,
	log logger.Interface,
	runTimeout time.Duration,
) *ProfileHandler {
	if runTimeout <= 0 {
		runTimeout = 2 * time.Minute
	}

	return &ProfileHandler{
		service:    service,
		store:      store,
		log:        log,
		runTimeout: runTimeout,
	}
}

type createProfileRequest struct {
	URL string `json:"url" binding:"required"`
}

// CreateProfile handles POST /api/v1/profiles
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.runTimeout)
	defer cancel()

	result, err := h.service.Run(ctx, req.URL)
	if err != nil {
		if errors.Is(err, scraper.ErrInvalidSeedURL) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		h.log.Error("Profile run failed", "url", req.URL, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if h.store != nil {
		if err := h.store.Save(c.Request.Context(), result); err != nil {
			// The run succeeded; report the result anyway.
			h.log.Error("Failed to persist profile", "run_id", result.Metadata.RunID, "error", err)
		}
	}

	c.JSON(http.StatusCreated, result)
}

// GetProfile handles GET /api/v1/profiles/:id
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "profile storage is not configured"})
		return
	}

	stored, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}

		h.log.Error("Failed to get profile", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, stored)
}

// ListProfiles handles GET /api/v1/profiles
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "profile storage is not configured"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", strconv.Itoa(defaultOffset)))
	if err != nil || offset < 0 {
		offset = defaultOffset
	}

	profiles, err := h.store.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.Error("Failed to list profiles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list profiles"})
		return
	}

	if profiles == nil {
		profiles = []*database.StoredProfile{}
	}

	c.JSON(http.StatusOK, gin.H{
		"profiles": profiles,
		"count":    len(profiles),
	})
}
