package handler

import (
	"errors"
	"time"

	"github.com/Lasya-02/Mama-Sync/cache"
	"github.com/Lasya-02/Mama-Sync/model"
	"github.com/Lasya-02/Mama-Sync/repository"
	"github.com/Lasya-02/Mama-Sync/utils"

	"github.com/gin-gonic/gin"
)

type GuideHandler struct {
	guideRepo *repository.GuideRepo
	cacheTTL  time.Duration
}

func NewGuideHandler(guideRepo *repository.GuideRepo, cacheTTL time.Duration) *GuideHandler {
	return &GuideHandler{guideRepo: guideRepo, cacheTTL: cacheTTL}
}

// ListGuides returns the guide index. Guide content is read-only, so it
// is served cache-aside from redis with a TTL; cache failures fall back
// to Mongo.
func (h *GuideHandler) ListGuides(c *gin.Context) {
	var cached []*model.GuideSummary
	if err := cache.Get("guide:index", &cached); err == nil {
		utils.TrackCacheResult("hit")
		utils.Success(c, gin.H{"documents": cached})
		return
	}
	utils.TrackCacheResult("miss")

	guides, err := h.guideRepo.ListGuides(c.Request.Context())
	if err != nil {
		utils.InternalError(c, "internal server error")
		return
	}

	if err := cache.Set("guide:index", guides, h.cacheTTL); err != nil {
		utils.TrackError("cache", "guide_index_set_failed")
	}

	utils.Success(c, gin.H{"documents": guides})
}

// GetGuide returns one guide document with its full body.
func (h *GuideHandler) GetGuide(c *gin.Context) {
	guideID := c.Param("id")
	cacheKey := "guide:" + guideID

	var cached model.Guide
	if err := cache.Get(cacheKey, &cached); err == nil {
		utils.TrackCacheResult("hit")
		utils.Success(c, cached)
		return
	}
	utils.TrackCacheResult("miss")

	guide, err := h.guideRepo.FindGuide(c.Request.Context(), guideID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "guide not found")
			return
		}
		utils.InternalError(c, "internal server error")
		return
	}

	if err := cache.Set(cacheKey, guide, h.cacheTTL); err != nil {
		utils.TrackError("cache", "guide_set_failed")
	}

	utils.Success(c, guide)
}
