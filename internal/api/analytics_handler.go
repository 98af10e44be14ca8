package api

import (
	"fmt"
	"net/http"

	"github.com/comment-insights-api/internal/models"
	"github.com/comment-insights-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AnalyticsHandler handles the analytics, mining, and re-analysis endpoints
type AnalyticsHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(services *service.Services, log zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		services: services,
		log:      log.With().Str("handler", "analytics").Logger(),
	}
}

// Overview handles GET /comments/analytics/overview[/:productId]
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("productId")

	stats, err := h.services.Analytics.Overview(ctx, productID)
	if err != nil {
		h.log.Error().Err(err).Str("product_id", productID).Msg("Failed to load overview")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// MostPositive handles GET /comments/analytics/most-positive[/:productId]
func (h *AnalyticsHandler) MostPositive(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("productId")

	comments, err := h.services.Analytics.MostPositive(ctx, productID)
	if err != nil {
		h.log.Error().Err(err).Str("product_id", productID).Msg("Failed to load most positive comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	c.JSON(http.StatusOK, comments)
}

// MostNegative handles GET /comments/analytics/most-negative[/:productId]
func (h *AnalyticsHandler) MostNegative(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("productId")

	comments, err := h.services.Analytics.MostNegative(ctx, productID)
	if err != nil {
		h.log.Error().Err(err).Str("product_id", productID).Msg("Failed to load most negative comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	c.JSON(http.StatusOK, comments)
}

// ProductRollups handles GET /comments/analytics/by-product
func (h *AnalyticsHandler) ProductRollups(c *gin.Context) {
	ctx := c.Request.Context()

	rollups, err := h.services.Analytics.ProductRollups(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load product rollups")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}
	if rollups == nil {
		rollups = []models.ProductRollup{}
	}

	c.JSON(http.StatusOK, rollups)
}

// Trends handles GET /comments/analytics/trends[/:productId]
func (h *AnalyticsHandler) Trends(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("productId")

	buckets, err := h.services.Analytics.Trends(ctx, productID)
	if err != nil {
		h.log.Error().Err(err).Str("product_id", productID).Msg("Failed to load trends")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}
	if buckets == nil {
		buckets = []models.TrendBucket{}
	}

	c.JSON(http.StatusOK, buckets)
}

// Distribution handles GET /comments/analytics/sentiment-distribution/:productId
func (h *AnalyticsHandler) Distribution(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("productId")

	entries, err := h.services.Analytics.Distribution(ctx, productID)
	if err != nil {
		h.log.Error().Err(err).Str("product_id", productID).Msg("Failed to load sentiment distribution")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}
	if entries == nil {
		entries = []models.DistributionEntry{}
	}

	c.JSON(http.StatusOK, entries)
}

// WordCloud handles GET /comments/analytics/word-cloud/:productId
func (h *AnalyticsHandler) WordCloud(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("productId")

	report, err := h.services.Analytics.WordCloud(ctx, productID)
	if err != nil {
		h.log.Error().Err(err).Str("product_id", productID).Msg("Failed to build word cloud")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// ProductFeatures handles GET /comments/analytics/product-features/:productId
func (h *AnalyticsHandler) ProductFeatures(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("productId")

	result, err := h.services.Analytics.Features(ctx, productID)
	if err != nil {
		h.log.Error().Err(err).Str("product_id", productID).Msg("Failed to mine product features")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"productId":        productID,
		"totalComments":    result.TotalComments,
		"positiveFeatures": result.Positive,
		"negativeFeatures": result.Negative,
		"lastUpdated":      result.LastUpdated,
	})
}

// AllProductsFeatures handles GET /comments/analytics/all-products-features
func (h *AnalyticsHandler) AllProductsFeatures(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.services.Analytics.Features(ctx, "")
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to mine features")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load analytics"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Reanalyze handles POST /comments/analytics/reanalyze[/:productId]
func (h *AnalyticsHandler) Reanalyze(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("productId")

	updated, err := h.services.Analytics.Reanalyze(ctx, productID)
	if err != nil {
		h.log.Error().Err(err).Str("product_id", productID).Msg("Re-analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "re-analysis failed"})
		return
	}

	c.JSON(http.StatusOK, models.ReanalyzeResponse{
		Success:      true,
		Message:      fmt.Sprintf("%d comments re-analyzed", updated),
		UpdatedCount: updated,
		ProductID:    productID,
	})
}
