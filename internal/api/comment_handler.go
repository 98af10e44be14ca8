package api

import (
	"errors"
	"net/http"

	"github.com/comment-insights-api/internal/models"
	"github.com/comment-insights-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment submission and moderation endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// SubmitComment handles POST /comments
func (h *CommentHandler) SubmitComment(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.services.Comment.Submit(ctx, &req)
	if err != nil {
		var vErr *service.ValidationFailedError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   vErr.Error(),
				"details": vErr.Errors,
			})
			return
		}
		h.log.Error().Err(err).Msg("Failed to submit comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save comment"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListProductComments handles GET /comments/product/:productId
func (h *CommentHandler) ListProductComments(c *gin.Context) {
	ctx := c.Request.Context()
	productID := c.Param("productId")

	comments, err := h.services.Comment.ListByProduct(ctx, productID)
	if err != nil {
		h.log.Error().Err(err).Str("product_id", productID).Msg("Failed to list product comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comments"})
		return
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	c.JSON(http.StatusOK, comments)
}

// ListAllComments handles GET /comments/all
func (h *CommentHandler) ListAllComments(c *gin.Context) {
	ctx := c.Request.Context()

	comments, err := h.services.Comment.ListAll(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list all comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load comments"})
		return
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	c.JSON(http.StatusOK, comments)
}

// DeleteComment handles DELETE /comments/:commentId
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	ctx := c.Request.Context()
	commentID := c.Param("commentId")

	if err := h.services.Comment.Delete(ctx, commentID); err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		h.log.Error().Err(err).Str("comment_id", commentID).Msg("Failed to delete comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete comment"})
		return
	}

	c.JSON(http.StatusOK, models.ActionResponse{Success: true, Message: "comment deleted"})
}

// SetApproval handles PUT /comments/:commentId/approve
func (h *CommentHandler) SetApproval(c *gin.Context) {
	ctx := c.Request.Context()
	commentID := c.Param("commentId")

	var req models.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsApproved == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_approved is required"})
		return
	}

	message, err := h.services.Comment.SetApproval(ctx, commentID, *req.IsApproved)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
			return
		}
		h.log.Error().Err(err).Str("comment_id", commentID).Msg("Failed to update approval")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update comment"})
		return
	}

	c.JSON(http.StatusOK, models.ActionResponse{Success: true, Message: message})
}
