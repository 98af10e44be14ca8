package models

import (
	"time"
)

// SubmitCommentRequest is the payload for POST /comments
type SubmitCommentRequest struct {
	ProductID string `json:"product_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Body      string `json:"comment"`
}

// SubmitCommentResponse is returned after a comment submission
type SubmitCommentResponse struct {
	Success   bool      `json:"success"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Sentiment string    `json:"sentiment"`
	Message   string    `json:"message"`
}

// ApproveRequest is the payload for PUT /comments/:commentId/approve.
// IsApproved is a pointer so a missing field can be told apart from false.
type ApproveRequest struct {
	IsApproved *bool `json:"is_approved"`
}

// ActionResponse is the generic success envelope for moderation actions
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ReanalyzeResponse is returned by the re-analysis endpoints
type ReanalyzeResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	UpdatedCount int    `json:"updatedCount"`
	ProductID    string `json:"productId,omitempty"`
}
