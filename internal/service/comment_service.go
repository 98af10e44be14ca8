package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/comment-insights-api/internal/models"
	"github.com/comment-insights-api/internal/repository"
	"github.com/comment-insights-api/internal/sentiment"
	"github.com/comment-insights-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	repo repository.CommentRepository
	log  zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(repo repository.CommentRepository, log zerolog.Logger) *commentService {
	return &commentService{
		repo: repo,
		log:  log.With().Str("service", "comment").Logger(),
	}
}

// Submit validates a submission, scores it, and persists the new comment
// with the scorer's verdict. The scorer sees the raw body; the stored body
// is trimmed.
func (s *commentService) Submit(ctx context.Context, req *models.SubmitCommentRequest) (*models.SubmitCommentResponse, error) {
	if errs := validation.ValidateSubmission(req); len(errs) > 0 {
		return nil, &ValidationFailedError{Errors: errs}
	}

	verdict := sentiment.Score(req.Body)

	comment := &models.Comment{
		ID:             uuid.New().String(),
		ProductID:      req.ProductID,
		UserID:         req.UserID,
		Username:       req.Username,
		Body:           strings.TrimSpace(req.Body),
		IsApproved:     verdict.Approved,
		SentimentScore: verdict.Score,
		SentimentLabel: verdict.Label.String(),
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info().
		Str("comment_id", comment.ID).
		Str("product_id", comment.ProductID).
		Str("sentiment", comment.SentimentLabel).
		Int("score", comment.SentimentScore).
		Bool("approved", comment.IsApproved).
		Msg("Comment submitted")

	message := "comment published"
	if !comment.IsApproved {
		message = "comment held for review"
	}

	return &models.SubmitCommentResponse{
		Success:   true,
		ID:        comment.ID,
		CreatedAt: comment.CreatedAt,
		Sentiment: comment.SentimentLabel,
		Message:   message,
	}, nil
}

// ListByProduct returns a product's publicly visible comments
func (s *commentService) ListByProduct(ctx context.Context, productID string) ([]*models.Comment, error) {
	return s.repo.ListApprovedByProduct(ctx, productID)
}

// ListAll returns every comment including held ones, for moderation
func (s *commentService) ListAll(ctx context.Context) ([]*models.Comment, error) {
	return s.repo.ListAll(ctx)
}

// Delete removes a comment immediately and unconditionally
func (s *commentService) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if !found {
		return ErrCommentNotFound
	}

	s.log.Info().Str("comment_id", id).Msg("Comment deleted")
	return nil
}

// SetApproval applies a manual moderation override. The scorer is not
// re-invoked; the stored sentiment stays as-is.
func (s *commentService) SetApproval(ctx context.Context, id string, approved bool) (string, error) {
	found, err := s.repo.SetApproved(ctx, id, approved)
	if err != nil {
		return "", fmt.Errorf("set approval: %w", err)
	}
	if !found {
		return "", ErrCommentNotFound
	}

	s.log.Info().Str("comment_id", id).Bool("approved", approved).Msg("Comment approval updated")

	if approved {
		return "comment approved", nil
	}
	return "comment rejected", nil
}

// Count returns the total number of stored comments
func (s *commentService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
