package service

import (
	"context"
	"errors"
	"time"

	"github.com/comment-insights-api/internal/config"
	"github.com/comment-insights-api/internal/models"
	"github.com/comment-insights-api/internal/repository"
	"github.com/comment-insights-api/internal/sentiment"
	"github.com/comment-insights-api/internal/validation"
	"github.com/rs/zerolog"
)

// ErrCommentNotFound is returned when a moderation action references a
// comment id that does not exist
var ErrCommentNotFound = errors.New("comment not found")

// ValidationFailedError carries the field-level errors of a rejected
// submission
type ValidationFailedError struct {
	Errors []validation.ValidationError
}

func (e *ValidationFailedError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return e.Errors[0].Message
}

// CommentService defines the submission and moderation operations
type CommentService interface {
	Submit(ctx context.Context, req *models.SubmitCommentRequest) (*models.SubmitCommentResponse, error)
	ListByProduct(ctx context.Context, productID string) ([]*models.Comment, error)
	ListAll(ctx context.Context) ([]*models.Comment, error)
	Delete(ctx context.Context, id string) error
	SetApproval(ctx context.Context, id string, approved bool) (string, error)
	Count(ctx context.Context) (int, error)
}

// FeatureAnalysisResult wraps mined feature reports with scan metadata
type FeatureAnalysisResult struct {
	TotalComments int                       `json:"totalComments"`
	Positive      []sentiment.FeatureReport `json:"positiveFeatures"`
	Negative      []sentiment.FeatureReport `json:"negativeFeatures"`
	LastUpdated   time.Time                 `json:"lastUpdated"`
}

// AnalyticsService defines the reporting, mining, and re-analysis
// operations. A productID of "" scopes to all products.
type AnalyticsService interface {
	Overview(ctx context.Context, productID string) (*models.OverviewStats, error)
	MostPositive(ctx context.Context, productID string) ([]*models.Comment, error)
	MostNegative(ctx context.Context, productID string) ([]*models.Comment, error)
	Trends(ctx context.Context, productID string) ([]models.TrendBucket, error)
	Distribution(ctx context.Context, productID string) ([]models.DistributionEntry, error)
	ProductRollups(ctx context.Context) ([]models.ProductRollup, error)
	Features(ctx context.Context, productID string) (*FeatureAnalysisResult, error)
	WordCloud(ctx context.Context, productID string) (*sentiment.WordCloudReport, error)
	Reanalyze(ctx context.Context, productID string) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Comment   CommentService
	Analytics AnalyticsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Comment:   newCommentService(repos.Comment, log),
		Analytics: newAnalyticsService(repos.Analytics, cfg, log),
	}
}
