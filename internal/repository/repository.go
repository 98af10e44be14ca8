package repository

import (
	"context"

	"github.com/comment-insights-api/internal/database"
	"github.com/comment-insights-api/internal/models"
)

// CommentRepository defines the interface for comment row operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	ListApprovedByProduct(ctx context.Context, productID string) ([]*models.Comment, error)
	ListAll(ctx context.Context) ([]*models.Comment, error)
	Delete(ctx context.Context, id string) (bool, error)
	SetApproved(ctx context.Context, id string, approved bool) (bool, error)
	Count(ctx context.Context) (int, error)
}

// AnalyticsRepository defines the read (and re-analysis write) projections
// over the comment table. Methods taking a productID treat the empty string
// as "all products".
type AnalyticsRepository interface {
	Overview(ctx context.Context, productID string) (*models.OverviewStats, error)
	MostPositive(ctx context.Context, productID string, limit int) ([]*models.Comment, error)
	MostNegative(ctx context.Context, productID string, limit int) ([]*models.Comment, error)
	Trends(ctx context.Context, productID string, days int) ([]models.TrendBucket, error)
	Distribution(ctx context.Context, productID string) ([]models.DistributionEntry, error)
	ProductRollups(ctx context.Context) ([]models.ProductRollup, error)
	ListApproved(ctx context.Context, productID string) ([]*models.Comment, error)
	ListUnanalyzed(ctx context.Context, productID string) ([]models.UnanalyzedComment, error)
	UpdateAnalysis(ctx context.Context, id string, score int, label string, approved bool) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Comment   CommentRepository
	Analytics AnalyticsRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Comment:   NewCommentRepo(db),
		Analytics: NewAnalyticsRepo(db),
	}
}
