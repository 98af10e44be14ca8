package mocks

import (
	"context"
	"time"

	"github.com/comment-insights-api/internal/models"
	"github.com/comment-insights-api/internal/sentiment"
	"github.com/comment-insights-api/internal/service"
)

// MockCommentService is a mock implementation of service.CommentService
type MockCommentService struct {
	SubmitFunc    func(ctx context.Context, req *models.SubmitCommentRequest) (*models.SubmitCommentResponse, error)
	Comments      map[string][]*models.Comment // by product id
	AllComments   []*models.Comment
	DeleteErr     map[string]error
	ApprovalErr   map[string]error
	CommentsCount int
	DeletedIDs    []string
}

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{
		Comments:    make(map[string][]*models.Comment),
		DeleteErr:   make(map[string]error),
		ApprovalErr: make(map[string]error),
	}
}

func (m *MockCommentService) Submit(ctx context.Context, req *models.SubmitCommentRequest) (*models.SubmitCommentResponse, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, req)
	}
	return &models.SubmitCommentResponse{
		Success:   true,
		ID:        "mock-comment-id",
		CreatedAt: time.Now(),
		Sentiment: "neutral",
		Message:   "comment published",
	}, nil
}

func (m *MockCommentService) ListByProduct(ctx context.Context, productID string) ([]*models.Comment, error) {
	return m.Comments[productID], nil
}

func (m *MockCommentService) ListAll(ctx context.Context) ([]*models.Comment, error) {
	return m.AllComments, nil
}

func (m *MockCommentService) Delete(ctx context.Context, id string) error {
	if err, exists := m.DeleteErr[id]; exists {
		return err
	}
	m.DeletedIDs = append(m.DeletedIDs, id)
	return nil
}

func (m *MockCommentService) SetApproval(ctx context.Context, id string, approved bool) (string, error) {
	if err, exists := m.ApprovalErr[id]; exists {
		return "", err
	}
	if approved {
		return "comment approved", nil
	}
	return "comment rejected", nil
}

func (m *MockCommentService) Count(ctx context.Context) (int, error) {
	return m.CommentsCount, nil
}

// MockAnalyticsService is a mock implementation of service.AnalyticsService
type MockAnalyticsService struct {
	OverviewStats   *models.OverviewStats
	Positive        []*models.Comment
	Negative        []*models.Comment
	TrendBuckets    []models.TrendBucket
	Dist            []models.DistributionEntry
	Rollups         []models.ProductRollup
	FeaturesResult  *service.FeatureAnalysisResult
	WordCloudReport *sentiment.WordCloudReport
	ReanalyzeCount  int
	ReanalyzeErr    error
	ReanalyzeScopes []string
}

func NewMockAnalyticsService() *MockAnalyticsService {
	return &MockAnalyticsService{
		OverviewStats: &models.OverviewStats{},
		FeaturesResult: &service.FeatureAnalysisResult{
			Positive:    []sentiment.FeatureReport{},
			Negative:    []sentiment.FeatureReport{},
			LastUpdated: time.Now(),
		},
		WordCloudReport: &sentiment.WordCloudReport{},
	}
}

func (m *MockAnalyticsService) Overview(ctx context.Context, productID string) (*models.OverviewStats, error) {
	return m.OverviewStats, nil
}

func (m *MockAnalyticsService) MostPositive(ctx context.Context, productID string) ([]*models.Comment, error) {
	return m.Positive, nil
}

func (m *MockAnalyticsService) MostNegative(ctx context.Context, productID string) ([]*models.Comment, error) {
	return m.Negative, nil
}

func (m *MockAnalyticsService) Trends(ctx context.Context, productID string) ([]models.TrendBucket, error) {
	return m.TrendBuckets, nil
}

func (m *MockAnalyticsService) Distribution(ctx context.Context, productID string) ([]models.DistributionEntry, error) {
	return m.Dist, nil
}

func (m *MockAnalyticsService) ProductRollups(ctx context.Context) ([]models.ProductRollup, error) {
	return m.Rollups, nil
}

func (m *MockAnalyticsService) Features(ctx context.Context, productID string) (*service.FeatureAnalysisResult, error) {
	return m.FeaturesResult, nil
}

func (m *MockAnalyticsService) WordCloud(ctx context.Context, productID string) (*sentiment.WordCloudReport, error) {
	return m.WordCloudReport, nil
}

func (m *MockAnalyticsService) Reanalyze(ctx context.Context, productID string) (int, error) {
	m.ReanalyzeScopes = append(m.ReanalyzeScopes, productID)
	if m.ReanalyzeErr != nil {
		return 0, m.ReanalyzeErr
	}
	return m.ReanalyzeCount, nil
}
