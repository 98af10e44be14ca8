package mocks

import (
	"context"
	"sort"

	"github.com/comment-insights-api/internal/models"
)

// MockCommentRepository is an in-memory implementation of CommentRepository
type MockCommentRepository struct {
	Comments    map[string]*models.Comment
	Order       []string // insertion order, oldest first
	CreateError error
	ListError   error
	CreateCalls int
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[string]*models.Comment),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Comments[comment.ID] = comment
	m.Order = append(m.Order, comment.ID)
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	return m.Comments[id], nil
}

func (m *MockCommentRepository) ListApprovedByProduct(ctx context.Context, productID string) ([]*models.Comment, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	var comments []*models.Comment
	for i := len(m.Order) - 1; i >= 0; i-- {
		c := m.Comments[m.Order[i]]
		if c != nil && c.ProductID == productID && c.IsApproved {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (m *MockCommentRepository) ListAll(ctx context.Context) ([]*models.Comment, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	var comments []*models.Comment
	for i := len(m.Order) - 1; i >= 0; i-- {
		if c := m.Comments[m.Order[i]]; c != nil {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, exists := m.Comments[id]; !exists {
		return false, nil
	}
	delete(m.Comments, id)
	return true, nil
}

func (m *MockCommentRepository) SetApproved(ctx context.Context, id string, approved bool) (bool, error) {
	comment, exists := m.Comments[id]
	if !exists {
		return false, nil
	}
	comment.IsApproved = approved
	return true, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	return len(m.Comments), nil
}

// MockAnalyticsRepository is an in-memory implementation of
// AnalyticsRepository backed by the same comment map shape
type MockAnalyticsRepository struct {
	Comments    map[string]*models.Comment
	Order       []string
	Overview_   *models.OverviewStats
	Trends_     []models.TrendBucket
	Dist        []models.DistributionEntry
	Rollups     []models.ProductRollup
	UpdateError error
	UpdateCalls int
	ListError   error
}

func NewMockAnalyticsRepository() *MockAnalyticsRepository {
	return &MockAnalyticsRepository{
		Comments: make(map[string]*models.Comment),
	}
}

// Add stores a comment for the analytics projections to see
func (m *MockAnalyticsRepository) Add(comment *models.Comment) {
	m.Comments[comment.ID] = comment
	m.Order = append(m.Order, comment.ID)
}

func (m *MockAnalyticsRepository) Overview(ctx context.Context, productID string) (*models.OverviewStats, error) {
	if m.Overview_ != nil {
		return m.Overview_, nil
	}
	stats := &models.OverviewStats{}
	sum := 0
	for _, id := range m.Order {
		c := m.Comments[id]
		if c == nil || !c.IsApproved {
			continue
		}
		if productID != "" && c.ProductID != productID {
			continue
		}
		stats.TotalComments++
		stats.ApprovedComments++
		sum += c.SentimentScore
		switch c.SentimentLabel {
		case "very_positive":
			stats.VeryPositive++
		case "positive":
			stats.Positive++
		case "neutral":
			stats.Neutral++
		case "negative":
			stats.Negative++
		case "very_negative":
			stats.VeryNegative++
		}
	}
	if stats.TotalComments > 0 {
		stats.AvgSentimentScore = float64(sum) / float64(stats.TotalComments)
	}
	return stats, nil
}

func (m *MockAnalyticsRepository) MostPositive(ctx context.Context, productID string, limit int) ([]*models.Comment, error) {
	return m.ranked(productID, limit, true), nil
}

func (m *MockAnalyticsRepository) MostNegative(ctx context.Context, productID string, limit int) ([]*models.Comment, error) {
	return m.ranked(productID, limit, false), nil
}

func (m *MockAnalyticsRepository) ranked(productID string, limit int, positive bool) []*models.Comment {
	var comments []*models.Comment
	for i := len(m.Order) - 1; i >= 0; i-- {
		c := m.Comments[m.Order[i]]
		if c == nil || !c.IsApproved {
			continue
		}
		if productID != "" && c.ProductID != productID {
			continue
		}
		if positive && c.SentimentScore >= 1 {
			comments = append(comments, c)
		}
		if !positive && c.SentimentScore <= -1 {
			comments = append(comments, c)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		if positive {
			return comments[i].SentimentScore > comments[j].SentimentScore
		}
		return comments[i].SentimentScore < comments[j].SentimentScore
	})
	if len(comments) > limit {
		comments = comments[:limit]
	}
	return comments
}

func (m *MockAnalyticsRepository) Trends(ctx context.Context, productID string, days int) ([]models.TrendBucket, error) {
	return m.Trends_, nil
}

func (m *MockAnalyticsRepository) Distribution(ctx context.Context, productID string) ([]models.DistributionEntry, error) {
	return m.Dist, nil
}

func (m *MockAnalyticsRepository) ProductRollups(ctx context.Context) ([]models.ProductRollup, error) {
	return m.Rollups, nil
}

func (m *MockAnalyticsRepository) ListApproved(ctx context.Context, productID string) ([]*models.Comment, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	var comments []*models.Comment
	for i := len(m.Order) - 1; i >= 0; i-- {
		c := m.Comments[m.Order[i]]
		if c == nil || !c.IsApproved {
			continue
		}
		if productID != "" && c.ProductID != productID {
			continue
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func (m *MockAnalyticsRepository) ListUnanalyzed(ctx context.Context, productID string) ([]models.UnanalyzedComment, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	var comments []models.UnanalyzedComment
	for _, id := range m.Order {
		c := m.Comments[id]
		if c == nil {
			continue
		}
		if productID != "" && c.ProductID != productID {
			continue
		}
		if c.SentimentScore == 0 && (c.SentimentLabel == "neutral" || c.SentimentLabel == "") {
			comments = append(comments, models.UnanalyzedComment{ID: c.ID, Body: c.Body})
		}
	}
	return comments, nil
}

func (m *MockAnalyticsRepository) UpdateAnalysis(ctx context.Context, id string, score int, label string, approved bool) error {
	m.UpdateCalls++
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if c, exists := m.Comments[id]; exists {
		c.SentimentScore = score
		c.SentimentLabel = label
		c.IsApproved = approved
	}
	return nil
}
