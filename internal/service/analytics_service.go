package service

import (
	"context"
	"fmt"
	"time"

	"github.com/comment-insights-api/internal/config"
	"github.com/comment-insights-api/internal/models"
	"github.com/comment-insights-api/internal/repository"
	"github.com/comment-insights-api/internal/sentiment"
	"github.com/rs/zerolog"
)

// analyticsService is the concrete implementation of AnalyticsService
type analyticsService struct {
	repo         repository.AnalyticsRepository
	trendDays    int
	rankingLimit int
	log          zerolog.Logger
}

// newAnalyticsService creates a new AnalyticsService
func newAnalyticsService(repo repository.AnalyticsRepository, cfg *config.Config, log zerolog.Logger) *analyticsService {
	return &analyticsService{
		repo:         repo,
		trendDays:    cfg.Analytics.TrendDays,
		rankingLimit: cfg.Analytics.RankingLimit,
		log:          log.With().Str("service", "analytics").Logger(),
	}
}

// Overview returns label counts and mean score over approved comments
func (s *analyticsService) Overview(ctx context.Context, productID string) (*models.OverviewStats, error) {
	return s.repo.Overview(ctx, productID)
}

// MostPositive returns the top-ranked positive comments
func (s *analyticsService) MostPositive(ctx context.Context, productID string) ([]*models.Comment, error) {
	return s.repo.MostPositive(ctx, productID, s.rankingLimit)
}

// MostNegative returns the top-ranked negative comments
func (s *analyticsService) MostNegative(ctx context.Context, productID string) ([]*models.Comment, error) {
	return s.repo.MostNegative(ctx, productID, s.rankingLimit)
}

// Trends returns daily activity buckets over the configured window
func (s *analyticsService) Trends(ctx context.Context, productID string) ([]models.TrendBucket, error) {
	return s.repo.Trends(ctx, productID, s.trendDays)
}

// Distribution returns one product's label distribution
func (s *analyticsService) Distribution(ctx context.Context, productID string) ([]models.DistributionEntry, error) {
	return s.repo.Distribution(ctx, productID)
}

// ProductRollups returns per-product sentiment summaries
func (s *analyticsService) ProductRollups(ctx context.Context) ([]models.ProductRollup, error) {
	return s.repo.ProductRollups(ctx)
}

// Features mines the approved comments for praised and criticized product
// aspects. The repository returns comments newest first, so report samples
// are the most recent matches.
func (s *analyticsService) Features(ctx context.Context, productID string) (*FeatureAnalysisResult, error) {
	comments, err := s.repo.ListApproved(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list approved comments: %w", err)
	}

	analysis := sentiment.MineFeatures(toViews(comments))

	return &FeatureAnalysisResult{
		TotalComments: len(comments),
		Positive:      analysis.Positive,
		Negative:      analysis.Negative,
		LastUpdated:   time.Now().UTC(),
	}, nil
}

// WordCloud computes word frequencies over one product's approved comments
func (s *analyticsService) WordCloud(ctx context.Context, productID string) (*sentiment.WordCloudReport, error) {
	comments, err := s.repo.ListApproved(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list approved comments: %w", err)
	}

	report := sentiment.WordCloud(toViews(comments))
	return &report, nil
}

// Reanalyze re-scores every comment still in the never-analyzed state and
// overwrites its verdict, one independent update per row. A failing row is
// logged and skipped; the returned count covers successful updates only.
func (s *analyticsService) Reanalyze(ctx context.Context, productID string) (int, error) {
	rows, err := s.repo.ListUnanalyzed(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("list unanalyzed comments: %w", err)
	}

	updated := 0
	for _, row := range rows {
		verdict := sentiment.Score(row.Body)

		err := s.repo.UpdateAnalysis(ctx, row.ID, verdict.Score, verdict.Label.String(), verdict.Approved)
		if err != nil {
			s.log.Error().Err(err).Str("comment_id", row.ID).Msg("Failed to update re-analyzed comment")
			continue
		}
		updated++
	}

	s.log.Info().
		Int("selected", len(rows)).
		Int("updated", updated).
		Str("product_id", productID).
		Msg("Re-analysis completed")

	return updated, nil
}

// toViews maps stored comments to the scorer package's view type
func toViews(comments []*models.Comment) []sentiment.CommentView {
	views := make([]sentiment.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, sentiment.CommentView{
			ID:        c.ID,
			Username:  c.Username,
			Body:      c.Body,
			Score:     c.SentimentScore,
			CreatedAt: c.CreatedAt,
		})
	}
	return views
}
