package repository

import (
	"context"
	"strconv"

	"github.com/comment-insights-api/internal/database"
	"github.com/comment-insights-api/internal/models"
)

// placeholder returns the n-th positional query placeholder
func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// analyticsRepo is the concrete implementation of AnalyticsRepository.
// Every projection reads only approved comments except ListUnanalyzed and
// UpdateAnalysis, which serve the re-analysis batch.
type analyticsRepo struct {
	db *database.DB
}

// NewAnalyticsRepo creates a new analytics repository
func NewAnalyticsRepo(db *database.DB) AnalyticsRepository {
	return &analyticsRepo{db: db}
}

// Overview returns label-distribution counts and the mean sentiment score
func (r *analyticsRepo) Overview(ctx context.Context, productID string) (*models.OverviewStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_comments,
			COUNT(CASE WHEN is_approved = TRUE THEN 1 END) AS approved_comments,
			COUNT(CASE WHEN sentiment_label = 'very_positive' THEN 1 END) AS very_positive,
			COUNT(CASE WHEN sentiment_label = 'positive' THEN 1 END) AS positive,
			COUNT(CASE WHEN sentiment_label = 'neutral' THEN 1 END) AS neutral,
			COUNT(CASE WHEN sentiment_label = 'negative' THEN 1 END) AS negative,
			COUNT(CASE WHEN sentiment_label = 'very_negative' THEN 1 END) AS very_negative,
			COALESCE(ROUND(CAST(AVG(sentiment_score) AS NUMERIC), 2), 0) AS avg_sentiment_score
		FROM comments
		WHERE is_approved = TRUE
	`
	var args []interface{}
	if productID != "" {
		query += ` AND product_id = $1`
		args = append(args, productID)
	}

	var stats models.OverviewStats
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalComments, &stats.ApprovedComments,
		&stats.VeryPositive, &stats.Positive, &stats.Neutral,
		&stats.Negative, &stats.VeryNegative,
		&stats.AvgSentimentScore,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// MostPositive returns the highest-scored approved comments, ties broken by
// recency. Only comments scoring at least +1 qualify.
func (r *analyticsRepo) MostPositive(ctx context.Context, productID string, limit int) ([]*models.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE is_approved = TRUE AND sentiment_score >= 1
	`
	args := []interface{}{}
	if productID != "" {
		query += ` AND product_id = $1`
		args = append(args, productID)
	}
	query += ` ORDER BY sentiment_score DESC, created_at DESC LIMIT ` + placeholder(len(args)+1)
	args = append(args, limit)

	return r.queryComments(ctx, query, args...)
}

// MostNegative returns the lowest-scored approved comments, ties broken by
// recency. Only comments scoring at most -1 qualify.
func (r *analyticsRepo) MostNegative(ctx context.Context, productID string, limit int) ([]*models.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE is_approved = TRUE AND sentiment_score <= -1
	`
	args := []interface{}{}
	if productID != "" {
		query += ` AND product_id = $1`
		args = append(args, productID)
	}
	query += ` ORDER BY sentiment_score ASC, created_at DESC LIMIT ` + placeholder(len(args)+1)
	args = append(args, limit)

	return r.queryComments(ctx, query, args...)
}

// Trends buckets approved comments by calendar day over the trailing window
func (r *analyticsRepo) Trends(ctx context.Context, productID string, days int) ([]models.TrendBucket, error) {
	query := `
		SELECT
			DATE(created_at)::text AS date,
			COUNT(*) AS comment_count,
			COALESCE(ROUND(CAST(AVG(sentiment_score) AS NUMERIC), 2), 0) AS avg_sentiment,
			COUNT(CASE WHEN sentiment_label IN ('positive', 'very_positive') THEN 1 END) AS positive_count,
			COUNT(CASE WHEN sentiment_label IN ('negative', 'very_negative') THEN 1 END) AS negative_count
		FROM comments
		WHERE is_approved = TRUE AND created_at >= CURRENT_DATE - $1 * INTERVAL '1 day'
	`
	args := []interface{}{days}
	if productID != "" {
		query += ` AND product_id = $2`
		args = append(args, productID)
	}
	query += ` GROUP BY DATE(created_at) ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []models.TrendBucket
	for rows.Next() {
		var bucket models.TrendBucket
		err := rows.Scan(
			&bucket.Date, &bucket.CommentCount, &bucket.AvgSentiment,
			&bucket.PositiveCount, &bucket.NegativeCount,
		)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}
	return buckets, rows.Err()
}

// Distribution returns per-label counts and percentages for one product
func (r *analyticsRepo) Distribution(ctx context.Context, productID string) ([]models.DistributionEntry, error) {
	query := `
		SELECT
			sentiment_label,
			COUNT(*) AS count,
			ROUND(CAST(COUNT(*) * 100.0 / (SELECT COUNT(*) FROM comments WHERE product_id = $1 AND is_approved = TRUE) AS NUMERIC), 1) AS percentage
		FROM comments
		WHERE product_id = $1 AND is_approved = TRUE
		GROUP BY sentiment_label
		ORDER BY count DESC
	`
	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.DistributionEntry
	for rows.Next() {
		var entry models.DistributionEntry
		if err := rows.Scan(&entry.SentimentLabel, &entry.Count, &entry.Percentage); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ProductRollups summarizes approved-comment sentiment per product
func (r *analyticsRepo) ProductRollups(ctx context.Context) ([]models.ProductRollup, error) {
	query := `
		SELECT
			product_id,
			COUNT(*) AS comment_count,
			COALESCE(ROUND(CAST(AVG(sentiment_score) AS NUMERIC), 2), 0) AS avg_sentiment,
			COUNT(CASE WHEN sentiment_label IN ('positive', 'very_positive') THEN 1 END) AS positive_count,
			COUNT(CASE WHEN sentiment_label IN ('negative', 'very_negative') THEN 1 END) AS negative_count
		FROM comments
		WHERE is_approved = TRUE
		GROUP BY product_id
		ORDER BY comment_count DESC, avg_sentiment DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rollups []models.ProductRollup
	for rows.Next() {
		var rollup models.ProductRollup
		err := rows.Scan(
			&rollup.ProductID, &rollup.CommentCount, &rollup.AvgSentiment,
			&rollup.PositiveCount, &rollup.NegativeCount,
		)
		if err != nil {
			return nil, err
		}
		rollups = append(rollups, rollup)
	}
	return rollups, rows.Err()
}

// ListApproved returns approved comments newest first, for the feature
// miner and word cloud
func (r *analyticsRepo) ListApproved(ctx context.Context, productID string) ([]*models.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE is_approved = TRUE
	`
	args := []interface{}{}
	if productID != "" {
		query += ` AND product_id = $1`
		args = append(args, productID)
	}
	query += ` ORDER BY created_at DESC`

	return r.queryComments(ctx, query, args...)
}

// ListUnanalyzed selects comments still in the never-analyzed state: a
// neutral zero score, or sentiment columns never set at all
func (r *analyticsRepo) ListUnanalyzed(ctx context.Context, productID string) ([]models.UnanalyzedComment, error) {
	query := `
		SELECT id, body
		FROM comments
		WHERE ((sentiment_score = 0 AND sentiment_label = 'neutral')
			OR sentiment_score IS NULL
			OR sentiment_label IS NULL)
	`
	args := []interface{}{}
	if productID != "" {
		query += ` AND product_id = $1`
		args = append(args, productID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []models.UnanalyzedComment
	for rows.Next() {
		var comment models.UnanalyzedComment
		if err := rows.Scan(&comment.ID, &comment.Body); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// UpdateAnalysis overwrites one comment's scorer verdict. Each call is its
// own atomic statement; the re-analysis batch deliberately runs without a
// surrounding transaction.
func (r *analyticsRepo) UpdateAnalysis(ctx context.Context, id string, score int, label string, approved bool) error {
	query := `
		UPDATE comments
		SET sentiment_score = $1, sentiment_label = $2, is_approved = $3
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query, score, label, approved, id)
	return err
}

// queryComments mirrors commentRepo's row scanning for analytics queries
func (r *analyticsRepo) queryComments(ctx context.Context, query string, args ...interface{}) ([]*models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID, &comment.ProductID, &comment.UserID, &comment.Username, &comment.Body,
			&comment.IsApproved, &comment.SentimentScore, &comment.SentimentLabel, &comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}
	return comments, rows.Err()
}
