package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/comment-insights-api/internal/database"
	"github.com/comment-insights-api/internal/models"
	"github.com/lib/pq"
)

// commentColumns is the scan order shared by all comment queries
const commentColumns = `id, product_id, user_id, username, body, is_approved, sentiment_score, sentiment_label, created_at`

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment with its scorer verdict
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, product_id, user_id, username, body, is_approved, sentiment_score, sentiment_label, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.ProductID, comment.UserID, comment.Username, comment.Body,
		comment.IsApproved, comment.SentimentScore, comment.SentimentLabel, comment.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("insert comment (pq code %s): %w", pqErr.Code, err)
		}
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment by ID, nil when not found
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.ProductID, &comment.UserID, &comment.Username, &comment.Body,
		&comment.IsApproved, &comment.SentimentScore, &comment.SentimentLabel, &comment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// ListApprovedByProduct returns a product's approved comments, newest first
func (r *commentRepo) ListApprovedByProduct(ctx context.Context, productID string) ([]*models.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE product_id = $1 AND is_approved = TRUE
		ORDER BY created_at DESC
	`
	return r.queryComments(ctx, query, productID)
}

// ListAll returns every comment regardless of approval, newest first
func (r *commentRepo) ListAll(ctx context.Context) ([]*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments ORDER BY created_at DESC`
	return r.queryComments(ctx, query)
}

// Delete removes a comment, reporting whether it existed
func (r *commentRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// SetApproved overrides a comment's approval flag, reporting whether the
// comment existed. The stored sentiment score and label are untouched.
func (r *commentRepo) SetApproved(ctx context.Context, id string, approved bool) (bool, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE comments SET is_approved = $1 WHERE id = $2`, approved, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments`).Scan(&count)
	return count, err
}

// queryComments runs a query selecting commentColumns and scans all rows
func (r *commentRepo) queryComments(ctx context.Context, query string, args ...interface{}) ([]*models.Comment, error) {
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
