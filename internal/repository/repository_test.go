package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/comment-insights-api/internal/mocks"
	"github.com/comment-insights-api/internal/models"
)

func storedComment(id, productID string, score int, label string, approved bool) *models.Comment {
	return &models.Comment{
		ID:             id,
		ProductID:      productID,
		UserID:         "user-" + id,
		Username:       "user-" + id,
		Body:           "comment body " + id,
		IsApproved:     approved,
		SentimentScore: score,
		SentimentLabel: label,
		CreatedAt:      time.Now(),
	}
}

func TestMockCommentRepository_CreateAndGet(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	comment := storedComment("c1", "prod-1", 2, "positive", true)
	if err := repo.Create(ctx, comment); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stored, err := repo.GetByID(ctx, "c1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored == nil || stored.ID != "c1" {
		t.Errorf("GetByID returned %+v", stored)
	}

	missing, err := repo.GetByID(ctx, "nope")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing comment, got %+v", missing)
	}
}

func TestMockCommentRepository_ListApprovedByProduct(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	repo.Create(ctx, storedComment("c1", "prod-1", 2, "positive", true))
	repo.Create(ctx, storedComment("c2", "prod-1", -8, "very_negative", false))
	repo.Create(ctx, storedComment("c3", "prod-2", 1, "positive", true))
	repo.Create(ctx, storedComment("c4", "prod-1", 0, "neutral", true))

	comments, err := repo.ListApprovedByProduct(ctx, "prod-1")
	if err != nil {
		t.Fatalf("ListApprovedByProduct failed: %v", err)
	}

	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(comments))
	}
	// Newest first
	if comments[0].ID != "c4" || comments[1].ID != "c1" {
		t.Errorf("comments out of order: %s, %s", comments[0].ID, comments[1].ID)
	}
}

func TestMockCommentRepository_DeleteAndApprove(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	repo.Create(ctx, storedComment("c1", "prod-1", -8, "very_negative", false))

	found, err := repo.SetApproved(ctx, "c1", true)
	if err != nil || !found {
		t.Fatalf("SetApproved = (%v, %v), want (true, nil)", found, err)
	}
	if !repo.Comments["c1"].IsApproved {
		t.Error("approval flag not stored")
	}

	found, err = repo.SetApproved(ctx, "missing", true)
	if err != nil || found {
		t.Errorf("SetApproved(missing) = (%v, %v), want (false, nil)", found, err)
	}

	found, err = repo.Delete(ctx, "c1")
	if err != nil || !found {
		t.Fatalf("Delete = (%v, %v), want (true, nil)", found, err)
	}

	found, err = repo.Delete(ctx, "c1")
	if err != nil || found {
		t.Errorf("second Delete = (%v, %v), want (false, nil)", found, err)
	}

	count, err := repo.Count(ctx)
	if err != nil || count != 0 {
		t.Errorf("Count = (%d, %v), want (0, nil)", count, err)
	}
}

func TestMockAnalyticsRepository_ListUnanalyzed(t *testing.T) {
	repo := mocks.NewMockAnalyticsRepository()
	ctx := context.Background()

	repo.Add(storedComment("c1", "prod-1", 0, "neutral", true))
	repo.Add(storedComment("c2", "prod-1", 0, "", true))
	repo.Add(storedComment("c3", "prod-1", 2, "positive", true))
	repo.Add(storedComment("c4", "prod-1", 0, "spam", false))
	repo.Add(storedComment("c5", "prod-2", 0, "neutral", true))

	rows, err := repo.ListUnanalyzed(ctx, "prod-1")
	if err != nil {
		t.Fatalf("ListUnanalyzed failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 unanalyzed rows, got %d: %+v", len(rows), rows)
	}
	if rows[0].ID != "c1" || rows[1].ID != "c2" {
		t.Errorf("unexpected rows: %+v", rows)
	}

	all, err := repo.ListUnanalyzed(ctx, "")
	if err != nil {
		t.Fatalf("ListUnanalyzed failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 unanalyzed rows across products, got %d", len(all))
	}
}

func TestMockAnalyticsRepository_UpdateAnalysis(t *testing.T) {
	repo := mocks.NewMockAnalyticsRepository()
	ctx := context.Background()

	repo.Add(storedComment("c1", "prod-1", 0, "neutral", true))

	if err := repo.UpdateAnalysis(ctx, "c1", -5, "very_negative", false); err != nil {
		t.Fatalf("UpdateAnalysis failed: %v", err)
	}

	c := repo.Comments["c1"]
	if c.SentimentScore != -5 || c.SentimentLabel != "very_negative" || c.IsApproved {
		t.Errorf("comment after update: %+v", c)
	}

	rows, err := repo.ListUnanalyzed(ctx, "prod-1")
	if err != nil {
		t.Fatalf("ListUnanalyzed failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("updated comment still reported as unanalyzed: %+v", rows)
	}
}

func TestMockAnalyticsRepository_RankedLists(t *testing.T) {
	repo := mocks.NewMockAnalyticsRepository()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		repo.Add(storedComment(fmt.Sprintf("p%d", i), "prod-1", i, "positive", true))
		repo.Add(storedComment(fmt.Sprintf("n%d", i), "prod-1", -i, "negative", true))
	}
	repo.Add(storedComment("held", "prod-1", 5, "very_positive", false))

	top, err := repo.MostPositive(ctx, "prod-1", 3)
	if err != nil {
		t.Fatalf("MostPositive failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 comments, got %d", len(top))
	}
	if top[0].SentimentScore != 5 || top[0].ID != "p5" {
		t.Errorf("top comment = %+v, want p5", top[0])
	}

	bottom, err := repo.MostNegative(ctx, "prod-1", 3)
	if err != nil {
		t.Fatalf("MostNegative failed: %v", err)
	}
	if bottom[0].SentimentScore != -5 {
		t.Errorf("bottom comment = %+v, want score -5", bottom[0])
	}
}

func TestMockAnalyticsRepository_Overview(t *testing.T) {
	repo := mocks.NewMockAnalyticsRepository()
	ctx := context.Background()

	repo.Add(storedComment("c1", "prod-1", 3, "very_positive", true))
	repo.Add(storedComment("c2", "prod-1", 1, "positive", true))
	repo.Add(storedComment("c3", "prod-1", -8, "very_negative", false))

	stats, err := repo.Overview(ctx, "prod-1")
	if err != nil {
		t.Fatalf("Overview failed: %v", err)
	}

	if stats.TotalComments != 2 {
		t.Errorf("TotalComments = %d, want 2 approved", stats.TotalComments)
	}
	if stats.VeryPositive != 1 || stats.Positive != 1 {
		t.Errorf("label counts wrong: %+v", stats)
	}
	if stats.AvgSentimentScore != 2 {
		t.Errorf("AvgSentimentScore = %f, want 2", stats.AvgSentimentScore)
	}
}
