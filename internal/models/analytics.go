package models

// OverviewStats aggregates label counts and mean score over approved comments
type OverviewStats struct {
	TotalComments     int     `json:"total_comments"`
	ApprovedComments  int     `json:"approved_comments"`
	VeryPositive      int     `json:"very_positive"`
	Positive          int     `json:"positive"`
	Neutral           int     `json:"neutral"`
	Negative          int     `json:"negative"`
	VeryNegative      int     `json:"very_negative"`
	AvgSentimentScore float64 `json:"avg_sentiment_score"`
}

// TrendBucket is one calendar day of comment activity
type TrendBucket struct {
	Date          string  `json:"date"`
	CommentCount  int     `json:"comment_count"`
	AvgSentiment  float64 `json:"avg_sentiment"`
	PositiveCount int     `json:"positive_count"`
	NegativeCount int     `json:"negative_count"`
}

// DistributionEntry is one label's share of a product's approved comments
type DistributionEntry struct {
	SentimentLabel string  `json:"sentiment_label"`
	Count          int     `json:"count"`
	Percentage     float64 `json:"percentage"`
}

// ProductRollup summarizes approved-comment sentiment for one product
type ProductRollup struct {
	ProductID     string  `json:"product_id"`
	CommentCount  int     `json:"comment_count"`
	AvgSentiment  float64 `json:"avg_sentiment"`
	PositiveCount int     `json:"positive_count"`
	NegativeCount int     `json:"negative_count"`
}
