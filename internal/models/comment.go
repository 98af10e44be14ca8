package models

import (
	"time"
)

// Comment represents one user's review of one product
type Comment struct {
	ID             string    `json:"id" db:"id"`
	ProductID      string    `json:"product_id" db:"product_id"`
	UserID         string    `json:"user_id" db:"user_id"`
	Username       string    `json:"username" db:"username"`
	Body           string    `json:"comment" db:"body"`
	IsApproved     bool      `json:"is_approved" db:"is_approved"`
	SentimentScore int       `json:"sentiment_score" db:"sentiment_score"`
	SentimentLabel string    `json:"sentiment_label" db:"sentiment_label"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// UnanalyzedComment is the projection the re-analysis batch operates on
type UnanalyzedComment struct {
	ID   string `json:"id"`
	Body string `json:"comment"`
}

// MinBodyLength is the minimum accepted comment body length in characters,
// measured after trimming surrounding whitespace
const MinBodyLength = 8
