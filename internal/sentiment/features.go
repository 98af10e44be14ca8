package sentiment

import (
	"sort"
	"strings"
	"time"
)

// Category is one fixed product-aspect taxonomy entry
type Category struct {
	Key      string
	Label    string
	Keywords []string
}

// Categories is the fixed feature taxonomy, defined once and never mutated
var Categories = []Category{
	{Key: "kalite", Label: "Kalite", Keywords: []string{"kalite", "kaliteli", "sağlam", "dayanıklı", "güçlü", "iyi", "güzel"}},
	{Key: "fiyat", Label: "Fiyat", Keywords: []string{"fiyat", "ucuz", "pahalı", "uygun", "ekonomik", "değer", "para"}},
	{Key: "tasarim", Label: "Tasarım", Keywords: []string{"tasarım", "görünüm", "şık", "elegant", "modern", "güzel", "hoş"}},
	{Key: "hiz", Label: "Hız/Performans", Keywords: []string{"hız", "hızlı", "yavaş", "çabuk", "sürat", "performans"}},
	{Key: "kullanim", Label: "Kullanım Kolaylığı", Keywords: []string{"kullanım", "kullanışlı", "pratik", "kolay", "zor", "rahat"}},
	{Key: "boyut", Label: "Boyut", Keywords: []string{"boyut", "büyük", "küçük", "ebat", "ölçü", "hacim"}},
	{Key: "garanti", Label: "Garanti/Servis", Keywords: []string{"garanti", "servis", "destek", "yardım", "çöz"}},
	{Key: "kargo", Label: "Kargo/Teslimat", Keywords: []string{"kargo", "teslimat", "gönderi", "paket", "ulaş"}},
}

const (
	// topFeatures caps how many categories each polarity reports
	topFeatures = 5

	// sampleComments caps how many matching comments a report carries
	sampleComments = 3
)

// CommentView is the slice of a comment the miner and word cloud operate on
type CommentView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Body      string    `json:"comment"`
	Score     int       `json:"sentiment_score"`
	CreatedAt time.Time `json:"created_at"`
}

// FeatureReport is the ranked result for one category and polarity
type FeatureReport struct {
	Category string        `json:"category"`
	Label    string        `json:"label"`
	Count    int           `json:"count"`
	Comments []CommentView `json:"comments"`
	Keywords []string      `json:"uniqueKeywords"`
}

// FeatureAnalysis holds the mined top features for both polarities
type FeatureAnalysis struct {
	Positive []FeatureReport `json:"positiveFeatures"`
	Negative []FeatureReport `json:"negativeFeatures"`
}

// bucket accumulates matches for one category on one polarity
type bucket struct {
	category Category
	count    int
	comments []CommentView
	keywords []string
}

// MineFeatures scans already-scored comments and reports, per category,
// which ones praised or criticized that aspect. The miner applies no
// approval filtering of its own; callers supply comments newest-first to
// get "most recent" samples. A comment with score zero contributes to
// neither polarity.
func MineFeatures(comments []CommentView) FeatureAnalysis {
	positive := make([]*bucket, len(Categories))
	negative := make([]*bucket, len(Categories))
	for i, cat := range Categories {
		positive[i] = &bucket{category: cat}
		negative[i] = &bucket{category: cat}
	}

	for _, comment := range comments {
		if comment.Score == 0 {
			continue
		}
		lower := strings.ToLower(comment.Body)

		for i, cat := range Categories {
			var found []string
			for _, keyword := range cat.Keywords {
				if countWholeWord(lower, keyword) > 0 {
					found = append(found, keyword)
				}
			}
			if len(found) == 0 {
				continue
			}

			b := positive[i]
			if comment.Score < 0 {
				b = negative[i]
			}
			b.count++
			b.comments = append(b.comments, comment)
			b.keywords = append(b.keywords, found...)
		}
	}

	return FeatureAnalysis{
		Positive: topReports(positive),
		Negative: topReports(negative),
	}
}

// topReports ranks buckets by match count and emits the top reports
func topReports(buckets []*bucket) []FeatureReport {
	ranked := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		if b.count > 0 {
			ranked = append(ranked, b)
		}
	}

	// Stable sort keeps taxonomy definition order on equal counts
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})

	if len(ranked) > topFeatures {
		ranked = ranked[:topFeatures]
	}

	reports := make([]FeatureReport, 0, len(ranked))
	for _, b := range ranked {
		sample := b.comments
		if len(sample) > sampleComments {
			sample = sample[:sampleComments]
		}
		reports = append(reports, FeatureReport{
			Category: b.category.Key,
			Label:    b.category.Label,
			Count:    b.count,
			Comments: sample,
			Keywords: dedupe(b.keywords),
		})
	}
	return reports
}

// dedupe removes duplicates preserving first-seen order
func dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
