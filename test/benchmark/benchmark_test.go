package benchmark

import (
	"fmt"
	"testing"

	"github.com/comment-insights-api/internal/models"
	"github.com/comment-insights-api/internal/sentiment"
	"github.com/comment-insights-api/internal/validation"
)

var benchmarkBodies = []string{
	"Harika ve kaliteli, çok beğendim!",
	"Berbat bir ürün, çöp gibi, pişman oldum.",
	"Kargo hızlı geldi, paket sağlamdı, fiyat da uygun",
	"BU ÜRÜN SÜPER AMA ÇOK KÜÇÜK",
	"dün sipariş verdim bugün elime ulaştı, beklentimi karşıladı",
}

// BenchmarkScore benchmarks the lexicon scorer
func BenchmarkScore(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		sentiment.Score(benchmarkBodies[i%len(benchmarkBodies)])
	}
}

// BenchmarkMineFeatures benchmarks feature mining over 1000 comments
func BenchmarkMineFeatures(b *testing.B) {
	views := make([]sentiment.CommentView, 1000)
	for i := range views {
		body := benchmarkBodies[i%len(benchmarkBodies)]
		views[i] = sentiment.CommentView{
			ID:       fmt.Sprintf("comment-%d", i),
			Username: fmt.Sprintf("user-%d", i),
			Body:     body,
			Score:    sentiment.Score(body).Score,
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		sentiment.MineFeatures(views)
	}

	b.ReportMetric(float64(1000*b.N)/b.Elapsed().Seconds(), "comments/sec")
}

// BenchmarkWordCloud benchmarks word frequency counting over 1000 comments
func BenchmarkWordCloud(b *testing.B) {
	views := make([]sentiment.CommentView, 1000)
	for i := range views {
		body := benchmarkBodies[i%len(benchmarkBodies)]
		views[i] = sentiment.CommentView{
			ID:    fmt.Sprintf("comment-%d", i),
			Body:  body,
			Score: sentiment.Score(body).Score,
		}
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		sentiment.WordCloud(views)
	}
}

// BenchmarkValidateSubmission benchmarks request validation
func BenchmarkValidateSubmission(b *testing.B) {
	req := &models.SubmitCommentRequest{
		ProductID: "prod-1",
		UserID:    "user-1",
		Username:  "benchmark-user",
		Body:      "Kargo hızlı geldi, paket sağlamdı, fiyat da uygun",
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		validation.ValidateSubmission(req)
	}
}
