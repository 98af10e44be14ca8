package sentiment

import (
	"fmt"
	"testing"
)

func view(id, body string, score int) CommentView {
	return CommentView{ID: id, Username: "user-" + id, Body: body, Score: score}
}

func reportFor(reports []FeatureReport, category string) *FeatureReport {
	for i := range reports {
		if reports[i].Category == category {
			return &reports[i]
		}
	}
	return nil
}

func TestMineFeaturesPolarity(t *testing.T) {
	comments := []CommentView{
		view("1", "kalite çok iyi", 3),
		view("2", "kalite berbat", -2),
		view("3", "kargo hızlı geldi", 2),
	}

	analysis := MineFeatures(comments)

	kalitePos := reportFor(analysis.Positive, "kalite")
	if kalitePos == nil || kalitePos.Count != 1 {
		t.Fatalf("expected one positive kalite match, got %+v", analysis.Positive)
	}
	if kalitePos.Label != "Kalite" {
		t.Errorf("kalite label = %q, want %q", kalitePos.Label, "Kalite")
	}

	kaliteNeg := reportFor(analysis.Negative, "kalite")
	if kaliteNeg == nil || kaliteNeg.Count != 1 {
		t.Fatalf("expected one negative kalite match, got %+v", analysis.Negative)
	}
	if kaliteNeg.Comments[0].ID != "2" {
		t.Errorf("negative kalite sample = %s, want comment 2", kaliteNeg.Comments[0].ID)
	}

	if got := reportFor(analysis.Negative, "kargo"); got != nil {
		t.Errorf("positive kargo comment leaked into negative reports: %+v", got)
	}
}

func TestMineFeaturesSkipsNeutral(t *testing.T) {
	comments := []CommentView{
		view("1", "kalite fena değil, fiyat uygun", 0),
	}

	analysis := MineFeatures(comments)
	if len(analysis.Positive) != 0 || len(analysis.Negative) != 0 {
		t.Errorf("neutral comment produced reports: %+v", analysis)
	}
}

func TestMineFeaturesMultiCategory(t *testing.T) {
	// "güzel" sits in both kalite and tasarim; "fiyat" in fiyat.
	comments := []CommentView{
		view("1", "fiyat güzel", 2),
	}

	analysis := MineFeatures(comments)
	for _, want := range []string{"kalite", "fiyat", "tasarim"} {
		if reportFor(analysis.Positive, want) == nil {
			t.Errorf("category %s missing from positive reports: %+v", want, analysis.Positive)
		}
	}
	if len(analysis.Positive) != 3 {
		t.Errorf("got %d positive reports, want 3", len(analysis.Positive))
	}
}

func TestMineFeaturesTopFiveCap(t *testing.T) {
	// One comment per category so six categories tie on count.
	comments := []CommentView{
		view("1", "kalite tam yerinde", 1),
		view("2", "ucuz buldum", 1),
		view("3", "modern duruyor", 1),
		view("4", "performans yeterli", 1),
		view("5", "pratik bence", 1),
		view("6", "ebat tam oldu", 1),
	}

	analysis := MineFeatures(comments)
	if len(analysis.Positive) != topFeatures {
		t.Fatalf("got %d positive reports, want cap of %d", len(analysis.Positive), topFeatures)
	}

	// Stable ranking on equal counts keeps taxonomy order, so boyut
	// (last of the six in the taxonomy) is the one cut.
	if got := reportFor(analysis.Positive, "boyut"); got != nil {
		t.Errorf("boyut should have been cut by the cap: %+v", analysis.Positive)
	}
}

func TestMineFeaturesSampleCap(t *testing.T) {
	comments := make([]CommentView, 0, 4)
	for i := 1; i <= 4; i++ {
		comments = append(comments, view(fmt.Sprintf("%d", i), "kargo sorunsuz", 1))
	}

	analysis := MineFeatures(comments)
	kargo := reportFor(analysis.Positive, "kargo")
	if kargo == nil {
		t.Fatal("kargo report missing")
	}
	if kargo.Count != 4 {
		t.Errorf("kargo count = %d, want 4", kargo.Count)
	}
	if len(kargo.Comments) != sampleComments {
		t.Fatalf("kargo sample size = %d, want %d", len(kargo.Comments), sampleComments)
	}
	// Samples keep input order, so callers passing newest-first get
	// the most recent comments.
	for i, want := range []string{"1", "2", "3"} {
		if kargo.Comments[i].ID != want {
			t.Errorf("sample[%d] = %s, want %s", i, kargo.Comments[i].ID, want)
		}
	}
}

func TestMineFeaturesKeywordDedupe(t *testing.T) {
	comments := []CommentView{
		view("1", "kalite süper, gerçekten kalite", 2),
		view("2", "kalite ve sağlam", 1),
	}

	analysis := MineFeatures(comments)
	kalite := reportFor(analysis.Positive, "kalite")
	if kalite == nil {
		t.Fatal("kalite report missing")
	}

	want := []string{"kalite", "sağlam"}
	if len(kalite.Keywords) != len(want) {
		t.Fatalf("keywords = %v, want %v", kalite.Keywords, want)
	}
	for i := range want {
		if kalite.Keywords[i] != want[i] {
			t.Errorf("keywords[%d] = %s, want %s", i, kalite.Keywords[i], want[i])
		}
	}
}

func TestMineFeaturesRanksByCount(t *testing.T) {
	comments := []CommentView{
		view("1", "kargo geldi", 1),
		view("2", "kargo yine geldi", 1),
		view("3", "garanti var", 1),
	}

	analysis := MineFeatures(comments)
	if len(analysis.Positive) != 2 {
		t.Fatalf("got %d positive reports, want 2", len(analysis.Positive))
	}
	if analysis.Positive[0].Category != "kargo" {
		t.Errorf("top category = %s, want kargo", analysis.Positive[0].Category)
	}
}
