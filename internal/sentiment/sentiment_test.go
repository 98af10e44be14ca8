package sentiment

import (
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantScore    int
		wantLabel    Label
		wantApproved bool
		wantSpam     bool
	}{
		{
			name:         "strongly positive with exclamation boost",
			body:         "Harika ve kaliteli, çok beğendim!",
			wantScore:    8, // harika(3) + kaliteli(2) + beğendim(2) + one '!'
			wantLabel:    LabelVeryPositive,
			wantApproved: true,
		},
		{
			name:         "strongly negative below approval floor",
			body:         "Berbat bir ürün, çöp gibi, pişman oldum.",
			wantScore:    -8, // berbat(-3) + çöp(-3) + pişman(-2)
			wantLabel:    LabelVeryNegative,
			wantApproved: false,
		},
		{
			name:         "spam phrase short-circuits scoring",
			body:         "Bu linke tıkla, bedava kazan!",
			wantScore:    0,
			wantLabel:    LabelSpam,
			wantApproved: false,
			wantSpam:     true,
		},
		{
			name:         "spam wins over positive words",
			body:         "Harika mükemmel ürün, siteyi ziyaret et",
			wantScore:    0,
			wantLabel:    LabelSpam,
			wantApproved: false,
			wantSpam:     true,
		},
		{
			name:         "all caps shouting penalty",
			body:         "BU ÜRÜN SÜPER AMA ÇOK KÜÇÜK",
			wantScore:    0, // süper(2) + küçük(-1) - shouting(1)
			wantLabel:    LabelNeutral,
			wantApproved: true,
		},
		{
			name:         "very negative but above approval floor",
			body:         "bu işe yaramaz bence",
			wantScore:    -3, // işe yaramaz(-3), still published
			wantLabel:    LabelVeryNegative,
			wantApproved: true,
		},
		{
			name:         "exclamation boost is capped at two",
			body:         "harika!!!!",
			wantScore:    5, // harika(3) + capped boost(2)
			wantLabel:    LabelVeryPositive,
			wantApproved: true,
		},
		{
			name:         "single positive word",
			body:         "ürünü sevdim",
			wantScore:    2,
			wantLabel:    LabelPositive,
			wantApproved: true,
		},
		{
			name:         "single mild negative word",
			body:         "biraz yavaş geldi",
			wantScore:    -1,
			wantLabel:    LabelNegative,
			wantApproved: true,
		},
		{
			name:         "no lexicon matches is neutral",
			body:         "dün sipariş verdim bugün geldi",
			wantScore:    0,
			wantLabel:    LabelNeutral,
			wantApproved: true,
		},
		{
			name:         "lexicon word inside a longer word does not match",
			body:         "kötümser değilim ama emin olamadım",
			wantScore:    0, // kötümser is not a whole-word kötü hit
			wantLabel:    LabelNeutral,
			wantApproved: true,
		},
		{
			name:         "repeated word counts every occurrence",
			body:         "güzel ürün, gerçekten güzel",
			wantScore:    4, // güzel(2) twice
			wantLabel:    LabelVeryPositive,
			wantApproved: true,
		},
		{
			name:         "mixed polarity sums weights",
			body:         "kaliteli ama pahalı ve yavaş",
			wantScore:    0, // kaliteli(2) + pahalı(-1) + yavaş(-1)
			wantLabel:    LabelNeutral,
			wantApproved: true,
		},
		{
			name:         "empty body is neutral",
			body:         "",
			wantScore:    0,
			wantLabel:    LabelNeutral,
			wantApproved: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.body)
			if got.Score != tt.wantScore {
				t.Errorf("Score(%q).Score = %d, want %d", tt.body, got.Score, tt.wantScore)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Score(%q).Label = %s, want %s", tt.body, got.Label, tt.wantLabel)
			}
			if got.Approved != tt.wantApproved {
				t.Errorf("Score(%q).Approved = %v, want %v", tt.body, got.Approved, tt.wantApproved)
			}
			if got.Spam != tt.wantSpam {
				t.Errorf("Score(%q).Spam = %v, want %v", tt.body, got.Spam, tt.wantSpam)
			}
		})
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	bodies := []string{
		"Harika ve kaliteli, çok beğendim!",
		"Berbat bir ürün, çöp gibi, pişman oldum.",
		"Bu linke tıkla, bedava kazan!",
		"dün sipariş verdim bugün geldi",
	}

	for _, body := range bodies {
		first := Score(body)
		second := Score(body)
		if first != second {
			t.Errorf("Score(%q) not deterministic: %+v vs %+v", body, first, second)
		}
	}
}

func TestLabelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  Label
	}{
		{6, LabelVeryPositive},
		{3, LabelVeryPositive},
		{2, LabelPositive},
		{1, LabelPositive},
		{0, LabelNeutral},
		{-1, LabelNegative},
		{-2, LabelNegative},
		{-3, LabelVeryNegative},
		{-6, LabelVeryNegative},
	}

	for _, tt := range tests {
		if got := LabelForScore(tt.score); got != tt.want {
			t.Errorf("LabelForScore(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

// The returned label must always be the one derived from the returned
// score, except for spam, which carries its own label and a zero score.
func TestVerdictLabelMatchesScore(t *testing.T) {
	bodies := []string{
		"harika",
		"harika!!!!",
		"kötü ve sorunlu",
		"berbat rezalet boktan",
		"BAĞIRIYORUM AMA KELİME YOK",
		"hiçbir şey",
		"güzel ama büyük",
	}

	for _, body := range bodies {
		got := Score(body)
		if got.Spam {
			if got.Score != 0 || got.Label != LabelSpam || got.Approved {
				t.Errorf("spam verdict for %q inconsistent: %+v", body, got)
			}
			continue
		}
		if want := LabelForScore(got.Score); got.Label != want {
			t.Errorf("Score(%q) label %s does not match score %d (want %s)", body, got.Label, got.Score, want)
		}
		if got.Approved != (got.Score > -4) {
			t.Errorf("Score(%q) approval %v inconsistent with score %d", body, got.Approved, got.Score)
		}
	}
}

func TestCountWholeWord(t *testing.T) {
	tests := []struct {
		text   string
		phrase string
		want   int
	}{
		{"güzel ürün", "güzel", 1},
		{"güzel güzel güzel", "güzel", 3},
		{"güzellik", "güzel", 0},
		{"çok güzeldi", "güzel", 0},
		{"işe yaramaz bir şey", "işe yaramaz", 1},
		{"bu işe yaramazlık", "işe yaramaz", 0},
		{"fiyat, performans", "fiyat", 1},
		{"(harika)", "harika", 1},
		{"", "güzel", 0},
	}

	for _, tt := range tests {
		if got := countWholeWord(tt.text, tt.phrase); got != tt.want {
			t.Errorf("countWholeWord(%q, %q) = %d, want %d", tt.text, tt.phrase, got, tt.want)
		}
	}
}

func TestUppercaseRatio(t *testing.T) {
	tests := []struct {
		body string
		want float64
	}{
		{"", 0},
		{"abc", 0},
		{"ABC", 1},
		{"ÇĞÜ", 1},
		{"Aa", 0.5},
	}

	for _, tt := range tests {
		if got := uppercaseRatio(tt.body); got != tt.want {
			t.Errorf("uppercaseRatio(%q) = %f, want %f", tt.body, got, tt.want)
		}
	}
}
