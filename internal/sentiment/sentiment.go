// Package sentiment performs lexicon-based sentiment analysis of Turkish
// product comments.
//
// Scoring is a pure function over fixed lexicon tables: spam phrases
// short-circuit everything, positive and negative word weights are summed
// over whole-word occurrences, exclamation marks add a capped boost, and
// mostly-uppercase bodies take a shouting penalty. The label is always
// derived from the score through LabelForScore; no other code path may
// produce a score/label pair.
//
// All functions are safe for concurrent use by multiple goroutines; the
// lexicon tables are never written after package initialization.
package sentiment

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Label classifies a comment's overall sentiment
type Label string

const (
	LabelVeryPositive Label = "very_positive"
	LabelPositive     Label = "positive"
	LabelNeutral      Label = "neutral"
	LabelNegative     Label = "negative"
	LabelVeryNegative Label = "very_negative"
	LabelSpam         Label = "spam"
)

// String returns the wire name of the label
func (l Label) String() string {
	return string(l)
}

const (
	// exclamationBoostCap limits how much '!' repetition can raise a score
	exclamationBoostCap = 2

	// shoutingRatio is the uppercase-letter ratio above which a body is
	// treated as shouting
	shoutingRatio = 0.5

	// approvalFloor: only scores at or below this are auto-rejected.
	// Deliberately below the very_negative label threshold, so a -3
	// comment is labeled very_negative yet still published.
	approvalFloor = -4
)

// Verdict is the scorer's full decision for one comment body
type Verdict struct {
	Score    int   `json:"sentiment_score"`
	Label    Label `json:"sentiment_label"`
	Approved bool  `json:"is_approved"`
	Spam     bool  `json:"is_spam"`
}

// LabelForScore derives the sentiment label from a score. The thresholds
// are evaluated top to bottom; the first match wins.
func LabelForScore(score int) Label {
	switch {
	case score >= 3:
		return LabelVeryPositive
	case score >= 1:
		return LabelPositive
	case score <= -3:
		return LabelVeryNegative
	case score <= -1:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// Score analyzes one comment body and returns the full verdict.
// It never fails; a body with no lexicon matches scores neutral.
func Score(body string) Verdict {
	lower := strings.ToLower(body)

	// Spam check runs first and bypasses all scoring
	for _, phrase := range spamPhrases {
		if strings.Contains(lower, phrase) {
			return Verdict{Score: 0, Label: LabelSpam, Approved: false, Spam: true}
		}
	}

	score := 0

	// Lexicon scoring over whole-word occurrences
	for word, weight := range positiveWords {
		score += countWholeWord(lower, word) * weight
	}
	for word, weight := range negativeWords {
		score += countWholeWord(lower, word) * weight
	}

	// Exclamation boost, counted on the original body
	boost := strings.Count(body, "!")
	if boost > exclamationBoostCap {
		boost = exclamationBoostCap
	}
	score += boost

	// Shouting penalty
	if uppercaseRatio(body) > shoutingRatio {
		score--
	}

	return Verdict{
		Score:    score,
		Label:    LabelForScore(score),
		Approved: score > approvalFloor,
		Spam:     false,
	}
}

// countWholeWord counts non-overlapping occurrences of phrase in text that
// are delimited by word boundaries on both sides. Both inputs are expected
// to be lowercased already.
func countWholeWord(text, phrase string) int {
	if phrase == "" {
		return 0
	}

	count := 0
	offset := 0
	for {
		idx := strings.Index(text[offset:], phrase)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(phrase)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			count++
		}
		offset = end
	}
	return count
}

// boundaryBefore reports whether position pos begins a word
func boundaryBefore(text string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return !isWordRune(r)
}

// boundaryAfter reports whether position pos ends a word
func boundaryAfter(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// turkishUppercase covers the uppercase letters outside A-Z used by the
// source alphabet
const turkishUppercase = "ÇĞIİÖŞÜ"

// uppercaseRatio returns the share of uppercase letters over the total
// rune count of the body
func uppercaseRatio(body string) float64 {
	total := utf8.RuneCountInString(body)
	if total == 0 {
		return 0
	}

	upper := 0
	for _, r := range body {
		if (r >= 'A' && r <= 'Z') || strings.ContainsRune(turkishUppercase, r) {
			upper++
		}
	}
	return float64(upper) / float64(total)
}
