package sentiment

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// topWords caps the word-cloud report size
const topWords = 50

// minWordLength filters out short filler tokens, in runes
const minWordLength = 3

// WordCount is one word and its frequency across the scanned comments
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordCloudReport holds word frequencies for display as a word cloud
type WordCloudReport struct {
	Words             []WordCount `json:"wordFrequency"`
	TotalComments     int         `json:"totalComments"`
	PositiveWordCount int         `json:"positiveWordCount"`
	NegativeWordCount int         `json:"negativeWordCount"`
}

// WordCloud computes the most frequent words across the given comments,
// tallying how many word occurrences came from positively and negatively
// scored comments.
func WordCloud(comments []CommentView) WordCloudReport {
	frequency := make(map[string]int)
	positiveCount := 0
	negativeCount := 0

	for _, comment := range comments {
		words := tokenize(comment.Body)
		for _, word := range words {
			frequency[word]++
			if comment.Score > 0 {
				positiveCount++
			} else if comment.Score < 0 {
				negativeCount++
			}
		}
	}

	ranked := make([]WordCount, 0, len(frequency))
	for word, count := range frequency {
		ranked = append(ranked, WordCount{Word: word, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})
	if len(ranked) > topWords {
		ranked = ranked[:topWords]
	}

	return WordCloudReport{
		Words:             ranked,
		TotalComments:     len(comments),
		PositiveWordCount: positiveCount,
		NegativeWordCount: negativeCount,
	}
}

// tokenize lowercases the body, strips punctuation, and keeps words of at
// least minWordLength runes
func tokenize(body string) []string {
	lower := strings.ToLower(body)
	cleaned := strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, lower)

	var words []string
	for _, word := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(word) >= minWordLength {
			words = append(words, word)
		}
	}
	return words
}
