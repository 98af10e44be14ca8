package sentiment

// positiveWords maps lexicon entries to their positive weights.
// Multi-word keys are matched as contiguous phrases.
var positiveWords = map[string]int{
	"harika":     3,
	"mükemmel":   3,
	"süper":      2,
	"güzel":      2,
	"iyi":        1,
	"beğendim":   2,
	"tavsiye":    2,
	"kaliteli":   2,
	"hızlı":      1,
	"ucuz":       1,
	"başarılı":   2,
	"praktik":    1,
	"kullanışlı": 2,
	"dayanıklı":  2,
	"şık":        1,
	"elegant":    2,
	"modern":     1,
	"sağlam":     2,
	"memnun":     2,
	"sevdim":     2,
	"öneririm":   2,
	"efsane":     3,
	"müthiş":     3,
	"fiyat":      1,
}

// negativeWords maps lexicon entries to their negative weights
var negativeWords = map[string]int{
	"kötü":         -2,
	"berbat":       -3,
	"rezalet":      -3,
	"çöp":          -3,
	"saçma":        -2,
	"boktan":       -3,
	"aptal":        -2,
	"gereksiz":     -2,
	"işe yaramaz":  -3,
	"paranın boşa": -3,
	"pişman":       -2,
	"sorunlu":      -2,
	"bozuk":        -2,
	"yavaş":        -1,
	"pahalı":       -1,
	"küçük":        -1,
	"büyük":        -1,
	"beğenmedim":   -2,
}

// spamPhrases force immediate rejection when found anywhere in the body.
// Matched as case-insensitive substrings, not whole words.
var spamPhrases = []string{
	"link",
	"tıkla",
	"bedava",
	"para kazan",
	"siteyi ziyaret",
	"reklam",
	"promosyon",
	"http",
	"www.",
}
