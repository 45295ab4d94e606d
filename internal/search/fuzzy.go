package search

import (
	"slices"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
)

// cache normalized strings; menus re-filter the same labels on every keystroke
var normalizeCache sync.Map // map[string]string

// Match represents a fuzzy search match with score and positions
type Match struct {
	Text       string  // The original text that was matched
	Score      float64 // Match score (higher is better)
	Positions  []int   // Rune positions that matched the query
	Highlights []Range // Rune ranges to highlight in the text
}

// Range represents a half-open range of runes for highlighting
type Range struct {
	Start int
	End   int
}

// Fuzzy performs fuzzy string matching
type Fuzzy struct {
	caseSensitive    bool
	normalizeSpaces  bool
	highlightMatches bool
	minScore         float64
}

// NewFuzzy creates a new fuzzy matcher with default settings
func NewFuzzy() *Fuzzy {
	return &Fuzzy{
		caseSensitive:    false,
		normalizeSpaces:  true,
		highlightMatches: true,
		minScore:         0.1,
	}
}

// SetCaseSensitive enables or disables case-sensitive matching
func (f *Fuzzy) SetCaseSensitive(enabled bool) *Fuzzy {
	f.caseSensitive = enabled
	return f
}

// SetNormalizeSpaces enables or disables space normalization
func (f *Fuzzy) SetNormalizeSpaces(enabled bool) *Fuzzy {
	f.normalizeSpaces = enabled
	return f
}

// SetHighlightMatches enables or disables match highlighting
func (f *Fuzzy) SetHighlightMatches(enabled bool) *Fuzzy {
	f.highlightMatches = enabled
	return f
}

// SetMinScore sets the minimum score threshold for matches
func (f *Fuzzy) SetMinScore(score float64) *Fuzzy {
	f.minScore = score
	return f
}

// MinScore returns the configured threshold
func (f *Fuzzy) MinScore() float64 {
	return f.minScore
}

// Match performs fuzzy matching of query against text
func (f *Fuzzy) Match(query, text string) (*Match, bool) {
	if query == "" {
		return &Match{
			Text:      text,
			Score:     1.0,
			Positions: []int{},
		}, true
	}

	normalizedQuery := f.normalize(query)
	normalizedText := f.normalize(text)

	positions, score := f.calculateMatch(normalizedQuery, normalizedText)
	if score < f.minScore {
		return nil, false
	}

	match := &Match{
		Text:      text,
		Score:     score,
		Positions: positions,
	}

	if f.highlightMatches {
		match.Highlights = f.calculateHighlights(positions)
	}

	return match, true
}

// Search performs fuzzy search across multiple strings
func (f *Fuzzy) Search(query string, texts []string) []Match {
	return f.SearchWithLimit(query, texts, len(texts))
}

// SearchWithLimit performs fuzzy search and keeps at most limit results
func (f *Fuzzy) SearchWithLimit(query string, texts []string, limit int) []Match {
	if len(texts) == 0 || limit <= 0 {
		return []Match{}
	}

	matches := make([]Match, 0, min(limit, 64))
	for _, text := range texts {
		if match, ok := f.Match(query, text); ok {
			matches = append(matches, *match)
		}
	}

	// highest score first, shorter text on ties
	slices.SortStableFunc(matches, func(a, b Match) int {
		if a.Score == b.Score {
			return len(a.Text) - len(b.Text)
		}
		if a.Score > b.Score {
			return -1
		}
		return 1
	})

	if len(matches) > limit {
		return matches[:limit]
	}
	return matches
}

// normalize normalizes text for matching with caching for performance
func (f *Fuzzy) normalize(text string) string {
	cacheKey := text
	if f.caseSensitive {
		cacheKey += "\x00cs"
	}
	if f.normalizeSpaces {
		cacheKey += "\x00ns"
	}

	if cached, ok := normalizeCache.Load(cacheKey); ok {
		return cached.(string)
	}

	result := text
	if !f.caseSensitive {
		result = cases.Fold().String(result)
	}
	if f.normalizeSpaces {
		result = strings.Join(strings.Fields(result), " ")
	}

	normalizeCache.Store(cacheKey, result)
	return result
}

// calculateMatch calculates fuzzy match positions and score
func (f *Fuzzy) calculateMatch(query, text string) ([]int, float64) {
	q := []rune(query)
	t := []rune(text)

	if len(q) == 0 {
		return []int{}, 1.0
	}
	if len(t) == 0 {
		return []int{}, 0.0
	}

	var positions []int
	queryIndex := 0
	consecutiveMatches := 0
	bestConsecutive := 0

	for textIndex, char := range t {
		if queryIndex < len(q) && q[queryIndex] == char {
			positions = append(positions, textIndex)
			queryIndex++
			consecutiveMatches++
			bestConsecutive = max(bestConsecutive, consecutiveMatches)
		} else {
			consecutiveMatches = 0
		}
	}

	// every query rune must appear in order
	if queryIndex < len(q) {
		return []int{}, 0.0
	}

	return positions, f.calculateScore(len(q), len(t), positions, bestConsecutive)
}

// calculateScore calculates the match score in [0, 1]
func (f *Fuzzy) calculateScore(queryLen, textLen int, positions []int, bestConsecutive int) float64 {
	if len(positions) == 0 {
		return 0.0
	}

	baseScore := float64(len(positions)) / float64(queryLen)
	consecutiveBonus := float64(bestConsecutive) / float64(queryLen) * 0.5

	startBonus := 0.0
	if positions[0] == 0 {
		startBonus = 0.2
	}

	lengthBonus := float64(queryLen) / float64(textLen) * 0.3

	gapPenalty := 0.0
	if len(positions) > 1 {
		totalGaps := positions[len(positions)-1] - positions[0] + 1 - len(positions)
		gapPenalty = float64(totalGaps) / float64(textLen) * 0.3
	}

	score := baseScore + consecutiveBonus + startBonus + lengthBonus - gapPenalty
	return min(max(score, 0.0), 1.0)
}

// calculateHighlights merges consecutive positions into ranges
func (f *Fuzzy) calculateHighlights(positions []int) []Range {
	if len(positions) == 0 {
		return []Range{}
	}

	var highlights []Range
	start := positions[0]
	end := positions[0] + 1

	for _, pos := range positions[1:] {
		if pos == end {
			end++
			continue
		}
		highlights = append(highlights, Range{Start: start, End: end})
		start = pos
		end = pos + 1
	}

	return append(highlights, Range{Start: start, End: end})
}

// HighlightString wraps each highlighted rune range of text in startTag and endTag
func (f *Fuzzy) HighlightString(text string, highlights []Range, startTag, endTag string) string {
	if len(highlights) == 0 {
		return text
	}

	runes := []rune(text)
	var result strings.Builder
	lastEnd := 0

	for _, h := range highlights {
		start := min(max(h.Start, lastEnd), len(runes))
		end := min(h.End, len(runes))
		if start >= end {
			continue
		}
		result.WriteString(string(runes[lastEnd:start]))
		result.WriteString(startTag)
		result.WriteString(string(runes[start:end]))
		result.WriteString(endTag)
		lastEnd = end
	}

	result.WriteString(string(runes[lastEnd:]))
	return result.String()
}

// Spans splits text into alternating plain and highlighted segments.
// Renderers that style cells rather than strings use this instead of tags.
func Spans(text string, highlights []Range) []Span {
	runes := []rune(text)
	var spans []Span
	lastEnd := 0

	for _, h := range highlights {
		start := min(max(h.Start, lastEnd), len(runes))
		end := min(h.End, len(runes))
		if start >= end {
			continue
		}
		if start > lastEnd {
			spans = append(spans, Span{Text: string(runes[lastEnd:start])})
		}
		spans = append(spans, Span{Text: string(runes[start:end]), Matched: true})
		lastEnd = end
	}

	if lastEnd < len(runes) || len(spans) == 0 {
		spans = append(spans, Span{Text: string(runes[lastEnd:])})
	}
	return spans
}

// Span is a run of text that either matched the query or did not
type Span struct {
	Text    string
	Matched bool
}

// SmartMatch performs intelligent fuzzy matching with word boundary awareness
func (f *Fuzzy) SmartMatch(query, text string) (*Match, bool) {
	if match, ok := f.exactSubstringMatch(query, text); ok {
		return match, true
	}
	if match, ok := f.wordBoundaryMatch(query, text); ok {
		return match, true
	}
	return f.Match(query, text)
}

// exactSubstringMatch checks for exact substring matches
func (f *Fuzzy) exactSubstringMatch(query, text string) (*Match, bool) {
	normalizedQuery := f.normalize(query)
	normalizedText := f.normalize(text)

	index := runeIndex(normalizedText, normalizedQuery)
	if index < 0 {
		return nil, false
	}

	n := len([]rune(normalizedQuery))
	positions := make([]int, n)
	for i := range positions {
		positions[i] = index + i
	}

	score := 0.9
	if index == 0 {
		score = 1.0
	}

	match := &Match{
		Text:      text,
		Score:     score,
		Positions: positions,
	}
	if f.highlightMatches {
		match.Highlights = []Range{{Start: index, End: index + n}}
	}

	return match, true
}

// wordBoundaryMatch matches each query word against the best word in text
func (f *Fuzzy) wordBoundaryMatch(query, text string) (*Match, bool) {
	words := splitIntoWords(f.normalize(text))
	queryWords := splitIntoWords(f.normalize(query))
	if len(queryWords) == 0 {
		return nil, false
	}

	var allPositions []int
	totalScore := 0.0
	matchedWords := 0

	for _, queryWord := range queryWords {
		bestWordScore := 0.0
		var bestPositions []int

		for _, word := range words {
			positions, score := f.calculateMatch(queryWord.Text, word.Text)
			if score <= bestWordScore {
				continue
			}
			bestWordScore = score
			bestPositions = make([]int, len(positions))
			for i, pos := range positions {
				bestPositions[i] = word.Start + pos
			}
		}

		if bestWordScore > 0 {
			allPositions = append(allPositions, bestPositions...)
			totalScore += bestWordScore
			matchedWords++
		}
	}

	if matchedWords == 0 {
		return nil, false
	}

	avgScore := totalScore / float64(len(queryWords))
	if matchedWords == len(queryWords) {
		avgScore *= 1.2
	}
	avgScore = min(avgScore, 1.0)

	slices.Sort(allPositions)
	allPositions = slices.Compact(allPositions)

	match := &Match{
		Text:      text,
		Score:     avgScore,
		Positions: allPositions,
	}
	if f.highlightMatches {
		match.Highlights = f.calculateHighlights(allPositions)
	}

	return match, avgScore >= f.minScore
}

// Word represents a word with its rune position in the original text
type Word struct {
	Text  string
	Start int
	End   int
}

// splitIntoWords splits text into letter/digit runs
func splitIntoWords(text string) []Word {
	var words []Word
	var current []rune
	wordStart := 0

	for i, r := range []rune(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if len(current) == 0 {
				wordStart = i
			}
			current = append(current, r)
			continue
		}
		if len(current) > 0 {
			words = append(words, Word{Text: string(current), Start: wordStart, End: i})
			current = current[:0]
		}
	}

	if len(current) > 0 {
		words = append(words, Word{Text: string(current), Start: wordStart, End: wordStart + len(current)})
	}

	return words
}

// runeIndex is strings.Index measured in runes
func runeIndex(s, substr string) int {
	i := strings.Index(s, substr)
	if i < 0 {
		return -1
	}
	return len([]rune(s[:i]))
}
