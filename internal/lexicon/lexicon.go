// Package lexicon loads the static word-to-label reference tables used by
// the pipeline: a stop-word exclusion set, a binary polarity lexicon, and a
// categorical emotion lexicon where one word may carry several categories.
// The tables ship embedded in the binary and are read-only after load.
package lexicon

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"strings"

	apperrors "complaintcli/internal/errors"
	"complaintcli/pkg/contracts/domain"
)

//go:embed data/stopwords.txt
var stopWordsData []byte

//go:embed data/sentiment.txt
var sentimentData []byte

//go:embed data/emotions.txt
var emotionsData []byte

// Tables holds the three loaded reference tables.
type Tables struct {
	stopWords map[string]struct{}
	polarity  map[string]domain.Polarity
	emotions  map[string][]domain.EmotionCategory
}

// Load parses the embedded lexicon files. Malformed lines are skipped with a
// warning; only an entirely empty table is an error.
func Load(logger *slog.Logger) (*Tables, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t := &Tables{
		stopWords: make(map[string]struct{}),
		polarity:  make(map[string]domain.Polarity),
		emotions:  make(map[string][]domain.EmotionCategory),
	}

	if err := t.loadStopWords(bytes.NewReader(stopWordsData)); err != nil {
		return nil, err
	}
	if err := t.loadPolarity(bytes.NewReader(sentimentData), logger); err != nil {
		return nil, err
	}
	if err := t.loadEmotions(bytes.NewReader(emotionsData), logger); err != nil {
		return nil, err
	}

	logger.Info("Lexicon tables loaded", slog.String("sizes", t.Sizes()))

	return t, nil
}

// loadStopWords reads one word per line.
func (t *Tables) loadStopWords(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		t.stopWords[strings.ToLower(word)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return apperrors.NewParsingError("failed to read stop-word list", err)
	}
	if len(t.stopWords) == 0 {
		return apperrors.NewParsingError("stop-word list is empty", nil)
	}
	return nil
}

// loadPolarity reads word<TAB>polarity lines.
func (t *Tables) loadPolarity(r io.Reader, logger *slog.Logger) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			logger.Warn("Skipping malformed polarity lexicon line",
				slog.Int("line", lineNo),
				slog.String("content", line))
			continue
		}

		word := strings.ToLower(strings.TrimSpace(fields[0]))
		switch domain.Polarity(strings.ToLower(strings.TrimSpace(fields[1]))) {
		case domain.PolarityPositive:
			t.polarity[word] = domain.PolarityPositive
		case domain.PolarityNegative:
			t.polarity[word] = domain.PolarityNegative
		default:
			logger.Warn("Skipping polarity lexicon line with unknown label",
				slog.Int("line", lineNo),
				slog.String("content", line))
		}
	}
	if err := scanner.Err(); err != nil {
		return apperrors.NewParsingError("failed to read polarity lexicon", err)
	}
	if len(t.polarity) == 0 {
		return apperrors.NewParsingError("polarity lexicon is empty", nil)
	}
	return nil
}

// loadEmotions reads word<TAB>category lines; a word may repeat across lines.
func (t *Tables) loadEmotions(r io.Reader, logger *slog.Logger) error {
	valid := make(map[domain.EmotionCategory]struct{}, len(domain.EmotionCategories))
	for _, c := range domain.EmotionCategories {
		valid[c] = struct{}{}
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			logger.Warn("Skipping malformed emotion lexicon line",
				slog.Int("line", lineNo),
				slog.String("content", line))
			continue
		}

		word := strings.ToLower(strings.TrimSpace(fields[0]))
		category := domain.EmotionCategory(strings.ToLower(strings.TrimSpace(fields[1])))
		if _, ok := valid[category]; !ok {
			logger.Warn("Skipping emotion lexicon line with unknown category",
				slog.Int("line", lineNo),
				slog.String("content", line))
			continue
		}

		t.emotions[word] = append(t.emotions[word], category)
	}
	if err := scanner.Err(); err != nil {
		return apperrors.NewParsingError("failed to read emotion lexicon", err)
	}
	if len(t.emotions) == 0 {
		return apperrors.NewParsingError("emotion lexicon is empty", nil)
	}
	return nil
}

// IsStopWord reports whether the token is in the stop-word exclusion set.
func (t *Tables) IsStopWord(token string) bool {
	_, ok := t.stopWords[token]
	return ok
}

// Polarity looks up the binary sentiment label for a token.
func (t *Tables) Polarity(token string) (domain.Polarity, bool) {
	p, ok := t.polarity[token]
	return p, ok
}

// Emotions returns every emotion category the token carries, or nil when the
// token is not in the lexicon. Callers must not mutate the returned slice.
func (t *Tables) Emotions(token string) []domain.EmotionCategory {
	return t.emotions[token]
}

// Entry assembles the full LexiconEntry for a word, for diagnostics.
func (t *Tables) Entry(word string) (domain.LexiconEntry, bool) {
	word = strings.ToLower(word)
	p, hasPolarity := t.polarity[word]
	cats := t.emotions[word]
	if !hasPolarity && len(cats) == 0 {
		return domain.LexiconEntry{}, false
	}
	entry := domain.LexiconEntry{Word: word, Categories: cats}
	if hasPolarity {
		entry.Polarity = p
	}
	return entry, true
}

// Sizes returns the table cardinalities, for logging.
func (t *Tables) Sizes() string {
	return fmt.Sprintf("stop=%d polarity=%d emotions=%d",
		len(t.stopWords), len(t.polarity), len(t.emotions))
}
