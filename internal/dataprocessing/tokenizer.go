package dataprocessing

import (
	"log/slog"
	"strings"
	"unicode"

	"complaintcli/pkg/contracts/domain"
)

// Tokenizer splits complaint narratives into word tokens: case-folded,
// punctuation stripped, left-to-right order preserved. Tokenization is
// deterministic; the same narrative always yields the same token sequence.
type Tokenizer struct {
	logger *slog.Logger
}

// NewTokenizer creates a tokenizer
func NewTokenizer(logger *slog.Logger) *Tokenizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tokenizer{logger: logger}
}

// TokenizeAll produces one TokenRecord per (complaint, token). Tag explosion
// duplicates rows under one identifier, so each ComplaintID is tokenized
// exactly once to keep per-complaint token counts honest. Records without a
// narrative contribute zero tokens.
func (t *Tokenizer) TokenizeAll(records []domain.ComplaintRecord) []domain.TokenRecord {
	seen := make(map[string]struct{}, len(records))
	var tokens []domain.TokenRecord

	for _, rec := range records {
		if _, dup := seen[rec.ComplaintID]; dup {
			continue
		}
		seen[rec.ComplaintID] = struct{}{}

		tokens = append(tokens, t.Tokenize(rec)...)
	}

	t.logger.Info("Tokenized narratives",
		slog.Int("complaints", len(seen)),
		slog.Int("tokens", len(tokens)))

	return tokens
}

// Tokenize splits one record's narrative. An empty or missing narrative
// yields zero tokens, not an error.
func (t *Tokenizer) Tokenize(rec domain.ComplaintRecord) []domain.TokenRecord {
	if !rec.HasNarrative() {
		return nil
	}

	words := splitWords(rec.Narrative)
	tokens := make([]domain.TokenRecord, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, domain.TokenRecord{
			ComplaintID: rec.ComplaintID,
			Disputed:    rec.Disputed,
			Token:       w,
		})
	}
	return tokens
}

// splitWords lower-cases the text and splits on any run of characters that
// is not a letter, digit, or apostrophe; apostrophes are then trimmed at
// word edges so contractions survive but quoting does not.
func splitWords(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f == "" {
			continue
		}
		words = append(words, f)
	}
	return words
}
