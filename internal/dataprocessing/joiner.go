package dataprocessing

import (
	"log/slog"

	"complaintcli/internal/lexicon"
	"complaintcli/pkg/contracts/domain"
)

// Joiner matches token rows against the static lexicon tables. All three
// passes use inner-join semantics: tokens without a match simply drop out,
// which is a data-quality outcome and never an error.
type Joiner struct {
	logger *slog.Logger
	tables *lexicon.Tables
}

// NewJoiner creates a joiner over the given lexicon tables.
func NewJoiner(logger *slog.Logger, tables *lexicon.Tables) *Joiner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Joiner{logger: logger, tables: tables}
}

// RemoveStopWords drops tokens present in the stop-word set.
func (j *Joiner) RemoveStopWords(tokens []domain.TokenRecord) []domain.TokenRecord {
	kept := make([]domain.TokenRecord, 0, len(tokens))
	for _, tok := range tokens {
		if j.tables.IsStopWord(tok.Token) {
			continue
		}
		kept = append(kept, tok)
	}

	j.logger.Info("Removed stop words",
		slog.Int("tokens_in", len(tokens)),
		slog.Int("tokens_out", len(kept)))

	return kept
}

// FilterNegative keeps only tokens the polarity lexicon labels negative.
// This is a filter, not an annotation; its survivors feed the word-cloud
// frequency table.
func (j *Joiner) FilterNegative(tokens []domain.TokenRecord) []domain.TokenRecord {
	kept := make([]domain.TokenRecord, 0, len(tokens))
	for _, tok := range tokens {
		p, ok := j.tables.Polarity(tok.Token)
		if !ok || p != domain.PolarityNegative {
			continue
		}
		kept = append(kept, tok)
	}

	j.logger.Info("Filtered negative-sentiment tokens",
		slog.Int("tokens_in", len(tokens)),
		slog.Int("tokens_out", len(kept)))

	return kept
}

// JoinEmotions fans each token out into one row per matching emotion
// category. The emotion lexicon is not a function — one word can carry
// several labels — so a token matching k categories yields k rows. Keeping
// only one label would corrupt the downstream proportions.
func (j *Joiner) JoinEmotions(tokens []domain.TokenRecord) []domain.EmotionToken {
	var joined []domain.EmotionToken
	matched := 0

	for _, tok := range tokens {
		categories := j.tables.Emotions(tok.Token)
		if len(categories) == 0 {
			continue
		}
		matched++
		for _, cat := range categories {
			joined = append(joined, domain.EmotionToken{
				ComplaintID: tok.ComplaintID,
				Disputed:    tok.Disputed,
				Token:       tok.Token,
				Category:    cat,
			})
		}
	}

	j.logger.Info("Joined tokens against emotion lexicon",
		slog.Int("tokens_in", len(tokens)),
		slog.Int("tokens_matched", matched),
		slog.Int("rows_out", len(joined)))

	return joined
}
