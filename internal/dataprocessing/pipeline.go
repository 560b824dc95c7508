package dataprocessing

import (
	"context"
	"log/slog"

	"complaintcli/internal/config"
	"complaintcli/internal/lexicon"
	"complaintcli/pkg/contracts/domain"
)

// Result holds every table one pipeline run produces. The GroupAggregates
// table is the terminal contract artifact; the rest feed the reporting
// collaborator's secondary renderings.
type Result struct {
	Records         []domain.ComplaintRecord
	Scores          []domain.EmotionScore
	GroupAggregates []domain.GroupAggregate
	WordFrequencies []domain.WordFrequency
	MonthlyVolumes  []domain.MonthlyVolume
	Summary         domain.RunSummary
}

// Pipeline wires the stages together: normalize, tokenize, join, aggregate.
// Each stage hands a fresh table to the next; nothing is shared across runs.
type Pipeline struct {
	logger     *slog.Logger
	cfg        config.PipelineConfig
	normalizer *Normalizer
	tokenizer  *Tokenizer
	joiner     *Joiner
	aggregator *Aggregator
}

// NewPipeline creates a pipeline over the given lexicon tables.
func NewPipeline(logger *slog.Logger, cfg config.PipelineConfig, tables *lexicon.Tables) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		logger:     logger,
		cfg:        cfg,
		normalizer: NewNormalizer(logger, cfg),
		tokenizer:  NewTokenizer(logger),
		joiner:     NewJoiner(logger, tables),
		aggregator: NewAggregator(logger),
	}
}

// Run executes one batch transformation over the raw export rows.
func (p *Pipeline) Run(ctx context.Context, raw []RawRecord) *Result {
	p.logger.InfoContext(ctx, "Pipeline run starting",
		slog.Int("source_rows", len(raw)))

	records := p.normalizer.NormalizeAll(raw)

	tokens := p.tokenizer.TokenizeAll(records)
	tokens = p.joiner.RemoveStopWords(tokens)

	negative := p.joiner.FilterNegative(tokens)
	emotionRows := p.joiner.JoinEmotions(tokens)

	scores := p.aggregator.ScoreRecords(emotionRows)

	result := &Result{
		Records:         records,
		Scores:          scores,
		GroupAggregates: p.aggregator.AggregateGroups(scores),
		WordFrequencies: p.aggregator.WordFrequencies(negative, p.cfg.TopWords),
		MonthlyVolumes:  p.aggregator.MonthlyVolumes(records),
		Summary:         p.aggregator.Summarize(len(raw), records, scores),
	}

	p.logger.InfoContext(ctx, "Pipeline run complete",
		slog.Int("normalized_rows", len(result.Records)),
		slog.Int("score_rows", len(result.Scores)),
		slog.Int("aggregate_rows", len(result.GroupAggregates)),
		slog.Int("word_frequencies", len(result.WordFrequencies)),
		slog.Int("months", len(result.MonthlyVolumes)))

	return result
}
