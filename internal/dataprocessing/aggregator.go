package dataprocessing

import (
	"log/slog"
	"sort"

	"complaintcli/pkg/contracts/domain"
)

// Aggregator computes the two aggregation stages: per-complaint emotion
// proportions, then group means by dispute outcome. It also derives the
// secondary tables the reporting collaborator consumes.
type Aggregator struct {
	logger *slog.Logger
}

// NewAggregator creates an aggregator
func NewAggregator(logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{logger: logger}
}

// categoryRank gives emotion categories a stable output order.
var categoryRank = func() map[domain.EmotionCategory]int {
	m := make(map[domain.EmotionCategory]int, len(domain.EmotionCategories))
	for i, c := range domain.EmotionCategories {
		m[c] = i
	}
	return m
}()

// disputeRank orders dispute groups for output: Yes, No, Unknown.
func disputeRank(f domain.DisputeFlag) int {
	switch f {
	case domain.DisputeYes:
		return 0
	case domain.DisputeNo:
		return 1
	default:
		return 2
	}
}

// ScoreRecords groups emotion-tagged rows by complaint and computes each
// category's share of the complaint's matched total. A complaint whose only
// match is one category gets proportion 1.0 there and no rows elsewhere;
// absence means zero. A complaint with no matched tokens contributes nothing.
func (a *Aggregator) ScoreRecords(rows []domain.EmotionToken) []domain.EmotionScore {
	type key struct {
		id       string
		disputed domain.DisputeFlag
		category domain.EmotionCategory
	}

	counts := make(map[key]int)
	totals := make(map[string]int)

	for _, row := range rows {
		counts[key{row.ComplaintID, row.Disputed, row.Category}]++
		totals[row.ComplaintID]++
	}

	scores := make([]domain.EmotionScore, 0, len(counts))
	for k, count := range counts {
		scores = append(scores, domain.EmotionScore{
			ComplaintID: k.id,
			Disputed:    k.disputed,
			Category:    k.category,
			Count:       count,
			Proportion:  float64(count) / float64(totals[k.id]),
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].ComplaintID != scores[j].ComplaintID {
			return scores[i].ComplaintID < scores[j].ComplaintID
		}
		return categoryRank[scores[i].Category] < categoryRank[scores[j].Category]
	})

	a.logger.Info("Computed per-complaint emotion scores",
		slog.Int("complaints", len(totals)),
		slog.Int("score_rows", len(scores)))

	return scores
}

// AggregateGroups computes the terminal table: for every observed
// (dispute status, category) pair, the arithmetic means of per-complaint
// counts and proportions. Output cardinality is the product of observed
// dispute values and observed categories.
func (a *Aggregator) AggregateGroups(scores []domain.EmotionScore) []domain.GroupAggregate {
	type key struct {
		disputed domain.DisputeFlag
		category domain.EmotionCategory
	}
	type sums struct {
		complaints int
		count      int
		proportion float64
	}

	groups := make(map[key]*sums)
	for _, s := range scores {
		k := key{s.Disputed, s.Category}
		g, ok := groups[k]
		if !ok {
			g = &sums{}
			groups[k] = g
		}
		g.complaints++
		g.count += s.Count
		g.proportion += s.Proportion
	}

	aggregates := make([]domain.GroupAggregate, 0, len(groups))
	for k, g := range groups {
		aggregates = append(aggregates, domain.GroupAggregate{
			Disputed:       k.disputed,
			Category:       k.category,
			Complaints:     g.complaints,
			MeanCount:      float64(g.count) / float64(g.complaints),
			MeanProportion: g.proportion / float64(g.complaints),
		})
	}

	sort.Slice(aggregates, func(i, j int) bool {
		if aggregates[i].Disputed != aggregates[j].Disputed {
			return disputeRank(aggregates[i].Disputed) < disputeRank(aggregates[j].Disputed)
		}
		return categoryRank[aggregates[i].Category] < categoryRank[aggregates[j].Category]
	})

	a.logger.Info("Computed group aggregates",
		slog.Int("groups", len(aggregates)))

	return aggregates
}

// WordFrequencies counts negative-pass survivors per token, sorted by count
// descending then token ascending, truncated to topN (0 means unlimited).
func (a *Aggregator) WordFrequencies(tokens []domain.TokenRecord, topN int) []domain.WordFrequency {
	counts := make(map[string]int)
	for _, tok := range tokens {
		counts[tok.Token]++
	}

	freqs := make([]domain.WordFrequency, 0, len(counts))
	for token, count := range counts {
		freqs = append(freqs, domain.WordFrequency{Token: token, Count: count})
	}

	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Token < freqs[j].Token
	})

	if topN > 0 && len(freqs) > topN {
		freqs = freqs[:topN]
	}

	return freqs
}

// MonthlyVolumes counts distinct complaints per received month. Records with
// a missing received date are excluded here, and only here.
func (a *Aggregator) MonthlyVolumes(records []domain.ComplaintRecord) []domain.MonthlyVolume {
	seen := make(map[string]struct{}, len(records))
	byMonth := make(map[string]int)
	skipped := 0

	for _, rec := range records {
		if _, dup := seen[rec.ComplaintID]; dup {
			continue
		}
		seen[rec.ComplaintID] = struct{}{}

		if !rec.DateReceived.Valid {
			skipped++
			continue
		}
		byMonth[rec.DateReceived.Format("2006-01")]++
	}

	volumes := make([]domain.MonthlyVolume, 0, len(byMonth))
	for month, count := range byMonth {
		volumes = append(volumes, domain.MonthlyVolume{Month: month, Complaints: count})
	}

	sort.Slice(volumes, func(i, j int) bool {
		return volumes[i].Month < volumes[j].Month
	})

	a.logger.Info("Computed monthly complaint volumes",
		slog.Int("months", len(volumes)),
		slog.Int("missing_dates", skipped))

	return volumes
}

// Summarize tallies the run. Every source record counts here, including ones
// that contributed nothing to the emotion tables.
func (a *Aggregator) Summarize(sourceRows int, records []domain.ComplaintRecord, scores []domain.EmotionScore) domain.RunSummary {
	summary := domain.RunSummary{
		SourceRows:     sourceRows,
		NormalizedRows: len(records),
	}

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.ComplaintID]; dup {
			continue
		}
		seen[rec.ComplaintID] = struct{}{}

		summary.UniqueComplaints++
		if rec.HasNarrative() {
			summary.WithNarrative++
		}
		switch rec.Disputed {
		case domain.DisputeYes:
			summary.Disputed++
		case domain.DisputeNo:
			summary.NotDisputed++
		default:
			summary.UnknownDispute++
		}
	}

	matched := make(map[string]struct{})
	for _, s := range scores {
		matched[s.ComplaintID] = struct{}{}
	}
	summary.WithEmotionMatches = len(matched)

	return summary
}
