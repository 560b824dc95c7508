package dataprocessing

import (
	"log/slog"
	"strings"
	"time"

	"complaintcli/internal/config"
	"complaintcli/pkg/contracts/domain"
)

// Normalizer cleans raw export rows into ComplaintRecords: dates parsed,
// missing text canonicalized, and multi-valued tag cells exploded into one
// row per value.
type Normalizer struct {
	logger       *slog.Logger
	dateLayout   string
	tagSeparator string
}

// NewNormalizer creates a normalizer with the given pipeline configuration.
func NewNormalizer(logger *slog.Logger, cfg config.PipelineConfig) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DateLayout == "" {
		cfg.DateLayout = "1/2/2006"
	}
	if cfg.TagSeparator == "" {
		cfg.TagSeparator = ", "
	}
	return &Normalizer{
		logger:       logger,
		dateLayout:   cfg.DateLayout,
		tagSeparator: cfg.TagSeparator,
	}
}

// NormalizeAll cleans every raw row. No row is dropped here for missing
// values; exclusion happens later, per aggregate.
func (n *Normalizer) NormalizeAll(raw []RawRecord) []domain.ComplaintRecord {
	records := make([]domain.ComplaintRecord, 0, len(raw))
	badDates := 0

	for _, rr := range raw {
		recs, dateMisses := n.normalize(rr)
		badDates += dateMisses
		records = append(records, recs...)
	}

	n.logger.Info("Normalized complaint records",
		slog.Int("source_rows", len(raw)),
		slog.Int("normalized_rows", len(records)),
		slog.Int("unparseable_dates", badDates))

	return records
}

// normalize cleans one raw row and explodes its tag values. The returned
// records all share the source row's identifier and dispute flag.
func (n *Normalizer) normalize(raw RawRecord) ([]domain.ComplaintRecord, int) {
	dateMisses := 0

	parseDate := func(field string) domain.Date {
		value := strings.TrimSpace(raw.Get(field))
		if value == "" || value == "N/A" {
			return domain.Date{}
		}
		t, err := time.Parse(n.dateLayout, value)
		if err != nil {
			dateMisses++
			n.logger.Debug("Unparseable date cell",
				slog.Int("row", raw.Row),
				slog.String("field", field),
				slog.String("value", value))
			return domain.Date{}
		}
		return domain.NewDate(t)
	}

	base := domain.ComplaintRecord{
		ComplaintID:       strings.TrimSpace(raw.Get(FieldComplaintID)),
		DateReceived:      parseDate(FieldDateReceived),
		DateSentToCompany: parseDate(FieldDateSentToCompany),
		Product:           canonicalizeText(raw.Get(FieldProduct)),
		SubProduct:        canonicalizeText(raw.Get(FieldSubProduct)),
		Issue:             canonicalizeText(raw.Get(FieldIssue)),
		SubIssue:          canonicalizeText(raw.Get(FieldSubIssue)),
		Narrative:         canonicalizeNarrative(raw.Get(FieldNarrative)),
		Company:           canonicalizeText(raw.Get(FieldCompany)),
		State:             canonicalizeText(raw.Get(FieldState)),
		SubmittedVia:      canonicalizeText(raw.Get(FieldSubmittedVia)),
		CompanyResponse:   canonicalizeText(raw.Get(FieldCompanyResponse)),
		Disputed:          domain.ParseDisputeFlag(strings.TrimSpace(raw.Get(FieldDisputed))),
	}

	tags := splitTags(raw.Get(FieldTags), n.tagSeparator)
	records := make([]domain.ComplaintRecord, 0, len(tags))
	for _, tag := range tags {
		rec := base
		rec.Tag = tag
		records = append(records, rec)
	}

	return records, dateMisses
}

// canonicalizeText converts empty and "N/A" cells to the missing sentinel.
func canonicalizeText(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == "N/A" {
		return domain.MissingValue
	}
	return trimmed
}

// canonicalizeNarrative keeps interior whitespace but applies the same
// missing-value policy as other text fields.
func canonicalizeNarrative(value string) string {
	if strings.TrimSpace(value) == "" || strings.TrimSpace(value) == "N/A" {
		return domain.MissingValue
	}
	return value
}

// splitTags splits a multi-valued tag cell. A cell with zero values yields a
// single missing tag so the record still passes through once.
func splitTags(value, separator string) []string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == "N/A" {
		return []string{domain.MissingValue}
	}

	parts := strings.Split(trimmed, separator)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags = append(tags, p)
	}
	if len(tags) == 0 {
		return []string{domain.MissingValue}
	}
	return tags
}
