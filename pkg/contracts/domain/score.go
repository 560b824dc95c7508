package domain

// EmotionScore is the per-complaint emotion feature row: how many of the
// complaint's lexicon-matched tokens fell into one category, and what share
// of the matched total that is. Proportions for one ComplaintID sum to 1.0
// across the categories present for that record.
type EmotionScore struct {
	ComplaintID string          `json:"complaint_id" csv:"ComplaintID"`
	Disputed    DisputeFlag     `json:"disputed" csv:"Disputed"`
	Category    EmotionCategory `json:"category" csv:"Category"`
	Count       int             `json:"count" csv:"Count"`
	Proportion  float64         `json:"proportion" csv:"Proportion"`
}

// GroupAggregate is the terminal pipeline artifact: one row per
// (dispute status, emotion category) pair with the arithmetic means of
// per-complaint counts and proportions.
type GroupAggregate struct {
	Disputed       DisputeFlag     `json:"disputed" csv:"Disputed"`
	Category       EmotionCategory `json:"category" csv:"Category"`
	Complaints     int             `json:"complaints" csv:"Complaints"`
	MeanCount      float64         `json:"mean_count" csv:"MeanCount"`
	MeanProportion float64         `json:"mean_proportion" csv:"MeanProportion"`
}

// WordFrequency is one row of the negative-word frequency table that feeds
// the word-cloud rendering.
type WordFrequency struct {
	Token string `json:"token" csv:"Token"`
	Count int    `json:"count" csv:"Count"`
}

// MonthlyVolume is one row of the complaint time series: distinct complaints
// received in one calendar month. Records with a missing received date are
// excluded from this table only.
type MonthlyVolume struct {
	Month      string `json:"month" csv:"Month"` // YYYY-MM
	Complaints int    `json:"complaints" csv:"Complaints"`
}

// RunSummary tallies one pipeline run. Every source record counts here even
// when it contributes nothing to the emotion tables.
type RunSummary struct {
	SourceRows         int `json:"source_rows"`
	NormalizedRows     int `json:"normalized_rows"`
	UniqueComplaints   int `json:"unique_complaints"`
	WithNarrative      int `json:"with_narrative"`
	WithEmotionMatches int `json:"with_emotion_matches"`
	Disputed           int `json:"disputed"`
	NotDisputed        int `json:"not_disputed"`
	UnknownDispute     int `json:"unknown_dispute"`
}
