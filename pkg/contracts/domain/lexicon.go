package domain

// Polarity is the binary sentiment label of a lexicon word.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
)

// EmotionCategory is one of the categorical emotion labels a lexicon word
// can carry. A word may carry several.
type EmotionCategory string

const (
	EmotionAnger        EmotionCategory = "anger"
	EmotionAnticipation EmotionCategory = "anticipation"
	EmotionDisgust      EmotionCategory = "disgust"
	EmotionFear         EmotionCategory = "fear"
	EmotionJoy          EmotionCategory = "joy"
	EmotionSadness      EmotionCategory = "sadness"
	EmotionSurprise     EmotionCategory = "surprise"
	EmotionTrust        EmotionCategory = "trust"
)

// EmotionCategories lists every category in stable output order.
var EmotionCategories = []EmotionCategory{
	EmotionAnger,
	EmotionAnticipation,
	EmotionDisgust,
	EmotionFear,
	EmotionJoy,
	EmotionSadness,
	EmotionSurprise,
	EmotionTrust,
}

// LexiconEntry is one word of the static reference lexicon together with
// its labels. Entries are read-only for the lifetime of a pipeline run.
type LexiconEntry struct {
	Word       string            `json:"word"`
	Polarity   Polarity          `json:"polarity,omitempty"`
	Categories []EmotionCategory `json:"categories,omitempty"`
}
