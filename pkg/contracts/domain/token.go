package domain

// TokenRecord is one word token derived from a complaint narrative. It is a
// transient row: created by the tokenizer and consumed by the lexicon joins.
type TokenRecord struct {
	ComplaintID string      `json:"complaint_id"`
	Disputed    DisputeFlag `json:"disputed"`
	Token       string      `json:"token"`
}

// EmotionToken is a token annotated with one emotion category. A token whose
// lexicon entry carries several categories fans out into several
// EmotionTokens, one per category.
type EmotionToken struct {
	ComplaintID string          `json:"complaint_id"`
	Disputed    DisputeFlag     `json:"disputed"`
	Token       string          `json:"token"`
	Category    EmotionCategory `json:"category"`
}
