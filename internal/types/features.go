package types

// FeatureSet holds the linguistic and domain-derived features computed for a
// single posting. Ratio-type fields are always clamped to [0,1]; counts are
// non-negative. The red-flag and combination fields are filled in by the
// scorer after the matcher has run, since they depend on its findings.
type FeatureSet struct {
	// Basic text features
	TextLength     int     `json:"text_length"`
	WordCount      int     `json:"word_count"`
	SentenceCount  int     `json:"sentence_count"`
	UppercaseRatio float64 `json:"uppercase_ratio"`
	DigitRatio     float64 `json:"digit_ratio"`

	// Sentiment
	SentimentPolarity     float64 `json:"sentiment_polarity"`     // [-1,1]
	SentimentSubjectivity float64 `json:"sentiment_subjectivity"` // [0,1]

	// Readability and vocabulary
	ReadabilityScore      float64 `json:"readability_score"`       // [0,1]
	LexicalDiversity      float64 `json:"lexical_diversity"`       // [0,1]
	SentenceComplexity    float64 `json:"sentence_complexity"`     // coefficient of variation
	ProfessionalTermRatio float64 `json:"professional_term_ratio"` // [0,1]

	// Domain sub-features
	DomainExists          bool    `json:"domain_exists"`
	DomainLength          int     `json:"domain_length"`
	SuspiciousDomainScore float64 `json:"has_suspicious_domain"` // {0, 0.5, 0.6, 0.7, 0.8, 1.0}

	// Quick structural red-flag scan (vague_description, unrealistic_salary,
	// spam_phrase, suspicious_email, missing_requirements)
	QuickFlags []string `json:"quick_flags,omitempty"`

	// Derived blends
	TextQualityScore float64 `json:"text_quality_score"` // [0,1]

	// Filled by the scorer after red-flag matching
	RedFlagCount   int      `json:"red_flag_count"`
	RedFlagScore   int      `json:"red_flag_score"`
	ComboScore     float64  `json:"red_flag_combo_score"`
	ComboFlags     []string `json:"red_flag_combinations,omitempty"`
	SuspicionScore float64  `json:"suspicion_score"` // [0,1]
}
