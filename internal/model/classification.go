package model

// ClassifyRequest is the body of POST /classify
type ClassifyRequest struct {
	Text    string           `json:"text"`
	HTML    bool             `json:"html"` // strip HTML tags before classification
	Options *OptionsOverride `json:"options,omitempty"`
}

// ClassifyBatchRequest is the body of POST /classify/batch
type ClassifyBatchRequest struct {
	Texts   []string         `json:"texts"`
	HTML    bool             `json:"html"`
	Options *OptionsOverride `json:"options,omitempty"`
}

// Classification is the verdict returned by the API
type Classification struct {
	English      bool         `json:"english"`
	NonEnglish   bool         `json:"non_english"`
	Ratio        float64      `json:"ratio"`         // share of English words
	Threshold    float64      `json:"threshold"`     // effective threshold, after short text adjustment
	Words        int          `json:"words"`         // words taken into account
	EnglishWords int          `json:"english_words"` // words classified as English
	Normalized   string       `json:"normalized"`    // text after normalization
	Statistical  *Statistical `json:"statistical,omitempty"`
}

// Statistical detector guess that was used as a tie-breaker
type Statistical struct {
	Language   string  `json:"language"` // ISO 639-3 code, e.g. "eng"
	Confidence float64 `json:"confidence"`
}

// DocumentPatternResponse is the response of GET /document-pattern
type DocumentPatternResponse struct {
	Matches bool `json:"matches"`
}
