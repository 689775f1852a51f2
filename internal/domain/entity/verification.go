package entity

// VerificationStep names a stage of the publish-and-verify sequence.
type VerificationStep string

const (
	StepIndex   VerificationStep = "index"
	StepFetch   VerificationStep = "fetch"
	StepRefresh VerificationStep = "refresh"
	StepSearch  VerificationStep = "search"
	StepArchive VerificationStep = "archive"
)

// SearchHit is one document returned by a match-all search.
type SearchHit struct {
	ID     string                 `json:"_id"`
	Source map[string]interface{} `json:"_source"`
}

// VerificationResult records what each stage of the sequence observed.
type VerificationResult struct {
	IndexResult   string                 `json:"index_result"`
	Fetched       map[string]interface{} `json:"fetched,omitempty"`
	TotalHits     int                    `json:"total_hits"`
	Hits          []SearchHit            `json:"hits,omitempty"`
	CompletedStep VerificationStep       `json:"completed_step,omitempty"`
}
