package sentiment

import "context"

// Result is the annotation produced by the external analysis service.
type Result struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

// Analyzer abstracts the external sentiment service. Implementations must be
// best-effort: callers treat any error as "no annotation available" and
// proceed without one.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*Result, error)
}
