package extract

import "context"

// Service is anything that can extract parameters from a description.
// The pipeline runner consumes this interface so tests can substitute a
// canned extractor for the live API client.
type Service interface {
	Extract(ctx context.Context, description string) (*Result, error)
}
