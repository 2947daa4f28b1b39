// Package fetcher defines the common contract for job retrieval
// strategies. Each fetcher normalizes one external source to JobRecord
// lists; fetchers share no state and may run concurrently.
package fetcher

import (
	"context"

	"github.com/project-tktt/go-jobsearch/internal/domain"
)

// Fetcher retrieves job listings for a query from one external source.
type Fetcher interface {
	// Fetch returns jobs matching the query. A failing source returns
	// an empty list, not an error: errors are reserved for programming
	// mistakes, transport problems degrade to nothing found.
	Fetch(ctx context.Context, query, location string) ([]domain.JobRecord, error)

	// Name returns the source identifier used in search summaries.
	Name() string
}
