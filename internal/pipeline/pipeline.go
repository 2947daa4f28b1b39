// Package pipeline wires the whole job search together: requirement
// extraction and query optimization first, then multi-source retrieval,
// then merge, score and render. This is the surface the hosting layer
// calls; it never fails on a degraded source, only on caller misuse.
package pipeline

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/project-tktt/go-jobsearch/internal/domain"
	"github.com/project-tktt/go-jobsearch/internal/fetcher"
	"github.com/project-tktt/go-jobsearch/internal/merger"
	"github.com/project-tktt/go-jobsearch/internal/query"
	"github.com/project-tktt/go-jobsearch/internal/reporter"
	"github.com/project-tktt/go-jobsearch/internal/requirements"
	"github.com/project-tktt/go-jobsearch/internal/scorer"
)

// Pipeline runs a complete search per invocation. It holds no state
// across invocations beyond its fetchers, which are themselves
// stateless.
type Pipeline struct {
	fetchers []fetcher.Fetcher
	logger   *zap.Logger
}

// New creates a pipeline over the given fetchers. Fetcher registration
// order fixes the merge order of their results.
func New(fetchers []fetcher.Fetcher, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		fetchers: fetchers,
		logger:   logger,
	}
}

// Run executes a search for the free-text request on behalf of the
// profile and returns the rendered report plus the search summary for
// telemetry.
func (p *Pipeline) Run(ctx context.Context, request string, profile domain.UserProfile) (string, domain.SearchSummary, error) {
	reqs := requirements.Extract(request)
	queries := query.Optimize(request, profile)

	location := profile.Location
	if len(reqs.LocationHints) > 0 {
		location = reqs.LocationHints[0]
	}

	p.logger.Info("starting job search",
		zap.Strings("queries", queries),
		zap.String("location", location),
		zap.String("job_type", string(reqs.JobType)),
	)

	results := p.fetchAll(ctx, queries, location)

	// Merge in fetcher registration order, queries in optimizer order,
	// so dedup keeps the first occurrence deterministically.
	var lists [][]domain.JobRecord
	for fi := range p.fetchers {
		lists = append(lists, results[fi]...)
	}
	merged := merger.Merge(lists...)

	scored := scorer.Score(merged, profile)

	summary := domain.SearchSummary{
		TotalFound:  len(merged),
		SourcesUsed: p.sourcesUsed(results),
		QueriesUsed: queries,
		Location:    location,
	}

	p.logger.Info("job search done",
		zap.Int("total_found", summary.TotalFound),
		zap.Strings("sources_used", summary.SourcesUsed),
	)

	return reporter.Render(scored, summary), summary, nil
}

// fetchAll runs every fetcher for every query concurrently. Results are
// collected into fixed slots so concurrency does not disturb ordering.
func (p *Pipeline) fetchAll(ctx context.Context, queries []string, location string) [][][]domain.JobRecord {
	results := make([][][]domain.JobRecord, len(p.fetchers))
	for fi := range p.fetchers {
		results[fi] = make([][]domain.JobRecord, len(queries))
	}

	var wg sync.WaitGroup
	for fi, f := range p.fetchers {
		for qi, q := range queries {
			wg.Add(1)
			go func(fi, qi int, f fetcher.Fetcher, q string) {
				defer wg.Done()
				jobs, err := f.Fetch(ctx, q, location)
				if err != nil {
					// Fetchers degrade internally; an error here is a
					// programming mistake, worth surfacing loudly.
					p.logger.Error("fetcher failed",
						zap.String("fetcher", f.Name()),
						zap.String("query", q),
						zap.Error(err),
					)
					return
				}
				results[fi][qi] = jobs
			}(fi, qi, f, q)
		}
	}
	wg.Wait()

	return results
}

// sourcesUsed lists the fetchers that contributed at least one record.
func (p *Pipeline) sourcesUsed(results [][][]domain.JobRecord) []string {
	var used []string
	for fi, f := range p.fetchers {
		for _, jobs := range results[fi] {
			if len(jobs) > 0 {
				used = append(used, f.Name())
				break
			}
		}
	}
	return used
}
