// Package merger combines job lists from multiple fetchers into one
// deduplicated list.
package merger

import (
	"github.com/project-tktt/go-jobsearch/internal/domain"
)

// Merge concatenates the given lists in order and removes duplicates,
// keeping the first occurrence. Two records are duplicates when they
// share a non-empty URL, or when they share a non-empty normalized
// title+company key (even across different URLs). Records with neither
// key are always kept.
func Merge(lists ...[]domain.JobRecord) []domain.JobRecord {
	seenURLs := make(map[string]bool)
	seenTitleCompany := make(map[string]bool)

	var merged []domain.JobRecord
	for _, list := range lists {
		for _, job := range list {
			if job.URL != "" && seenURLs[job.URL] {
				continue
			}
			key := job.TitleCompanyKey()
			if key != "" && seenTitleCompany[key] {
				continue
			}

			if job.URL != "" {
				seenURLs[job.URL] = true
			}
			if key != "" {
				seenTitleCompany[key] = true
			}
			merged = append(merged, job)
		}
	}
	return merged
}
