// Package query expands a request and profile into a small ranked set
// of search query strings. The expansion order is deterministic and part
// of the contract: downstream tests pin exact output.
package query

import (
	"strings"

	"github.com/project-tktt/go-jobsearch/internal/domain"
)

const (
	maxQueries    = 5
	maxSkills     = 3
	maxLevelBases = 3
)

var backendQueries = []string{
	"backend developer",
	"backend engineer",
	"server side developer",
}

var frontendQueries = []string{
	"frontend developer",
	"frontend engineer",
	"web developer",
}

// Optimize generates up to five unique search queries from the raw
// request text and the user profile.
func Optimize(request string, profile domain.UserProfile) []string {
	lower := strings.ToLower(request)

	var queries []string

	if strings.Contains(lower, "backend") {
		queries = append(queries, backendQueries...)
	}
	if strings.Contains(lower, "frontend") {
		queries = append(queries, frontendQueries...)
	}

	skills := profile.Skills
	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}
	for _, skill := range skills {
		queries = append(queries, skill+" developer")
		switch {
		case profile.ExperienceYears <= 1:
			queries = append(queries, skill+" junior", skill+" intern")
		case profile.ExperienceYears <= 3:
			queries = append(queries, skill+" junior developer")
		default:
			queries = append(queries, "senior "+skill)
		}
	}

	if profile.ExperienceYears <= 1 {
		bases := queries
		if len(bases) > maxLevelBases {
			bases = bases[:maxLevelBases]
		}
		for _, base := range bases {
			queries = append(queries, base+" junior")
		}
		for _, base := range bases {
			queries = append(queries, base+" fresher")
		}
	}

	return dedupe(queries, maxQueries)
}

// dedupe removes duplicates preserving first-seen order and truncates
// to limit.
func dedupe(queries []string, limit int) []string {
	seen := make(map[string]bool, len(queries))
	unique := make([]string, 0, limit)
	for _, q := range queries {
		if seen[q] {
			continue
		}
		seen[q] = true
		unique = append(unique, q)
		if len(unique) == limit {
			break
		}
	}
	return unique
}
