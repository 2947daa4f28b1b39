package domain

import "strings"

// UserProfile describes the candidate a search runs on behalf of.
// Immutable per request.
type UserProfile struct {
	Skills          []string `json:"skills"`
	Location        string   `json:"location"`
	ExperienceYears int      `json:"experience_years"`
	// ExpectedSalary is in VND.
	ExpectedSalary int `json:"expected_salary"`
}

// NewUserProfile builds a validated profile: skills are trimmed and
// deduplicated case-insensitively (first spelling wins), negative
// numbers clamp to zero.
func NewUserProfile(skills []string, location string, experienceYears, expectedSalary int) UserProfile {
	seen := make(map[string]bool, len(skills))
	cleaned := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, s)
	}
	if experienceYears < 0 {
		experienceYears = 0
	}
	if expectedSalary < 0 {
		expectedSalary = 0
	}
	return UserProfile{
		Skills:          cleaned,
		Location:        strings.TrimSpace(location),
		ExperienceYears: experienceYears,
		ExpectedSalary:  expectedSalary,
	}
}

// JobType is the employment arrangement a request asks for.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeInternship JobType = "internship"
)

// SearchRequirements is the structured form of a free-text request.
// Derived once per request, then discarded.
type SearchRequirements struct {
	QueryTerms         []string `json:"query_terms"`
	Skills             []string `json:"skills"`
	ExperienceKeywords []string `json:"experience_keywords"`
	LocationHints      []string `json:"location_hints"`
	JobType            JobType  `json:"job_type"`
}

// SearchSummary is returned to the caller alongside the report for telemetry.
type SearchSummary struct {
	TotalFound  int      `json:"total_found"`
	SourcesUsed []string `json:"sources_used"`
	QueriesUsed []string `json:"queries_used"`
	Location    string   `json:"location"`
}
