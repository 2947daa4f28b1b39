// Package requirements turns a free-text job search request into
// structured search requirements. Detection is deterministic substring
// matching against fixed bilingual term tables; no semantics involved.
package requirements

import (
	"strings"

	"github.com/project-tktt/go-jobsearch/internal/domain"
	"github.com/project-tktt/go-jobsearch/internal/strutil"
)

// gazetteerEntry maps a colloquial location spelling to its canonical
// display form. Iteration order is match-discovery order, so this is a
// slice, not a map.
type gazetteerEntry struct {
	spelling  string
	canonical string
}

var locationGazetteer = []gazetteerEntry{
	{"hồ chí minh", "TP.HCM"},
	{"ho chi minh", "TP.HCM"},
	{"saigon", "TP.HCM"},
	{"hà nội", "Hà Nội"},
	{"hanoi", "Hà Nội"},
	{"đà nẵng", "Đà Nẵng"},
	{"da nang", "Đà Nẵng"},
}

// Experience buckets in priority order: the first bucket with any hit
// wins and records exactly one keyword.
var experienceBuckets = []struct {
	keyword string
	terms   []string
}{
	{"intern", []string{"intern", "thực tập", "fresher"}},
	{"junior", []string{"junior", "mới ra trường"}},
	{"senior", []string{"senior", "kinh nghiệm"}},
}

var partTimeTerms = []string{"part-time", "bán thời gian"}

var internshipTerms = []string{"internship", "thực tập"}

// techSkills is the fixed skill vocabulary, scanned in order.
var techSkills = []string{
	"java", "python", "javascript", "react", "vue", "angular",
	"node.js", "spring", "spring boot", "mysql", "postgresql",
}

// Extract parses a raw user request into SearchRequirements. Pure
// function; empty or whitespace-only input yields the default structure.
func Extract(input string) domain.SearchRequirements {
	req := domain.SearchRequirements{
		QueryTerms:         []string{},
		Skills:             []string{},
		ExperienceKeywords: []string{},
		LocationHints:      []string{},
		JobType:            domain.JobTypeFullTime,
	}

	lower := strings.ToLower(input)
	if strings.TrimSpace(lower) == "" {
		return req
	}

	for _, entry := range locationGazetteer {
		if strings.Contains(lower, entry.spelling) {
			req.LocationHints = append(req.LocationHints, entry.canonical)
		}
	}

	for _, bucket := range experienceBuckets {
		if strutil.ContainsAny(lower, bucket.terms) {
			req.ExperienceKeywords = append(req.ExperienceKeywords, bucket.keyword)
			break
		}
	}

	// Part-time terms are checked before internship terms so that a
	// request naming both resolves to part-time.
	if strutil.ContainsAny(lower, partTimeTerms) {
		req.JobType = domain.JobTypePartTime
	} else if strutil.ContainsAny(lower, internshipTerms) {
		req.JobType = domain.JobTypeInternship
	}

	for _, skill := range techSkills {
		if strings.Contains(lower, skill) {
			req.Skills = append(req.Skills, skill)
		}
	}

	return req
}
