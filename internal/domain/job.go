package domain

import "strings"

// JobRecord represents a normalized job posting from any source.
// Records are never mutated after creation, only wrapped.
type JobRecord struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Salary   string `json:"salary"`
	URL      string `json:"url"`
	Source   string `json:"source"`
	Snippet  string `json:"snippet"`
}

// TitleCompanyKey returns the normalized title+company dedup key.
// Empty when both parts are empty, in which case the record must not
// be treated as a duplicate of anything.
func (j JobRecord) TitleCompanyKey() string {
	title := strings.ToLower(strings.TrimSpace(j.Title))
	company := strings.ToLower(strings.TrimSpace(j.Company))
	if title == "" && company == "" {
		return ""
	}
	return title + "|" + company
}

// ScoredJob wraps a JobRecord with its match score against a profile.
type ScoredJob struct {
	Job             JobRecord `json:"job"`
	Score           int       `json:"score"`
	Reasons         []string  `json:"reasons"`
	MatchPercentage float64   `json:"match_percentage"`
}

// JobSource identifies a job listing source.
type JobSource string

const (
	SourceTopCV         JobSource = "topcv"
	SourceVietnamWorks  JobSource = "vietnamworks"
	SourceTopDev        JobSource = "topdev"
	SourceITviec        JobSource = "itviec"
	SourceCareerBuilder JobSource = "careerbuilder"
	SourceUnknown       JobSource = "unknown"
)

// SourceFromURL infers the source site from a job URL.
// Unrecognized domains map to SourceUnknown.
func SourceFromURL(url string) JobSource {
	switch {
	case strings.Contains(url, "topcv.vn"):
		return SourceTopCV
	case strings.Contains(url, "vietnamworks.com"):
		return SourceVietnamWorks
	case strings.Contains(url, "topdev.vn"):
		return SourceTopDev
	case strings.Contains(url, "itviec.com"):
		return SourceITviec
	case strings.Contains(url, "careerbuilder.vn"):
		return SourceCareerBuilder
	default:
		return SourceUnknown
	}
}
