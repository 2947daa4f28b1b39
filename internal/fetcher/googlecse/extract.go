package googlecse

import (
	"regexp"
	"strings"

	"github.com/project-tktt/go-jobsearch/internal/strutil"
)

// companyIndicators are phrases that commonly precede a company name
// in a result snippet, tried in order.
var companyIndicators = []string{"công ty", "company", "tại ", "làm việc tại"}

// salaryPatterns are tried in order against the lowercased snippet;
// the first match wins and the whole matched text is kept.
var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)-(\d+)\s*(triệu|tr|million)`), // 15-25 triệu
	regexp.MustCompile(`(\d+)\s*(triệu|tr|million)`),       // 20 triệu
	regexp.MustCompile(`(\d+,?\d*)\s*-\s*(\d+,?\d*)\s*vnd`),
	regexp.MustCompile(`lương:\s*([^.]+)`),
	regexp.MustCompile(`salary:\s*([^.]+)`),
}

var negotiableTerms = []string{"thỏa thuận", "negotiable", "cạnh tranh"}

var snippetLocations = []string{
	"tp.hcm", "hồ chí minh", "hà nội", "đà nẵng", "cần thơ", "hải phòng",
}

// siteSuffix strips the job-site name a search result appends to the
// title, e.g. "Java Developer - TopCV - Việc làm ...".
var siteSuffix = regexp.MustCompile(`(?i)\s*-\s*(TopCV|VietnamWorks|TopDev|ITviec|CareerBuilder).*`)

// extractCompany recovers the company name from a search result.
// Titles usually follow "Job Title - Company Name"; failing that, the
// snippet is scanned for indicator phrases and the text after the first
// hit is taken up to the next sentence or clause boundary.
func extractCompany(title, snippet string) string {
	parts := strings.Split(title, " - ")
	if len(parts) >= 2 {
		return strings.TrimSpace(parts[len(parts)-1])
	}

	lower := strings.ToLower(snippet)
	for _, indicator := range companyIndicators {
		idx := strings.Index(lower, indicator)
		if idx < 0 {
			continue
		}
		candidate := lower[idx+len(indicator):]
		if dot := strings.Index(candidate, "."); dot >= 0 {
			candidate = candidate[:dot]
		}
		if comma := strings.Index(candidate, ","); comma >= 0 {
			candidate = candidate[:comma]
		}
		candidate = strings.TrimSpace(candidate)
		if len([]rune(candidate)) < 50 {
			return strutil.Title(candidate)
		}
	}
	return "N/A"
}

// extractSalary pulls a salary phrase out of the snippet, falling back
// to the negotiable marker and then "N/A".
func extractSalary(snippet string) string {
	lower := strings.ToLower(snippet)
	for _, pattern := range salaryPatterns {
		if match := pattern.FindString(lower); match != "" {
			return strings.TrimSpace(match)
		}
	}
	if strutil.ContainsAny(lower, negotiableTerms) {
		return "Thỏa thuận"
	}
	return "N/A"
}

// extractLocation scans the snippet for known city names when the
// caller did not supply a location.
func extractLocation(snippet string) string {
	lower := strings.ToLower(snippet)
	for _, location := range snippetLocations {
		if strings.Contains(lower, location) {
			return strutil.Title(location)
		}
	}
	return "N/A"
}

func cleanTitle(title string) string {
	return strings.TrimSpace(siteSuffix.ReplaceAllString(title, ""))
}
