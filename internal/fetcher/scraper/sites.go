package scraper

import (
	"fmt"
	"net/url"

	"github.com/project-tktt/go-jobsearch/internal/domain"
)

// site describes one target job board: how to build its search URL and
// which selectors to try when pulling listings out of the result page.
// Card and title selectors are cascades: candidates are tried in order
// and the first one that yields any matches wins, which keeps the
// scraper working across site redesigns that leave older markup behind.
type site struct {
	source  domain.JobSource
	baseURL string
	// searchURL builds the listing URL for a query, optional location
	// and 1-based page number.
	searchURL func(query, location string, page int) string

	cardSelectors  []string
	titleSelectors []string

	companySelector  string
	locationSelector string
	salarySelector   string
}

var targetSites = []site{
	{
		source:  domain.SourceTopCV,
		baseURL: "https://www.topcv.vn",
		searchURL: func(query, location string, page int) string {
			u := "https://www.topcv.vn/viec-lam?q=" + url.QueryEscape(query)
			if location != "" {
				u += "&l=" + url.QueryEscape(location)
			}
			return fmt.Sprintf("%s&page=%d", u, page)
		},
		cardSelectors: []string{
			"[data-cy='job-card']",
			".job-item",
			".job-list-search-result .job-item",
			".search-result .job-item",
		},
		titleSelectors: []string{
			"a[href*='/viec-lam/']",
			".title a",
			"h3 a",
			".job-title a",
		},
		companySelector:  ".company, .job-company, [data-cy='company-name'], .company-name",
		locationSelector: ".address, .location, [data-cy='job-location'], .job-location",
		salarySelector:   ".salary, [data-cy='job-salary'], .job-salary",
	},
	{
		source:  domain.SourceVietnamWorks,
		baseURL: "https://www.vietnamworks.com",
		searchURL: func(query, location string, page int) string {
			u := "https://www.vietnamworks.com/viec-lam?q=" + url.QueryEscape(query)
			if location != "" {
				u += "&l=" + url.QueryEscape(location)
			}
			return fmt.Sprintf("%s&page=%d", u, page)
		},
		cardSelectors: []string{
			"[data-testid='job-card']",
			".search-result-item",
			".job-item",
		},
		titleSelectors: []string{
			"a[href*='-jv']",
			"h2 a",
			".job-title a",
		},
		companySelector:  ".company-name, [data-testid='company-name'], .company",
		locationSelector: ".location, [data-testid='job-location'], .address",
		salarySelector:   ".salary, [data-testid='job-salary']",
	},
	{
		source:  domain.SourceTopDev,
		baseURL: "https://topdev.vn",
		searchURL: func(query, location string, page int) string {
			u := "https://topdev.vn/viec-lam-it?keyword=" + url.QueryEscape(query)
			if location != "" {
				u += "&city=" + url.QueryEscape(location)
			}
			return fmt.Sprintf("%s&page=%d", u, page)
		},
		cardSelectors: []string{
			"[data-testid='job-item']",
			".job-list .job-item",
			"li.job-item",
		},
		titleSelectors: []string{
			"a[href*='/job/']",
			"h3 a",
			".job-title a",
		},
		companySelector:  ".company-name, .job-company",
		locationSelector: ".job-location, .location",
		salarySelector:   ".job-salary, .salary",
	},
}
