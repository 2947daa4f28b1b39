// Package googlecse fetches job postings through the Google Custom
// Search API, restricted to Vietnamese job sites. Search results are
// shallow (title, snippet, link), so company, salary and location are
// recovered heuristically from the snippet text.
package googlecse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/project-tktt/go-jobsearch/internal/cleaner"
	"github.com/project-tktt/go-jobsearch/internal/domain"
	"github.com/project-tktt/go-jobsearch/internal/strutil"
)

const (
	endpoint = "https://www.googleapis.com/customsearch/v1"
	// API hard limit per request.
	maxResultsPerCall = 10

	snippetLimit = 200
)

// jobSites are the domains the site-restricted query is built over.
var jobSites = []string{
	"site:topcv.vn",
	"site:vietnamworks.com",
	"site:topdev.vn",
	"site:itviec.com",
	"site:careerbuilder.vn",
}

// vietnameseTerms maps English job-role terms to their Vietnamese
// equivalents. Any English term found in the query adds its equivalent
// as an alternative clause. Ordered so query expansion is deterministic.
var vietnameseTerms = []struct {
	en string
	vi string
}{
	{"developer", "lập trình viên"},
	{"engineer", "kỹ sư phần mềm"},
	{"internship", "thực tập sinh"},
	{"manager", "trưởng nhóm"},
	{"backend", "backend"},
	{"frontend", "frontend"},
	{"fullstack", "full-stack"},
}

// Config holds Custom Search credentials and tuning.
type Config struct {
	APIKey         string
	SearchEngineID string
	Timeout        time.Duration
	MaxResults     int
}

// Fetcher queries the Custom Search API. Missing credentials or any
// transport failure degrade to an empty result.
type Fetcher struct {
	client   *http.Client
	cleaner  *cleaner.Cleaner
	config   Config
	logger   *zap.Logger
	endpoint string
}

// New creates a Google Custom Search fetcher.
func New(cfg Config, logger *zap.Logger) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxResults <= 0 || cfg.MaxResults > maxResultsPerCall {
		cfg.MaxResults = maxResultsPerCall
	}
	return &Fetcher{
		client:   &http.Client{Timeout: cfg.Timeout},
		cleaner:  cleaner.New(),
		config:   cfg,
		logger:   logger,
		endpoint: endpoint,
	}
}

// Name returns the source identifier used in search summaries.
func (f *Fetcher) Name() string {
	return "google_search"
}

// Fetch returns jobs for the query. Configuration and transport
// problems are logged and swallowed into an empty list: a failing
// search never aborts the pipeline.
func (f *Fetcher) Fetch(ctx context.Context, query, location string) ([]domain.JobRecord, error) {
	if f.config.APIKey == "" || f.config.SearchEngineID == "" {
		f.logger.Warn("google search credentials not set, skipping search fetcher")
		return nil, nil
	}

	jobs, err := f.search(ctx, query, location)
	if err != nil {
		f.logger.Warn("google search failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil, nil
	}
	return jobs, nil
}

func (f *Fetcher) search(ctx context.Context, query, location string) ([]domain.JobRecord, error) {
	params := url.Values{}
	params.Set("key", f.config.APIKey)
	params.Set("cx", f.config.SearchEngineID)
	params.Set("q", buildQuery(query, location))
	params.Set("num", strconv.Itoa(f.config.MaxResults))
	params.Set("lr", "lang_vi")
	params.Set("gl", "vn")
	params.Set("safe", "active")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	var searchResp struct {
		Items []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			Link    string `json:"link"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	jobs := make([]domain.JobRecord, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		title := f.cleaner.Text(item.Title)
		snippet := f.cleaner.Text(item.Snippet)

		jobLocation := location
		if jobLocation == "" {
			jobLocation = extractLocation(snippet)
		}

		jobs = append(jobs, domain.JobRecord{
			Title:    cleanTitle(title),
			Company:  extractCompany(title, snippet),
			Location: jobLocation,
			Salary:   extractSalary(snippet),
			URL:      item.Link,
			Source:   string(domain.SourceFromURL(item.Link)),
			Snippet:  strutil.Truncate(snippet, snippetLimit),
		})
	}

	f.logger.Debug("google search done",
		zap.String("query", query),
		zap.Int("results", len(jobs)),
	)
	return jobs, nil
}

// buildQuery assembles the site-restricted search query with optional
// location and Vietnamese alternative terms.
func buildQuery(query, location string) string {
	var b strings.Builder
	b.WriteString(query)
	if location != "" {
		b.WriteString(" ")
		b.WriteString(location)
	}
	b.WriteString(" (")
	b.WriteString(strings.Join(jobSites, " OR "))
	b.WriteString(")")

	lower := strings.ToLower(query)
	var alternatives []string
	for _, term := range vietnameseTerms {
		if strings.Contains(lower, term.en) {
			alternatives = append(alternatives, term.vi)
		}
	}
	if len(alternatives) > 0 {
		b.WriteString(" OR (")
		b.WriteString(strings.Join(alternatives, " "))
		b.WriteString(")")
	}
	return b.String()
}
