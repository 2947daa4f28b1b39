// Package scraper fetches job listings directly from Vietnamese job
// boards. Each site is described by a selector table (sites.go) and
// scraped through a shared colly collector; a failing site or page is
// skipped, never aborting the remaining combinations.
package scraper

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"github.com/project-tktt/go-jobsearch/internal/domain"
)

const negotiableSalary = "Thỏa thuận"

// Config holds scraping settings.
type Config struct {
	UserAgent string
	Timeout   time.Duration
	MaxPages  int
	// Inter-request spacing, randomized in [MinDelay, MaxDelay].
	MinDelay time.Duration
	MaxDelay time.Duration
}

// Scraper is the direct-site fetcher.
type Scraper struct {
	collector *colly.Collector
	config    Config
	sites     []site
	logger    *zap.Logger
}

// New creates a scraper over the fixed target-site set.
func New(cfg Config, logger *zap.Logger) *Scraper {
	if cfg.UserAgent == "" {
		cfg.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 1
	}
	if cfg.MinDelay <= 0 {
		cfg.MinDelay = 1 * time.Second
	}
	if cfg.MaxDelay <= cfg.MinDelay {
		cfg.MaxDelay = cfg.MinDelay + 1*time.Second
	}

	c := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(cfg.Timeout)

	return &Scraper{
		collector: c,
		config:    cfg,
		sites:     targetSites,
		logger:    logger,
	}
}

// Name returns the source identifier used in search summaries.
func (s *Scraper) Name() string {
	return "web_scraping"
}

// Fetch scrapes every configured site for up to MaxPages pages each,
// with a randomized delay between site/page combinations. The combined
// result is deduplicated by URL before return.
func (s *Scraper) Fetch(ctx context.Context, query, location string) ([]domain.JobRecord, error) {
	var all []domain.JobRecord

	for _, target := range s.sites {
		for page := 1; page <= s.config.MaxPages; page++ {
			select {
			case <-ctx.Done():
				return dedupeByURL(all), nil
			default:
			}

			jobs, err := s.scrapePage(target, query, location, page)
			if err != nil {
				s.logger.Warn("scrape failed, skipping",
					zap.String("source", string(target.source)),
					zap.Int("page", page),
					zap.Error(err),
				)
			} else {
				all = append(all, jobs...)
			}

			if err := s.wait(ctx); err != nil {
				return dedupeByURL(all), nil
			}
		}
	}

	return dedupeByURL(all), nil
}

// scrapePage fetches one listing page of one site and extracts job
// cards using the site's selector cascade.
func (s *Scraper) scrapePage(target site, query, location string, page int) ([]domain.JobRecord, error) {
	var jobs []domain.JobRecord
	var scrapeErr error

	collector := s.collector.Clone()

	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
		r.Headers.Set("Accept-Language", "vi-VN,vi;q=0.9,en;q=0.8")
		r.Headers.Set("Cache-Control", "no-cache")
	})

	collector.OnHTML("body", func(el *colly.HTMLElement) {
		cards := findFirst(el.DOM, target.cardSelectors)
		if cards == nil {
			return
		}

		cards.Each(func(_ int, card *goquery.Selection) {
			titleEl := findFirstOne(card, target.titleSelectors)
			if titleEl == nil {
				return
			}

			title := strings.TrimSpace(titleEl.Text())
			if title == "" {
				return
			}

			jobURL, _ := titleEl.Attr("href")
			if jobURL != "" && strings.HasPrefix(jobURL, "/") {
				jobURL = target.baseURL + jobURL
			}

			jobLocation := selectText(card, target.locationSelector)
			if jobLocation == "" {
				jobLocation = location
			}
			salary := selectText(card, target.salarySelector)
			if salary == "" {
				salary = negotiableSalary
			}

			jobs = append(jobs, domain.JobRecord{
				Title:    title,
				Company:  selectText(card, target.companySelector),
				Location: jobLocation,
				Salary:   salary,
				URL:      jobURL,
				Source:   string(target.source),
			})
		})
	})

	collector.OnError(func(r *colly.Response, err error) {
		scrapeErr = fmt.Errorf("status %d: %w", r.StatusCode, err)
	})

	if err := collector.Visit(target.searchURL(query, location, page)); err != nil {
		return nil, fmt.Errorf("visit: %w", err)
	}
	if scrapeErr != nil {
		return nil, scrapeErr
	}

	s.logger.Debug("scraped page",
		zap.String("source", string(target.source)),
		zap.Int("page", page),
		zap.Int("jobs", len(jobs)),
	)
	return jobs, nil
}

// wait sleeps for a randomized delay, respecting context cancellation.
func (s *Scraper) wait(ctx context.Context) error {
	spread := s.config.MaxDelay - s.config.MinDelay
	delay := s.config.MinDelay + time.Duration(rand.Int63n(int64(spread)))

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// findFirst tries each selector in order and returns the first
// selection with any matches.
func findFirst(root *goquery.Selection, selectors []string) *goquery.Selection {
	for _, sel := range selectors {
		if found := root.Find(sel); found.Length() > 0 {
			return found
		}
	}
	return nil
}

// findFirstOne tries each selector in order and returns the first
// matching element.
func findFirstOne(root *goquery.Selection, selectors []string) *goquery.Selection {
	for _, sel := range selectors {
		if found := root.Find(sel).First(); found.Length() > 0 {
			return found
		}
	}
	return nil
}

func selectText(root *goquery.Selection, selector string) string {
	return strings.TrimSpace(root.Find(selector).First().Text())
}

func dedupeByURL(jobs []domain.JobRecord) []domain.JobRecord {
	seen := make(map[string]bool, len(jobs))
	unique := make([]domain.JobRecord, 0, len(jobs))
	for _, job := range jobs {
		if seen[job.URL] {
			continue
		}
		seen[job.URL] = true
		unique = append(unique, job)
	}
	return unique
}
