package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/project-tktt/go-jobsearch/internal/domain"
	"github.com/project-tktt/go-jobsearch/internal/fetcher"
	"github.com/project-tktt/go-jobsearch/internal/pipeline"
)

// stubFetcher returns the same records for every query.
type stubFetcher struct {
	name string
	jobs []domain.JobRecord
	err  error
}

func (s *stubFetcher) Fetch(ctx context.Context, query, location string) ([]domain.JobRecord, error) {
	return s.jobs, s.err
}

func (s *stubFetcher) Name() string { return s.name }

func TestRun_NoResults(t *testing.T) {
	profile := domain.NewUserProfile([]string{"java"}, "Hà Nội", 1, 0)
	p := pipeline.New([]fetcher.Fetcher{
		&stubFetcher{name: "empty"},
	}, zap.NewNop())

	report, summary, err := p.Run(context.Background(), "tìm việc java", profile)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(report, "Không tìm thấy việc làm phù hợp") {
		t.Errorf("report = %q, want no-results message", report)
	}
	if summary.TotalFound != 0 {
		t.Errorf("TotalFound = %d, want 0", summary.TotalFound)
	}
	if len(summary.SourcesUsed) != 0 {
		t.Errorf("SourcesUsed = %v, want empty", summary.SourcesUsed)
	}
}

func TestRun_MergeFollowsRegistrationOrder(t *testing.T) {
	shared := "https://www.topcv.vn/viec-lam/java-dev/1"
	first := &stubFetcher{name: "google_search", jobs: []domain.JobRecord{
		{Title: "Java Developer", Company: "FPT", URL: shared, Source: "topcv"},
	}}
	second := &stubFetcher{name: "web_scraping", jobs: []domain.JobRecord{
		{Title: "Lập trình viên Java", Company: "FPT", URL: shared, Source: "topcv"},
		{Title: "Python Developer", Company: "VNG", URL: "https://topdev.vn/jobs/2", Source: "topdev"},
	}}

	profile := domain.NewUserProfile([]string{"java"}, "Hà Nội", 2, 0)
	p := pipeline.New([]fetcher.Fetcher{first, second}, zap.NewNop())

	report, summary, err := p.Run(context.Background(), "java developer", profile)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if summary.TotalFound != 2 {
		t.Fatalf("TotalFound = %d, want URL duplicate dropped", summary.TotalFound)
	}
	if !strings.Contains(report, "Java Developer") {
		t.Errorf("report should keep the first fetcher's record for a shared URL")
	}
	if strings.Contains(report, "Lập trình viên Java") {
		t.Errorf("report should not contain the later duplicate's title")
	}
	if len(summary.SourcesUsed) != 2 {
		t.Errorf("SourcesUsed = %v, want both fetchers", summary.SourcesUsed)
	}
}

func TestRun_LocationHintOverridesProfile(t *testing.T) {
	p := pipeline.New([]fetcher.Fetcher{&stubFetcher{name: "empty"}}, zap.NewNop())
	profile := domain.NewUserProfile([]string{"python"}, "Hà Nội", 1, 0)

	_, summary, err := p.Run(context.Background(), "tìm việc python ở đà nẵng", profile)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.Location != "Đà Nẵng" {
		t.Errorf("Location = %q, want request hint over profile location", summary.Location)
	}
}

func TestRun_QueriesRecordedInSummary(t *testing.T) {
	p := pipeline.New([]fetcher.Fetcher{&stubFetcher{name: "empty"}}, zap.NewNop())
	profile := domain.NewUserProfile([]string{"java"}, "", 0, 0)

	_, summary, err := p.Run(context.Background(), "backend", profile)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(summary.QueriesUsed) == 0 || len(summary.QueriesUsed) > 5 {
		t.Fatalf("QueriesUsed = %v, want between 1 and 5 queries", summary.QueriesUsed)
	}
	seen := make(map[string]bool)
	for _, q := range summary.QueriesUsed {
		if seen[q] {
			t.Errorf("duplicate query %q", q)
		}
		seen[q] = true
	}
}

func TestRun_FetcherErrorDoesNotAbort(t *testing.T) {
	broken := &stubFetcher{name: "broken", err: errors.New("boom")}
	healthy := &stubFetcher{name: "healthy", jobs: []domain.JobRecord{
		{Title: "Java Developer", Company: "FPT", URL: "https://itviec.com/jobs/1", Source: "itviec"},
	}}

	p := pipeline.New([]fetcher.Fetcher{broken, healthy}, zap.NewNop())
	profile := domain.NewUserProfile([]string{"java"}, "TP.HCM", 3, 0)

	_, summary, err := p.Run(context.Background(), "java", profile)
	if err != nil {
		t.Fatalf("Run() error = %v, want degraded run", err)
	}
	if summary.TotalFound != 1 {
		t.Errorf("TotalFound = %d, want the healthy fetcher's record", summary.TotalFound)
	}
	if len(summary.SourcesUsed) != 1 || summary.SourcesUsed[0] != "healthy" {
		t.Errorf("SourcesUsed = %v, want only the healthy fetcher", summary.SourcesUsed)
	}
}
