package merger_test

import (
	"testing"

	"github.com/project-tktt/go-jobsearch/internal/domain"
	"github.com/project-tktt/go-jobsearch/internal/merger"
)

func TestMerge_DuplicateURLKeepsFirst(t *testing.T) {
	google := []domain.JobRecord{
		{Title: "Java Developer", URL: "https://topcv.vn/job/1", Source: "topcv"},
	}
	scraped := []domain.JobRecord{
		{Title: "Java Developer (HN)", URL: "https://topcv.vn/job/1", Source: "topcv"},
	}

	got := merger.Merge(google, scraped)
	if len(got) != 1 {
		t.Fatalf("merged length = %d, want 1", len(got))
	}
	if got[0].Title != "Java Developer" {
		t.Errorf("kept %q, want first-seen entry", got[0].Title)
	}
}

func TestMerge_TitleCompanyCollisionAcrossURLs(t *testing.T) {
	a := []domain.JobRecord{
		{Title: "Backend Engineer", Company: "FPT Software", URL: "https://topcv.vn/job/2"},
	}
	b := []domain.JobRecord{
		{Title: "  backend engineer ", Company: "FPT SOFTWARE", URL: "https://topdev.vn/job/99"},
	}

	got := merger.Merge(a, b)
	if len(got) != 1 {
		t.Fatalf("merged length = %d, want 1", len(got))
	}
	if got[0].URL != "https://topcv.vn/job/2" {
		t.Errorf("kept %q, want first-seen entry", got[0].URL)
	}
}

func TestMerge_EmptyKeysNeverCollide(t *testing.T) {
	a := []domain.JobRecord{{Snippet: "first"}}
	b := []domain.JobRecord{{Snippet: "second"}}

	got := merger.Merge(a, b)
	if len(got) != 2 {
		t.Fatalf("merged length = %d, want 2: keyless records are never duplicates", len(got))
	}
}

func TestMerge_PreservesConcatenationOrder(t *testing.T) {
	a := []domain.JobRecord{
		{Title: "A", Company: "X", URL: "u1"},
		{Title: "B", Company: "X", URL: "u2"},
	}
	b := []domain.JobRecord{
		{Title: "C", Company: "Y", URL: "u3"},
	}

	got := merger.Merge(a, b)
	want := []string{"u1", "u2", "u3"}
	if len(got) != len(want) {
		t.Fatalf("merged length = %d, want %d", len(got), len(want))
	}
	for i, url := range want {
		if got[i].URL != url {
			t.Errorf("position %d = %q, want %q", i, got[i].URL, url)
		}
	}
}

func TestMerge_NoDuplicateKeysInOutput(t *testing.T) {
	lists := [][]domain.JobRecord{
		{
			{Title: "A", Company: "X", URL: "u1"},
			{Title: "A", Company: "X", URL: ""},
			{Title: "B", Company: "", URL: "u1"},
		},
		{
			{Title: "C", Company: "Z", URL: "u2"},
			{Title: "c", Company: "z", URL: "u3"},
		},
	}

	got := merger.Merge(lists...)

	urls := map[string]bool{}
	keys := map[string]bool{}
	for _, job := range got {
		if job.URL != "" {
			if urls[job.URL] {
				t.Errorf("url %q appears twice", job.URL)
			}
			urls[job.URL] = true
		}
		if key := job.TitleCompanyKey(); key != "" {
			if keys[key] {
				t.Errorf("title+company key %q appears twice", key)
			}
			keys[key] = true
		}
	}
}
