package googlecse

import (
	"strings"
	"testing"
)

func TestExtractCompany_TitleSplit(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Java Developer - FPT Software", "FPT Software"},
		{"Backend Engineer - Hà Nội - VNG", "VNG"},
	}
	for _, tc := range cases {
		if got := extractCompany(tc.title, ""); got != tc.want {
			t.Errorf("extractCompany(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestExtractCompany_SnippetIndicator(t *testing.T) {
	got := extractCompany("Java Developer", "Tuyển dụng tại công ty ABC Tech, lương hấp dẫn")
	if got != "Abc Tech" {
		t.Errorf("extractCompany = %q, want %q", got, "Abc Tech")
	}
}

func TestExtractCompany_IndicatorTooLong(t *testing.T) {
	long := "company " + strings.Repeat("a", 60) + " with no sentence break"
	if got := extractCompany("Java Developer", long); got != "N/A" {
		t.Errorf("extractCompany = %q, want N/A for over-long candidate", got)
	}
}

func TestExtractSalary(t *testing.T) {
	cases := []struct {
		snippet string
		want    string
	}{
		{"Mức lương 15-25 triệu, thưởng tháng 13", "15-25 triệu"},
		{"Lương 20 triệu mỗi tháng", "20 triệu"},
		{"Thu nhập 15,000 - 25,000 VND", "15,000 - 25,000 vnd"},
		{"lương: thỏa thuận theo năng lực", "lương: thỏa thuận theo năng lực"},
		{"salary: $1000-2000 negotiable", "salary: $1000-2000 negotiable"},
		{"Mức lương thỏa thuận khi phỏng vấn", "Thỏa thuận"},
		{"Lương cạnh tranh theo năng lực", "Thỏa thuận"},
		{"Không nói gì về tiền", "N/A"},
	}
	for _, tc := range cases {
		if got := extractSalary(tc.snippet); got != tc.want {
			t.Errorf("extractSalary(%q) = %q, want %q", tc.snippet, got, tc.want)
		}
	}
}

func TestExtractLocation(t *testing.T) {
	cases := []struct {
		snippet string
		want    string
	}{
		{"Làm việc tại TP.HCM, full-time", "Tp.Hcm"},
		{"Văn phòng Hà Nội", "Hà Nội"},
		{"Chi nhánh Cần Thơ", "Cần Thơ"},
		{"Fully remote", "N/A"},
	}
	for _, tc := range cases {
		if got := extractLocation(tc.snippet); got != tc.want {
			t.Errorf("extractLocation(%q) = %q, want %q", tc.snippet, got, tc.want)
		}
	}
}

func TestCleanTitle(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Java Developer - TopCV - Việc làm IT", "Java Developer"},
		{"Backend Engineer - VietnamWorks", "Backend Engineer"},
		{"Python Developer", "Python Developer"},
	}
	for _, tc := range cases {
		if got := cleanTitle(tc.title); got != tc.want {
			t.Errorf("cleanTitle(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestBuildQuery(t *testing.T) {
	got := buildQuery("backend developer", "Hà Nội")

	want := "backend developer Hà Nội (site:topcv.vn OR site:vietnamworks.com OR site:topdev.vn OR site:itviec.com OR site:careerbuilder.vn) OR (lập trình viên backend)"
	if got != want {
		t.Errorf("buildQuery = %q\nwant      %q", got, want)
	}
}

func TestBuildQuery_NoLocationNoExpansion(t *testing.T) {
	got := buildQuery("data analyst", "")
	want := "data analyst (site:topcv.vn OR site:vietnamworks.com OR site:topdev.vn OR site:itviec.com OR site:careerbuilder.vn)"
	if got != want {
		t.Errorf("buildQuery = %q\nwant      %q", got, want)
	}
}
