// Package reporter renders scored jobs into the Vietnamese markdown
// report returned to the caller. All thresholds, captions and
// placeholder strings are fixed: rendering the same input twice yields
// byte-identical output.
package reporter

import (
	"fmt"
	"strings"

	"github.com/project-tktt/go-jobsearch/internal/domain"
	"github.com/project-tktt/go-jobsearch/internal/strutil"
)

const (
	// topJobs is how many entries the report shows.
	topJobs = 5

	perfectMatchPct = 80
	goodFitPct      = 60
	worthLookPct    = 40

	noResults = "# ❌ Không tìm thấy việc làm phù hợp\n\nVui lòng thử với từ khóa khác hoặc mở rộng khu vực tìm kiếm."
)

// Render formats the ranked jobs and search summary as markdown.
func Render(scored []domain.ScoredJob, summary domain.SearchSummary) string {
	if len(scored) == 0 {
		return noResults
	}

	var b strings.Builder
	b.WriteString("# 🎯 Kết quả Tìm kiếm Việc làm\n\n")

	writeSummary(&b, summary)

	b.WriteString("## 🏆 Top Gợi ý Phù hợp Nhất\n\n")

	top := scored
	if len(top) > topJobs {
		top = top[:topJobs]
	}
	for i, entry := range top {
		writeJob(&b, i+1, entry)
	}

	if top[0].MatchPercentage < goodFitPct {
		b.WriteString("## 💡 Gợi ý Cải thiện Tìm kiếm\n\n")
		b.WriteString("- Thử mở rộng khu vực tìm kiếm\n")
		b.WriteString("- Xem xét các vị trí junior/trainee nếu bạn mới bắt đầu\n")
		b.WriteString("- Cập nhật thêm skills trong profile\n")
		b.WriteString("- Thử các từ khóa tương tự (VD: 'lập trình viên' thay vì 'developer')\n\n")
	}

	b.WriteString("## 🚀 Tips Ứng tuyển Thành công\n\n")
	b.WriteString("1. **Tùy chỉnh CV** cho từng vị trí - highlight skills phù hợp\n")
	b.WriteString("2. **Research công ty** trước khi apply\n")
	b.WriteString("3. **Viết cover letter** ngắn gọn, tập trung vào value bạn mang lại\n")
	b.WriteString("4. **Follow up** sau 3-5 ngày nếu chưa có phản hồi\n")
	b.WriteString("5. **Chuẩn bị câu hỏi** để hỏi interviewer\n\n")

	return b.String()
}

func writeSummary(b *strings.Builder, summary domain.SearchSummary) {
	b.WriteString("## 📊 Tổng quan\n")
	fmt.Fprintf(b, "- **Tổng số việc làm:** %d\n", summary.TotalFound)
	fmt.Fprintf(b, "- **Nguồn tìm kiếm:** %s\n", joinOr(summary.SourcesUsed, "N/A"))
	fmt.Fprintf(b, "- **Từ khóa:** %s\n", joinOr(summary.QueriesUsed, "N/A"))
	fmt.Fprintf(b, "- **Khu vực:** %s\n\n", fallback(summary.Location, "Toàn quốc"))
}

func writeJob(b *strings.Builder, rank int, entry domain.ScoredJob) {
	job := entry.Job

	fmt.Fprintf(b, "### %d. %s %s (%.0f%%)\n\n",
		rank, fallback(job.Title, "N/A"), badge(entry.MatchPercentage), entry.MatchPercentage)

	b.WriteString("| Thông tin | Chi tiết |\n")
	b.WriteString("|-----------|----------|\n")
	fmt.Fprintf(b, "| 🏢 **Công ty** | %s |\n", fallback(job.Company, "N/A"))
	fmt.Fprintf(b, "| 📍 **Địa điểm** | %s |\n", fallback(job.Location, "N/A"))
	fmt.Fprintf(b, "| 💰 **Mức lương** | %s |\n", fallback(job.Salary, "Thỏa thuận"))
	fmt.Fprintf(b, "| 🌐 **Nguồn** | %s |\n\n", strutil.Title(fallback(job.Source, "N/A")))

	if len(entry.Reasons) > 0 {
		b.WriteString("**🎯 Lý do phù hợp:**\n")
		for _, reason := range entry.Reasons {
			fmt.Fprintf(b, "- %s\n", reason)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(b, "**👉 [Xem chi tiết & Ứng tuyển](%s)**\n\n", fallback(job.URL, "#"))
	b.WriteString("---\n\n")
}

func badge(pct float64) string {
	switch {
	case pct >= perfectMatchPct:
		return "🔥 **KHỚP HOÀN HẢO**"
	case pct >= goodFitPct:
		return "⭐ **PHÙ HỢP**"
	case pct >= worthLookPct:
		return "✅ **CÓ THỂ XEM XÉT**"
	default:
		return "📝 **THAM KHẢO**"
	}
}

func joinOr(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
