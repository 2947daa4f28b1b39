// Package scorer ranks merged job records against a user profile using
// an additive weighted rubric. Every satisfied signal contributes points
// and a human-readable (Vietnamese) reason.
package scorer

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/project-tktt/go-jobsearch/internal/domain"
	"github.com/project-tktt/go-jobsearch/internal/strutil"
)

const (
	pointsPerSkill   = 5
	pointsMultiSkill = 3
	pointsExperience = 4
	pointsLocation   = 3
	pointsRemote     = 2
	pointsSalary     = 2
	pointsReputable  = 1
	// Five skill matches worth of points. Scores may exceed this;
	// the percentage saturates at 100.
	percentageCeiling = 25
)

var remoteTerms = []string{"remote", "work from home", "wfh"}

var reputableKeywords = []string{"tech", "technology", "software", "digital", "innovation"}

var juniorTierTerms = []string{"junior", "fresher", "intern", "trainee"}

var seniorTierTerms = []string{"senior", "lead", "principal"}

const negotiableSalary = "thỏa thuận"

var digitRun = regexp.MustCompile(`\d+`)

// Score evaluates each job against the profile and returns the list
// sorted by score descending. The sort is stable: equal scores keep
// their merge order.
func Score(jobs []domain.JobRecord, profile domain.UserProfile) []domain.ScoredJob {
	scored := make([]domain.ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		scored = append(scored, scoreJob(job, profile))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

func scoreJob(job domain.JobRecord, profile domain.UserProfile) domain.ScoredJob {
	score := 0
	var reasons []string

	title := strings.ToLower(job.Title)
	company := strings.ToLower(job.Company)
	location := strings.ToLower(job.Location)
	salary := strings.ToLower(job.Salary)
	snippet := strings.ToLower(job.Snippet)

	skillMatches := 0
	for _, skill := range profile.Skills {
		s := strings.ToLower(skill)
		if strings.Contains(title, s) || strings.Contains(snippet, s) {
			score += pointsPerSkill
			skillMatches++
			reasons = append(reasons, "Khớp skill "+strutil.Title(s))
		}
	}

	if skillMatches >= 2 {
		score += pointsMultiSkill
		reasons = append(reasons, "Khớp nhiều skills quan trọng")
	}

	switch {
	case profile.ExperienceYears <= 1:
		if strutil.ContainsAny(title, juniorTierTerms) {
			score += pointsExperience
			reasons = append(reasons, "Phù hợp level fresher/junior")
		}
	case profile.ExperienceYears <= 3:
		if strings.Contains(title, "junior") && !strings.Contains(title, "senior") {
			score += pointsExperience
			reasons = append(reasons, "Phù hợp level junior")
		}
	default:
		if strutil.ContainsAny(title, seniorTierTerms) {
			score += pointsExperience
			reasons = append(reasons, "Phù hợp level senior")
		}
	}

	if profile.Location != "" && strings.Contains(location, strings.ToLower(profile.Location)) {
		score += pointsLocation
		reasons = append(reasons, "Đúng khu vực mong muốn")
	}

	if strutil.ContainsAny(title+location, remoteTerms) {
		score += pointsRemote
		reasons = append(reasons, "Hỗ trợ làm việc remote")
	}

	if profile.ExpectedSalary > 0 && salary != "" && salary != negotiableSalary {
		if max, ok := maxSalaryNumber(salary); ok && max >= profile.ExpectedSalary/1_000_000 {
			score += pointsSalary
			reasons = append(reasons, "Đáp ứng mức lương mong đợi")
		}
	}

	if strutil.ContainsAny(company, reputableKeywords) {
		score += pointsReputable
		reasons = append(reasons, "Công ty công nghệ uy tín")
	}

	return domain.ScoredJob{
		Job:             job,
		Score:           score,
		Reasons:         reasons,
		MatchPercentage: matchPercentage(score),
	}
}

// maxSalaryNumber extracts the largest digit run from a salary string,
// interpreted as millions of VND. "15-25 triệu" yields 25.
func maxSalaryNumber(salary string) (int, bool) {
	tokens := digitRun.FindAllString(salary, -1)
	if len(tokens) == 0 {
		return 0, false
	}
	max := 0
	for _, token := range tokens {
		if n, err := strconv.Atoi(token); err == nil && n > max {
			max = n
		}
	}
	return max, true
}

func matchPercentage(score int) float64 {
	pct := float64(score) / percentageCeiling * 100
	if pct > 100 {
		return 100
	}
	return pct
}
