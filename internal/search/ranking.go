package search

import (
	"sort"
	"strings"
	"time"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/recommend"
)

const maxRelevance = 10

type JobScore struct {
	Relevance  float64
	Freshness  float64
	FinalScore float64
}

// ComputeRelevance weighs whole-phrase hits of each variant: title 3,
// required skill 2, description 1, company 1. Capped at 10.
func ComputeRelevance(j job.Job, variants []string) float64 {
	if len(variants) == 0 {
		return 0
	}

	title := padded(j.Title)
	desc := padded(j.Description)
	company := padded(j.CompanyName)
	skills := recommend.ParseSkills(j.SkillsRequired)

	score := 0.0
	for _, v := range variants {
		v = NormalizeQuery(v)
		if v == "" {
			continue
		}
		needle := " " + v + " "
		if strings.Contains(title, needle) {
			score += 3
		}
		if skills.Has(v) {
			score += 2
		}
		if strings.Contains(desc, needle) {
			score += 1
		}
		if strings.Contains(company, needle) {
			score += 1
		}
		if score >= maxRelevance {
			return maxRelevance
		}
	}
	return score
}

func ComputeFreshness(j job.Job, now time.Time) float64 {
	if j.CreatedAt.IsZero() {
		return 0
	}
	age := now.Sub(j.CreatedAt)
	if age < 0 {
		age = 0
	}

	switch {
	case age <= 24*time.Hour:
		return 5
	case age <= 3*24*time.Hour:
		return 4
	case age <= 7*24*time.Hour:
		return 3
	case age <= 14*24*time.Hour:
		return 2
	case age <= 30*24*time.Hour:
		return 1
	default:
		return 0
	}
}

func ScoreJob(j job.Job, variants []string, now time.Time) JobScore {
	rel := ComputeRelevance(j, variants)
	fresh := ComputeFreshness(j, now)
	return JobScore{
		Relevance:  rel,
		Freshness:  fresh,
		FinalScore: rel*2.0 + fresh*1.5,
	}
}

// Rank keeps the postings that match at least one variant, best first. Equal
// scores keep their input order.
func Rank(jobs []job.Job, variants []string, now time.Time) []job.Job {
	type scored struct {
		idx   int
		score float64
	}

	hits := make([]scored, 0, len(jobs))
	for i := range jobs {
		s := ScoreJob(jobs[i], variants, now)
		if s.Relevance == 0 {
			continue
		}
		hits = append(hits, scored{idx: i, score: s.FinalScore})
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].score > hits[b].score
	})

	out := make([]job.Job, 0, len(hits))
	for _, h := range hits {
		out = append(out, jobs[h.idx])
	}
	return out
}

func padded(s string) string {
	return " " + NormalizeQuery(s) + " "
}
