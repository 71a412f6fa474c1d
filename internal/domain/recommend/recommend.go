package recommend

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

const DefaultLimit = 5

// Candidate is the slice of a job posting the recommender needs.
type Candidate struct {
	ID             uuid.UUID
	SkillsRequired string
	CreatedAt      time.Time
}

type Match struct {
	JobID   uuid.UUID
	Score   Score
	Matched []string
	Missing []string

	createdAt time.Time
}

// Evaluate scores a single job against the seeker's skills.
func Evaluate(seeker SkillSet, c Candidate) Match {
	required := ParseSkills(c.SkillsRequired)
	matched, missing := required.Split(seeker)
	return Match{
		JobID:     c.ID,
		Score:     ComputeScore(len(matched), required.Len()),
		Matched:   matched,
		Missing:   missing,
		createdAt: c.CreatedAt,
	}
}

// Recommend ranks jobs by the share of their required skills the seeker has.
// Zero scores are dropped; ties go to the most recent job, then the lowest ID.
func Recommend(seeker SkillSet, jobs []Candidate, limit int) []Match {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if seeker.Len() == 0 || len(jobs) == 0 {
		return []Match{}
	}

	out := make([]Match, 0, len(jobs))
	for _, c := range jobs {
		m := Evaluate(seeker, c)
		if m.Score <= MinScore {
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.createdAt.Equal(b.createdAt) {
			return a.createdAt.After(b.createdAt)
		}
		return a.JobID.String() < b.JobID.String()
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
