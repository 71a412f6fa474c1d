package dto

import "jobboard/internal/usecase"

type RecommendedJobResponse struct {
	JobResponse
	// Score is a percentage with one decimal, e.g. "66.7".
	Score         string   `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

type DashboardResponse struct {
	Recommended []RecommendedJobResponse `json:"recommended"`
	RecentJobs  []JobResponse            `json:"recent_jobs"`
}

func NewRecommendedJobResponses(items []usecase.RecommendedJob) []RecommendedJobResponse {
	out := make([]RecommendedJobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, RecommendedJobResponse{
			JobResponse:   NewJobResponse(it.Job),
			Score:         it.Score.String(),
			MatchedSkills: nonNil(it.Matched),
			MissingSkills: nonNil(it.Missing),
		})
	}
	return out
}

func NewDashboardResponse(d usecase.Dashboard) DashboardResponse {
	return DashboardResponse{
		Recommended: NewRecommendedJobResponses(d.Recommended),
		RecentJobs:  NewJobResponses(d.RecentJobs),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
