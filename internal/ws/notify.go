package ws

import (
	"encoding/json"
	"time"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
)

const (
	EventJobPosted  = "job_posted"
	EventJobUpdated = "job_updated"
)

type JobEvent struct {
	Type           string    `json:"type"`
	JobID          uuid.UUID `json:"job_id"`
	Title          string    `json:"title,omitempty"`
	CompanyName    string    `json:"company_name,omitempty"`
	SkillsRequired string    `json:"skills_required,omitempty"`
	IsActive       bool      `json:"is_active"`
	Timestamp      string    `json:"timestamp"`
}

type eventObserver interface {
	ObserveJobEvent(eventType string)
}

// JobNotifier turns posting changes into hub broadcasts.
type JobNotifier struct {
	hub      *Hub
	observer eventObserver
	now      func() time.Time
}

func NewJobNotifier(hub *Hub, observer eventObserver) *JobNotifier {
	return &JobNotifier{hub: hub, observer: observer, now: time.Now}
}

func (n *JobNotifier) NotifyJobPosted(j job.Job) {
	n.send(EventJobPosted, j)
}

func (n *JobNotifier) NotifyJobUpdated(j job.Job) {
	n.send(EventJobUpdated, j)
}

func (n *JobNotifier) send(eventType string, j job.Job) {
	if n == nil || n.hub == nil {
		return
	}

	b, err := json.Marshal(JobEvent{
		Type:           eventType,
		JobID:          j.ID,
		Title:          j.Title,
		CompanyName:    j.CompanyName,
		SkillsRequired: j.SkillsRequired,
		IsActive:       j.IsActive,
		Timestamp:      n.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}

	if n.hub.Broadcast(b) && n.observer != nil {
		n.observer.ObserveJobEvent(eventType)
	}
}
