package job

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeFullTime   Type = "full"
	TypePartTime   Type = "part"
	TypeRemote     Type = "remote"
	TypeInternship Type = "intern"
)

func ParseType(s string) (Type, bool) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeFullTime:
		return TypeFullTime, true
	case TypePartTime:
		return TypePartTime, true
	case TypeRemote:
		return TypeRemote, true
	case TypeInternship:
		return TypeInternship, true
	default:
		return "", false
	}
}

type Job struct {
	ID             uuid.UUID
	EmployerID     uuid.UUID
	CompanyName    string
	Title          string
	Description    string
	SkillsRequired string
	Location       string
	SalaryMin      int
	SalaryMax      int
	JobType        Type
	CreatedAt      time.Time
	ExpiryDate     time.Time
	IsActive       bool
}

// IsOpen reports whether the posting is active and not past its expiry date
// as of now. Expiry is inclusive of the whole expiry day.
func (j Job) IsOpen(now time.Time) bool {
	if !j.IsActive {
		return false
	}
	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	ey, em, ed := j.ExpiryDate.UTC().Date()
	expiry := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return !expiry.Before(today)
}
