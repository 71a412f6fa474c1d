package profile

import (
	"time"

	"github.com/google/uuid"
)

type Seeker struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Phone     string
	Location  string
	Bio       string
	Skills    []string
	UpdatedAt time.Time
}

type Employer struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CompanyName string
	Industry    string
	Website     string
	Description string
	UpdatedAt   time.Time
}
