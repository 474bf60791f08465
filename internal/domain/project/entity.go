package project

import "github.com/google/uuid"

type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Active reports whether the project counts toward the organization's
// current domain portfolio.
func (s Status) Active() bool {
	return s == StatusInProgress || s == StatusCompleted
}

type Requirement struct {
	ID             uuid.UUID
	Name           string
	Description    string
	RequiredSkills []string
	TeamSizeTarget int
	Status         Status
	ClientIndustry string
}
