package dto

import (
	"time"

	"github.com/google/uuid"
)

type AssignmentRequest struct {
	EmployeeID uuid.UUID  `json:"employee_id"`
	Role       string     `json:"role"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
}

type AssignmentResponse struct {
	ProjectID  uuid.UUID `json:"project_id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	Role       string    `json:"role"`
	StartDate  time.Time `json:"start_date"`
}
