package models

import (
	"time"
)

// ProgressStatus represents the progress state of a task
type ProgressStatus byte

const (
	ProgressToDo          ProgressStatus = 1
	ProgressInProgress    ProgressStatus = 2
	ProgressDone          ProgressStatus = 3
	ProgressToBeReviewed  ProgressStatus = 4
	ProgressToBeCorrected ProgressStatus = 5
)

// Label returns the display name for the progress status.
func (p ProgressStatus) Label() string {
	switch p {
	case ProgressToDo:
		return "To Do"
	case ProgressInProgress:
		return "In Progress"
	case ProgressDone:
		return "Done"
	case ProgressToBeReviewed:
		return "To Be Reviewed"
	case ProgressToBeCorrected:
		return "To Be Corrected"
	}
	return "Unknown"
}

// Valid reports whether p is one of the defined progress states.
func (p ProgressStatus) Valid() bool {
	return p >= ProgressToDo && p <= ProgressToBeCorrected
}

// PriorityStatus represents the priority of a task
type PriorityStatus byte

const (
	PriorityLow    PriorityStatus = 1
	PriorityMedium PriorityStatus = 2
	PriorityHigh   PriorityStatus = 3
)

// Label returns the display name for the priority.
func (p PriorityStatus) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return "Unknown"
}

// Valid reports whether p is one of the defined priorities.
func (p PriorityStatus) Valid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// ParsePriority maps a priority label ("Low", "Medium", "High") to its value.
// Returns 0 when the label is not recognized.
func ParsePriority(label string) PriorityStatus {
	switch label {
	case "Low":
		return PriorityLow
	case "Medium":
		return PriorityMedium
	case "High":
		return PriorityHigh
	}
	return 0
}

// ProjectTask represents a unit of work belonging to exactly one project
type ProjectTask struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID      string         `json:"projectId" gorm:"type:uuid;not null;index"`
	Title          string         `json:"title" gorm:"type:varchar(50);not null"`
	Description    string         `json:"description" gorm:"type:varchar(1000);default:null"`
	StartDate      *time.Time     `json:"startDate"`
	DueDate        *time.Time     `json:"dueDate"`
	ProgressStatus ProgressStatus `json:"progressStatus" gorm:"type:smallint;default:1"`
	PriorityStatus PriorityStatus `json:"priorityStatus" gorm:"type:smallint;default:1"`
	CreatedBy      string         `json:"createdBy" gorm:"type:uuid;not null"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedBy      string         `json:"updatedBy" gorm:"type:uuid;default:null"`
	UpdatedAt      *time.Time     `json:"updatedAt"`
	Status         byte           `json:"status" gorm:"type:smallint;not null;default:1"`
}
