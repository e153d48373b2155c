package models

// Priority ranks how urgent a chore is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task represents a household chore.
type Task struct {
	ID          string
	Title       string
	Description string

	// AssignedTo is the member responsible for the chore.
	AssignedTo string

	// CreatedBy is the member who created the chore.
	CreatedBy string

	// DueDate is the Unix timestamp the chore is due by.
	DueDate int64

	Priority Priority
	Category string

	Completed bool

	// CompletedAt is the Unix timestamp of completion, zero while open.
	CompletedAt int64
}
