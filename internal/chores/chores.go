// Package chores holds the small amount of logic attached to household tasks.
package chores

import (
	"fmt"
	"strings"
	"time"

	"github.com/mmynk/roomledger/internal/models"
)

// Stats counts open chores, for the household and for one member.
type Stats struct {
	Pending int // Open chores across the household
	Overdue int // Open chores past their due date
	Mine    int // Open chores assigned to the member
}

// IsOverdue reports whether task is still open after its due date.
func IsOverdue(task models.Task, now time.Time) bool {
	return !task.Completed && time.Unix(task.DueDate, 0).Before(now)
}

// Toggle flips the completion state of task. Completing stamps CompletedAt
// with now; reopening clears it.
func Toggle(task *models.Task, now time.Time) {
	task.Completed = !task.Completed
	if task.Completed {
		task.CompletedAt = now.Unix()
	} else {
		task.CompletedAt = 0
	}
}

// Summarize computes chore stats for memberID at time now.
func Summarize(tasks []models.Task, memberID string, now time.Time) Stats {
	var stats Stats
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		stats.Pending++
		if IsOverdue(task, now) {
			stats.Overdue++
		}
		if task.AssignedTo == memberID {
			stats.Mine++
		}
	}
	return stats
}

// Status selects chores by state in task listings.
type Status string

const (
	StatusAll       Status = "all"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
)

// ParseStatus reads a status filter. An empty string means StatusAll.
func ParseStatus(s string) (Status, error) {
	switch status := Status(strings.ToLower(strings.TrimSpace(s))); status {
	case "":
		return StatusAll, nil
	case StatusAll, StatusPending, StatusCompleted, StatusOverdue:
		return status, nil
	default:
		return "", fmt.Errorf("unknown task status %q", s)
	}
}

// Matches reports whether task falls under status at time now.
func (s Status) Matches(task models.Task, now time.Time) bool {
	switch s {
	case StatusPending:
		return !task.Completed
	case StatusCompleted:
		return task.Completed
	case StatusOverdue:
		return IsOverdue(task, now)
	default:
		return true
	}
}
