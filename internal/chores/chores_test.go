package chores

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mmynk/roomledger/internal/models"
)

var now = time.Date(2025, time.January, 12, 9, 0, 0, 0, time.UTC)

func day(d int) int64 {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC).Unix()
}

func TestIsOverdue(t *testing.T) {
	tests := []struct {
		name string
		task models.Task
		want bool
	}{
		{"open and past due", models.Task{DueDate: day(10)}, true},
		{"open and due later", models.Task{DueDate: day(15)}, false},
		{"completed and past due", models.Task{DueDate: day(10), Completed: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOverdue(tt.task, now))
		})
	}
}

func TestToggle(t *testing.T) {
	task := models.Task{Title: "Take Out Trash"}

	Toggle(&task, now)
	assert.True(t, task.Completed)
	assert.Equal(t, now.Unix(), task.CompletedAt)

	Toggle(&task, now.Add(time.Hour))
	assert.False(t, task.Completed)
	assert.Zero(t, task.CompletedAt)
}

func TestSummarize(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", AssignedTo: "2", DueDate: day(15)},
		{ID: "2", AssignedTo: "3", DueDate: day(11)},
		{ID: "3", AssignedTo: "2", DueDate: day(9)},
		{ID: "4", AssignedTo: "2", DueDate: day(5), Completed: true},
	}

	assert.Equal(t, Stats{Pending: 3, Overdue: 2, Mine: 2}, Summarize(tasks, "2", now))
	assert.Equal(t, Stats{Pending: 3, Overdue: 2, Mine: 0}, Summarize(tasks, "4", now))
	assert.Equal(t, Stats{}, Summarize(nil, "2", now))
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"", StatusAll, false},
		{"all", StatusAll, false},
		{"Pending", StatusPending, false},
		{" completed ", StatusCompleted, false},
		{"overdue", StatusOverdue, false},
		{"archived", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseStatus(%q)", tt.in)
			continue
		}
		assert.NoError(t, err, "ParseStatus(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseStatus(%q)", tt.in)
	}
}

func TestStatus_Matches(t *testing.T) {
	open := models.Task{DueDate: day(15)}
	late := models.Task{DueDate: day(10)}
	done := models.Task{DueDate: day(10), Completed: true, CompletedAt: day(11)}

	tests := []struct {
		status Status
		want   [3]bool // open, late, done
	}{
		{StatusAll, [3]bool{true, true, true}},
		{StatusPending, [3]bool{true, true, false}},
		{StatusCompleted, [3]bool{false, false, true}},
		{StatusOverdue, [3]bool{false, true, false}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := [3]bool{tt.status.Matches(open, now), tt.status.Matches(late, now), tt.status.Matches(done, now)}
			assert.Equal(t, tt.want, got)
		})
	}
}
