package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/roomledger/internal/models"
	"github.com/mmynk/roomledger/internal/storage"
)

const taskColumns = `id, title, description, assigned_to, created_by, due_date, priority, category, completed, completed_at`

// CreateTask persists a new chore to the database.
func (s *SQLiteStore) CreateTask(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, nullable(task.Description), task.AssignedTo, task.CreatedBy,
		task.DueDate, string(task.Priority), task.Category, task.Completed, nullableTime(task.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}

	return nil
}

// GetTask retrieves a chore by ID.
func (s *SQLiteStore) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, taskID)

	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task %s: %w", taskID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// UpdateTask replaces every field of an existing chore.
func (s *SQLiteStore) UpdateTask(ctx context.Context, task *models.Task) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, assigned_to = ?, created_by = ?, due_date = ?,
		 priority = ?, category = ?, completed = ?, completed_at = ? WHERE id = ?`,
		task.Title, nullable(task.Description), task.AssignedTo, task.CreatedBy, task.DueDate,
		string(task.Priority), task.Category, task.Completed, nullableTime(task.CompletedAt), task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("task %s: %w", task.ID, storage.ErrNotFound)
	}

	return nil
}

// ListTasks retrieves every chore, newest first.
func (s *SQLiteStore) ListTasks(ctx context.Context) ([]*models.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

func scanTask(row scanner) (*models.Task, error) {
	task := &models.Task{}
	var description sql.NullString
	var priority string
	var completedAt sql.NullInt64

	if err := row.Scan(&task.ID, &task.Title, &description, &task.AssignedTo, &task.CreatedBy,
		&task.DueDate, &priority, &task.Category, &task.Completed, &completedAt); err != nil {
		return nil, err
	}
	task.Description = description.String
	task.Priority = models.Priority(priority)
	task.CompletedAt = completedAt.Int64

	return task, nil
}

func nullableTime(unix int64) interface{} {
	if unix == 0 {
		return nil
	}
	return unix
}
