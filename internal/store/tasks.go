// ABOUTME: Task types and store methods with ownership resolved via the parent project
// ABOUTME: GetTask joins projects.user_id so handlers can enforce transitive ownership

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateTask inserts a new task and fills in the generated ID.
// Status defaults to todo when empty.
func (s *SQLiteStore) CreateTask(ctx context.Context, task *Task) error {
	now := time.Now().UTC()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	if task.UpdatedAt.IsZero() {
		task.UpdatedAt = now
	}
	if task.Status == "" {
		task.Status = TaskStatusTodo
	}

	query := `
		INSERT INTO tasks (title, description, status, due_date, project_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		task.Title,
		nullString(task.Description),
		task.Status,
		nullTime(task.DueDate),
		task.ProjectID,
		task.CreatedAt.UTC().Format(time.RFC3339),
		task.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading task id: %w", err)
	}
	task.ID = id

	s.logger.Info("created task", "id", task.ID, "project_id", task.ProjectID)
	return nil
}

// GetTask retrieves a task by ID along with the user ID owning its parent
// project. Ownership is never stored on the task row, so the decision of
// whether the caller may see the task is left to the handler.
func (s *SQLiteStore) GetTask(ctx context.Context, id int64) (*Task, int64, error) {
	query := `
		SELECT t.id, t.title, t.description, t.status, t.due_date, t.project_id,
		       t.created_at, t.updated_at, p.user_id
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE t.id = ?
	`

	var task Task
	var description sql.NullString
	var dueDateStr sql.NullString
	var createdAtStr, updatedAtStr string
	var ownerID int64

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&description,
		&task.Status,
		&dueDateStr,
		&task.ProjectID,
		&createdAtStr,
		&updatedAtStr,
		&ownerID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, ErrNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("querying task: %w", err)
	}

	if err := finishTaskScan(&task, description, dueDateStr, createdAtStr, updatedAtStr); err != nil {
		return nil, 0, err
	}

	return &task, ownerID, nil
}

// ListProjectTasks returns the tasks of a single project, most recently updated first.
func (s *SQLiteStore) ListProjectTasks(ctx context.Context, projectID int64) ([]*Task, error) {
	query := `
		SELECT id, title, description, status, due_date, project_id, created_at, updated_at
		FROM tasks
		WHERE project_id = ?
		ORDER BY updated_at DESC, id DESC
	`

	return s.listTasks(ctx, query, projectID)
}

// ListUserTasks returns all tasks across every project owned by the user,
// most recently updated first.
func (s *SQLiteStore) ListUserTasks(ctx context.Context, userID int64) ([]*Task, error) {
	query := `
		SELECT t.id, t.title, t.description, t.status, t.due_date, t.project_id, t.created_at, t.updated_at
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		WHERE p.user_id = ?
		ORDER BY t.updated_at DESC, t.id DESC
	`

	return s.listTasks(ctx, query, userID)
}

func (s *SQLiteStore) listTasks(ctx context.Context, query string, arg any) ([]*Task, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*Task, 0)
	for rows.Next() {
		var task Task
		var description sql.NullString
		var dueDateStr sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&task.ID,
			&task.Title,
			&description,
			&task.Status,
			&dueDateStr,
			&task.ProjectID,
			&createdAtStr,
			&updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}

		if err := finishTaskScan(&task, description, dueDateStr, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}

		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask replaces the task's title, description, status, and due date.
// The ownership check happens in the handler via GetTask before this runs.
// Returns ErrNotFound if the task no longer exists.
func (s *SQLiteStore) UpdateTask(ctx context.Context, task *Task) error {
	task.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE tasks
		SET title = ?, description = ?, status = ?, due_date = ?, updated_at = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		task.Title,
		nullString(task.Description),
		task.Status,
		nullTime(task.DueDate),
		task.UpdatedAt.Format(time.RFC3339),
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteTask removes a task by ID.
// Returns ErrNotFound if the task does not exist.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.logger.Info("deleted task", "id", id)
	return nil
}

// finishTaskScan converts nullable columns and timestamp strings onto the task.
func finishTaskScan(task *Task, description, dueDateStr sql.NullString, createdAtStr, updatedAtStr string) error {
	if description.Valid {
		task.Description = &description.String
	}

	if dueDateStr.Valid {
		dueDate, err := time.Parse(time.RFC3339, dueDateStr.String)
		if err != nil {
			return fmt.Errorf("parsing task due_date: %w", err)
		}
		task.DueDate = &dueDate
	}

	var err error
	task.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return fmt.Errorf("parsing task created_at: %w", err)
	}
	task.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return fmt.Errorf("parsing task updated_at: %w", err)
	}

	return nil
}

// nullTime converts an optional time to a driver-friendly RFC3339 value.
func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
