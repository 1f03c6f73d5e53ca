// ABOUTME: Project types and store methods with owner-scoped access
// ABOUTME: Every lookup and mutation is filtered by (id, user_id)

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// CreateProject inserts a new project and fills in the generated ID.
func (s *SQLiteStore) CreateProject(ctx context.Context, project *Project) error {
	now := time.Now().UTC()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	if project.UpdatedAt.IsZero() {
		project.UpdatedAt = now
	}

	query := `
		INSERT INTO projects (title, description, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		project.Title,
		nullString(project.Description),
		project.UserID,
		project.CreatedAt.UTC().Format(time.RFC3339),
		project.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading project id: %w", err)
	}
	project.ID = id

	s.logger.Info("created project", "id", project.ID, "user_id", project.UserID)
	return nil
}

// GetProject retrieves a project owned by the given user.
// Returns ErrNotFound whether the project is absent or owned by someone else.
func (s *SQLiteStore) GetProject(ctx context.Context, id, userID int64) (*Project, error) {
	query := `
		SELECT id, title, description, user_id, created_at, updated_at
		FROM projects
		WHERE id = ? AND user_id = ?
	`

	row := s.db.QueryRowContext(ctx, query, id, userID)
	project, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying project: %w", err)
	}

	return project, nil
}

// ListProjects returns the user's projects ordered by most recently updated.
// When search is non-empty it filters by a case-insensitive substring match
// over title and description.
func (s *SQLiteStore) ListProjects(ctx context.Context, userID int64, search string) ([]*Project, error) {
	query := `
		SELECT id, title, description, user_id, created_at, updated_at
		FROM projects
		WHERE user_id = ?
	`
	args := []any{userID}

	if search != "" {
		query += ` AND (title LIKE ? OR COALESCE(description, '') LIKE ?)`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}

	query += ` ORDER BY updated_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	return projects, nil
}

// UpdateProject replaces the project's title and description.
// The owning user never changes; user_id is only used for scoping.
// Returns ErrNotFound if no row matches (absent or not owned).
func (s *SQLiteStore) UpdateProject(ctx context.Context, project *Project) error {
	project.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE projects
		SET title = ?, description = ?, updated_at = ?
		WHERE id = ? AND user_id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		project.Title,
		nullString(project.Description),
		project.UpdatedAt.Format(time.RFC3339),
		project.ID,
		project.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
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

// DeleteProject removes a project owned by the given user.
// Associated tasks are removed by the FK cascade.
// Returns ErrNotFound if no row matches (absent or not owned).
func (s *SQLiteStore) DeleteProject(ctx context.Context, id, userID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	s.logger.Info("deleted project", "id", id, "user_id", userID)
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*Project, error) {
	var project Project
	var description sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&project.ID,
		&project.Title,
		&description,
		&project.UserID,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		project.Description = &description.String
	}

	project.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing project created_at: %w", err)
	}
	project.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing project updated_at: %w", err)
	}

	return &project, nil
}

// nullString converts an optional string to a driver-friendly value.
func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
