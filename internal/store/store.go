// ABOUTME: Store interface and data types for taskdeck persistence
// ABOUTME: Defines User, Project, Task structs and the Store interface for database operations

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist.
// For owner-scoped project lookups it also covers "exists but not owned",
// so callers cannot distinguish the two cases.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when trying to register an email that is already taken
var ErrEmailExists = errors.New("email already exists")

// TaskStatus constants for task state
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// ValidTaskStatus reports whether s is one of the three allowed task states.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// User represents a registered account
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, never exposed over the API
	CreatedAt    time.Time
}

// Project represents a user-owned collection of tasks
type Project struct {
	ID          int64
	Title       string
	Description *string
	UserID      int64 // immutable after creation
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Task represents a unit of work within a project.
// Ownership is transitive through the parent project and is never
// duplicated onto the task row.
type Task struct {
	ID          int64
	Title       string
	Description *string
	Status      string // todo, in_progress, done
	DueDate     *time.Time
	ProjectID   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Store defines the interface for user, project, and task persistence
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// Projects. Lookups are owner-scoped: a project that exists but belongs
	// to a different user is reported as ErrNotFound.
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id, userID int64) (*Project, error)
	ListProjects(ctx context.Context, userID int64, search string) ([]*Project, error)
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id, userID int64) error

	// Tasks. GetTask additionally returns the user ID owning the parent
	// project so handlers can enforce transitive ownership.
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, int64, error)
	ListProjectTasks(ctx context.Context, projectID int64) ([]*Task, error)
	ListUserTasks(ctx context.Context, userID int64) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error

	Close() error
}
