// ABOUTME: Typed request bodies with field-level validation
// ABOUTME: Requests are decoded first, then validated as a whole so every field error is reported

package api

import (
	"regexp"
	"time"

	"github.com/2389/taskdeck/internal/store"
)

// emailPattern is a pragmatic address check, not a full RFC 5322 parser.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// registerRequest is the JSON body for POST /api/auth/register.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate returns per-field error messages, empty on success.
func (r *registerRequest) Validate() map[string][]string {
	details := make(map[string][]string)

	if len(r.Name) < 2 {
		details["name"] = append(details["name"], "Name must be at least 2 characters")
	}
	if !emailPattern.MatchString(r.Email) {
		details["email"] = append(details["email"], "Invalid email address")
	}
	if len(r.Password) < 8 {
		details["password"] = append(details["password"], "Password must be at least 8 characters")
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

// loginRequest is the JSON body for POST /api/auth/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *loginRequest) Validate() map[string][]string {
	details := make(map[string][]string)

	if !emailPattern.MatchString(r.Email) {
		details["email"] = append(details["email"], "Invalid email address")
	}
	if r.Password == "" {
		details["password"] = append(details["password"], "Password is required")
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

// projectRequest is the JSON body for project create and update.
// PUT has full-field replace semantics: an omitted description clears it.
type projectRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func (r *projectRequest) Validate() map[string][]string {
	if r.Title == "" {
		return map[string][]string{"title": {"Title is required"}}
	}
	return nil
}

// taskRequest is the JSON body for task create and update.
// projectId is validated on both but only honored on create; a task never
// moves between projects on update.
type taskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate"`
	ProjectID   int64   `json:"projectId"`

	// parsed due date, populated by Validate
	dueTime *time.Time
}

// Validate checks the fields and normalizes defaults: an empty status
// becomes todo, and dueDate is parsed into dueTime.
func (r *taskRequest) Validate() map[string][]string {
	details := make(map[string][]string)

	if r.Title == "" {
		details["title"] = append(details["title"], "Title is required")
	}

	if r.Status == "" {
		r.Status = store.TaskStatusTodo
	}
	if !store.ValidTaskStatus(r.Status) {
		details["status"] = append(details["status"], "Status must be todo, in_progress, or done")
	}

	if r.DueDate != nil && *r.DueDate != "" {
		due, err := parseDueDate(*r.DueDate)
		if err != nil {
			details["dueDate"] = append(details["dueDate"], "Invalid due date")
		} else {
			r.dueTime = &due
		}
	}

	if r.ProjectID == 0 {
		details["projectId"] = append(details["projectId"], "Project ID is required")
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

// parseDueDate accepts RFC 3339 timestamps and bare dates.
func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
