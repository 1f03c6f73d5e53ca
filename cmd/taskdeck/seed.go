// ABOUTME: Seed subcommand that loads users, projects, and tasks from TOML
// ABOUTME: Used to populate a fresh database for demos and local development

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"

	"github.com/2389/taskdeck/internal/auth"
	"github.com/2389/taskdeck/internal/config"
	"github.com/2389/taskdeck/internal/store"
)

// seedFile mirrors the TOML fixture layout: users own projects, projects
// own tasks.
type seedFile struct {
	Users []seedUser `toml:"users"`
}

type seedUser struct {
	Name     string        `toml:"name"`
	Email    string        `toml:"email"`
	Password string        `toml:"password"`
	Projects []seedProject `toml:"projects"`
}

type seedProject struct {
	Title       string     `toml:"title"`
	Description string     `toml:"description"`
	Tasks       []seedTask `toml:"tasks"`
}

type seedTask struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Status      string `toml:"status"`
	DueDate     string `toml:"due_date"`
}

// runSeed loads a TOML fixture into the configured database. Users that
// already exist are skipped along with everything under them.
func runSeed(ctx context.Context) error {
	var fixturePath string
	args := os.Args[2:]
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--file" || arg == "-f":
			if i+1 >= len(args) {
				return fmt.Errorf("--file requires a value")
			}
			fixturePath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--file="):
			fixturePath = strings.TrimPrefix(arg, "--file=")
		case strings.HasPrefix(arg, "-"):
			return fmt.Errorf("unknown flag: %s", arg)
		default:
			return fmt.Errorf("unexpected argument: %s", arg)
		}
	}

	if fixturePath == "" {
		return fmt.Errorf("--file flag is required")
	}

	var fixture seedFile
	if _, err := toml.DecodeFile(fixturePath, &fixture); err != nil {
		return fmt.Errorf("parsing fixture: %w", err)
	}

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	st, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer st.Close()

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	for _, su := range fixture.Users {
		hash, err := auth.HashPassword(su.Password)
		if err != nil {
			return fmt.Errorf("hashing password for %s: %w", su.Email, err)
		}

		user := &store.User{Name: su.Name, Email: su.Email, PasswordHash: hash}
		if err := st.CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrEmailExists) {
				yellow.Printf("  - Skipped %s (already exists)\n", su.Email)
				continue
			}
			return fmt.Errorf("creating user %s: %w", su.Email, err)
		}
		green.Printf("  ✓ User %s\n", su.Email)

		for _, sp := range su.Projects {
			project := &store.Project{Title: sp.Title, UserID: user.ID}
			if sp.Description != "" {
				project.Description = &sp.Description
			}
			if err := st.CreateProject(ctx, project); err != nil {
				return fmt.Errorf("creating project %q: %w", sp.Title, err)
			}
			green.Printf("    ✓ Project %q\n", sp.Title)

			for _, stk := range sp.Tasks {
				task, err := buildSeedTask(stk, project.ID)
				if err != nil {
					return err
				}
				if err := st.CreateTask(ctx, task); err != nil {
					return fmt.Errorf("creating task %q: %w", stk.Title, err)
				}
			}
			if len(sp.Tasks) > 0 {
				green.Printf("      ✓ %d task(s)\n", len(sp.Tasks))
			}
		}
	}

	return nil
}

func buildSeedTask(stk seedTask, projectID int64) (*store.Task, error) {
	status := stk.Status
	if status == "" {
		status = store.TaskStatusTodo
	}
	if !store.ValidTaskStatus(status) {
		return nil, fmt.Errorf("task %q: invalid status %q", stk.Title, status)
	}

	task := &store.Task{
		Title:     stk.Title,
		Status:    status,
		ProjectID: projectID,
	}
	if stk.Description != "" {
		desc := stk.Description
		task.Description = &desc
	}
	if stk.DueDate != "" {
		due, err := parseSeedDate(stk.DueDate)
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", stk.Title, err)
		}
		task.DueDate = &due
	}
	return task, nil
}

// parseSeedDate accepts RFC3339 timestamps or plain dates.
func parseSeedDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q", s)
	}
	return t, nil
}
