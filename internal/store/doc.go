// Package store provides persistence for taskdeck users, projects, and tasks.
//
// # Entities
//
//   - User: registered account with a unique email and bcrypt password hash.
//   - Project: owned by exactly one user; the owner never changes.
//   - Task: belongs to a project; ownership is resolved transitively through
//     the parent project's user_id and is never stored on the task row.
//
// # Ownership Scoping
//
// Project reads and mutations are filtered by (id, user_id). A project that
// exists but belongs to someone else is indistinguishable from one that does
// not exist: both return ErrNotFound. Task reads return the parent project's
// owner alongside the task so handlers can make their own access decision.
//
// # Implementation
//
// SQLiteStore is the only implementation, built on modernc.org/sqlite with
// WAL mode and foreign keys enabled. Deleting a project cascades to its
// tasks via the FK constraint; no explicit orchestration is involved.
package store
