// Package api implements the taskdeck HTTP surface.
//
// # Routes
//
//	POST   /api/auth/register          create an account
//	POST   /api/auth/login             verify credentials, set session cookie
//	POST   /api/auth/logout            clear the session cookie
//	GET    /api/projects?search=       list the caller's projects (tasks embedded)
//	POST   /api/projects               create a project
//	GET    /api/projects/{id}          fetch one project (tasks embedded)
//	PUT    /api/projects/{id}          full-field replace
//	DELETE /api/projects/{id}          delete, cascading to tasks
//	GET    /api/tasks?projectId=       list tasks (one project or all owned)
//	POST   /api/tasks                  create a task under an owned project
//	GET    /api/tasks/{id}             fetch one task
//	PUT    /api/tasks/{id}             full-field replace
//	DELETE /api/tasks/{id}             delete
//	GET    /healthz                    liveness probe
//
// # Error Contract
//
// Status codes are part of the contract: 400 for validation failures (with
// per-field details), 401 unauthenticated, 403 authenticated but not the
// owner (tasks only), 404 absent (for projects, absent or not owned),
// 409 duplicate email, 500 anything unexpected. Project lookups
// intentionally conflate "doesn't exist" with "not yours" so existence is
// never leaked; task lookups report 403 when the parent project belongs to
// someone else.
//
// # Handlers
//
// Handlers read the caller's Identity from the request context (attached by
// the auth gate), perform the ownership-scoped store call, and map store
// errors onto the taxonomy above. No handler state is shared between
// requests beyond the store's connection pool.
package api
