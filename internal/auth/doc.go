// Package auth provides authentication and authorization for taskdeck.
//
// # Session Tokens
//
// Users authenticate with email and password; on success the server issues
// a JWT signed with HS256 using the configured jwt_secret. The token binds
// the user's numeric ID in the "sub" claim and carries an expiry. Clients
// receive it as an HttpOnly cookie; API clients may instead send it as an
// Authorization bearer header.
//
// # Authorization Gate
//
// The Gate middleware classifies every inbound request path:
//
//   - Protected paths (/dashboard, /api/projects, /api/tasks) without a
//     valid token redirect to the forbidden page.
//   - Auth-entry routes (/login, /register) with a valid token redirect to
//     the dashboard, preventing re-authentication while logged in.
//   - Everything else passes through unmodified.
//
// Token validation failure is treated the same as an absent token: the
// request proceeds as unauthenticated and the failure is logged, never
// surfaced as a hard error.
//
// # Identity Propagation
//
// A validated token attaches an Identity to the request context via
// WithIdentity/IdentityFromContext. Handlers read it explicitly; there is
// no ambient session state.
package auth
