// Package web serves the HTML pages of the app: login, register, the
// dashboard, and the forbidden page the auth gate redirects to. Pages are
// rendered from templates embedded in the binary; all data loading happens
// client-side against the JSON API.
package web
