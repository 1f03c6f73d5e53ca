// Package server wires the application together: it opens the SQLite store,
// builds the token issuer and auth gate, mounts the API and HTML page routes,
// and runs the HTTP server with graceful shutdown.
package server
