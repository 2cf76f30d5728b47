// Package client implements the Poké-Explorer terminal client.
//
// The client keeps a persisted Session, moves between two routes (login and
// dashboard) guarded by the session state, and renders each view as text.
// Commands are read line by line from a REPL; each one issues at most one
// request to the API, so requests never overlap.
package client
