package poke_explorer

import "time"

// AuthRequest is the body of POST /auth/register and POST /auth/login.
type AuthRequest struct {
	Username string `json:"username" example:"ash"`
	Password string `json:"password" example:"pikachu1"`
}

// AuthResponse is returned by a successful register or login.
type AuthResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// SearchRequest is the body of POST /api/search and of each live search frame.
type SearchRequest struct {
	Term string `json:"term" example:"charizard"`
}

// HistoryEntry is a single recorded search.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Term      string    `json:"term"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"` // upstream/infra cause, 5xx only
}
