package models

import "time"

// MaxHistoryEntries is how many recent searches a user is ever shown.
const MaxHistoryEntries = 20

// SearchHistoryEntry is one recorded search term. Entries are never updated.
type SearchHistoryEntry struct {
	ID        string    `json:"id"`
	Term      string    `json:"term"` // lowercased
	UserID    string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}
