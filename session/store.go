package session

import (
	"context"
	"errors"
	"travel-companion/domain"
)

// ErrNoSession the session id is empty
var ErrNoSession = errors.New("no session")

// Store keeps the per-session translate state: the conversation history and
// the saved phrases. State lives as long as the session, never longer.
type Store interface {
	// PrependHistory puts entry at the front of the session history.
	PrependHistory(ctx context.Context, id string, entry domain.HistoryEntry) error
	// History returns the session history, most recent first.
	History(ctx context.Context, id string) ([]domain.HistoryEntry, error)
	// ClearHistory empties the session history.
	ClearHistory(ctx context.Context, id string) error
	// AppendPhrase saves a phrase at the end of the session phrase list.
	AppendPhrase(ctx context.Context, id string, phrase domain.SavedPhrase) error
	// Phrases returns the saved phrases in the order they were saved.
	Phrases(ctx context.Context, id string) ([]domain.SavedPhrase, error)
}
