package translate

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"strings"
	"time"
	"travel-companion/domain"
	"travel-companion/session"
)

var (
	// ErrEmptyPhrase a saved phrase needs both the original and the translation
	ErrEmptyPhrase = errors.New("empty phrase")

	// ErrUnknownCategory the saved phrase category is not one of domain.Categories
	ErrUnknownCategory = errors.New("unknown category")
)

// Service translates phrases and keeps per-session history and saved phrases
type Service interface {
	Translate(ctx context.Context, sessionID string, req domain.TranslationRequest) (domain.Translation, error)
	History(ctx context.Context, sessionID string) ([]domain.HistoryEntry, error)
	ClearHistory(ctx context.Context, sessionID string) error
	SavePhrase(ctx context.Context, sessionID string, phrase domain.SavedPhrase) (domain.SavedPhrase, error)
	SavedPhrases(ctx context.Context, sessionID string) ([]domain.SavedPhrase, error)
	Languages() []LanguageInfo
}

// Option configures a Service
type Option func(*service)

// WithDelay paces every translation with delay.
func WithDelay(delay DelayFunc) Option {
	return func(s *service) {
		s.delay = delay
	}
}

// WithClock overrides the source of history and saved phrase timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	engine *Engine
	store  session.Store
	delay  DelayFunc
	now    func() time.Time
}

// NewService constructs a valid Service
func NewService(engine *Engine, store session.Store, opts ...Option) Service {
	s := &service{
		engine: engine,
		store:  store,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Translate runs the engine and records the result at the front of the
// session history. Rejected requests leave the history untouched.
func (s *service) Translate(ctx context.Context, sessionID string, req domain.TranslationRequest) (domain.Translation, error) {
	result, err := s.engine.Translate(req)
	if err != nil {
		return domain.Translation{}, err
	}

	if s.delay != nil {
		if err := s.delay(ctx); err != nil {
			return domain.Translation{}, fmt.Errorf("translate: %w", err)
		}
	}

	entry := domain.HistoryEntry{
		ID:         uuid.NewString(),
		Original:   req.Text,
		Translated: result.Text,
		Source:     req.Source,
		Target:     req.Target,
		Match:      result.Match,
		Timestamp:  s.now(),
	}
	if err := s.store.PrependHistory(ctx, sessionID, entry); err != nil {
		return domain.Translation{}, fmt.Errorf("recording history: %w", err)
	}

	return result, nil
}

func (s *service) History(ctx context.Context, sessionID string) ([]domain.HistoryEntry, error) {
	return s.store.History(ctx, sessionID)
}

func (s *service) ClearHistory(ctx context.Context, sessionID string) error {
	return s.store.ClearHistory(ctx, sessionID)
}

// SavePhrase keeps a completed translation. Duplicates are allowed and an
// empty category is filed under general.
func (s *service) SavePhrase(ctx context.Context, sessionID string, phrase domain.SavedPhrase) (domain.SavedPhrase, error) {
	if strings.TrimSpace(phrase.Original) == "" || strings.TrimSpace(phrase.Translated) == "" {
		return domain.SavedPhrase{}, ErrEmptyPhrase
	}
	if phrase.Category == "" {
		phrase.Category = domain.General
	}
	if !phrase.Category.Valid() {
		return domain.SavedPhrase{}, fmt.Errorf("category [%v]: %w", phrase.Category, ErrUnknownCategory)
	}

	phrase.ID = uuid.NewString()
	phrase.SavedAt = s.now()
	if err := s.store.AppendPhrase(ctx, sessionID, phrase); err != nil {
		return domain.SavedPhrase{}, fmt.Errorf("saving phrase: %w", err)
	}
	return phrase, nil
}

func (s *service) SavedPhrases(ctx context.Context, sessionID string) ([]domain.SavedPhrase, error) {
	return s.store.Phrases(ctx, sessionID)
}

func (s *service) Languages() []LanguageInfo {
	return s.engine.Languages()
}
