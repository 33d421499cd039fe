package translate

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"time"
	"travel-companion/domain"
)

// loggingService decorates a translate.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Translate(ctx context.Context, sessionID string, req domain.TranslationRequest) (result domain.Translation, err error) {
	defer func(begin time.Time) {
		level.Info(s.logger).Log(
			"method", "translate",
			"session", sessionID,
			"source", req.Source,
			"target", req.Target,
			"chars", len([]rune(req.Text)),
			"match", result.Match,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Translate(ctx, sessionID, req)
}

func (s *loggingService) History(ctx context.Context, sessionID string) (history []domain.HistoryEntry, err error) {
	defer func(begin time.Time) {
		level.Info(s.logger).Log(
			"method", "history",
			"session", sessionID,
			"count", len(history),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.History(ctx, sessionID)
}

func (s *loggingService) ClearHistory(ctx context.Context, sessionID string) (err error) {
	defer func(begin time.Time) {
		level.Info(s.logger).Log(
			"method", "clear_history",
			"session", sessionID,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ClearHistory(ctx, sessionID)
}

func (s *loggingService) SavePhrase(ctx context.Context, sessionID string, phrase domain.SavedPhrase) (saved domain.SavedPhrase, err error) {
	defer func(begin time.Time) {
		level.Info(s.logger).Log(
			"method", "save_phrase",
			"session", sessionID,
			"category", phrase.Category,
			"id", saved.ID,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SavePhrase(ctx, sessionID, phrase)
}

func (s *loggingService) SavedPhrases(ctx context.Context, sessionID string) (phrases []domain.SavedPhrase, err error) {
	defer func(begin time.Time) {
		level.Info(s.logger).Log(
			"method", "saved_phrases",
			"session", sessionID,
			"count", len(phrases),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SavedPhrases(ctx, sessionID)
}

func (s *loggingService) Languages() []LanguageInfo {
	return s.next.Languages()
}
