package http

import (
	"net/http"
	"travel-companion/domain"
	"travel-companion/translate"
)

// translate produces HTTP handler for phrase translations
func (s *Server) translate() http.HandlerFunc {

	type request struct {
		Text       string          `json:"text" validate:"max=1000"`
		SourceLang domain.Language `json:"sourceLang" validate:"max=8"`
		TargetLang domain.Language `json:"targetLang" validate:"max=8"`
	}

	type response struct {
		Text      string           `json:"text"`
		MatchKind domain.MatchKind `json:"matchKind"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var request request
		if !s.decode(rw, r, &request) {
			return
		}

		id := s.sessionID(rw, r)
		result, err := s.Translate.Translate(r.Context(), id, domain.TranslationRequest{
			Text:   request.Text,
			Source: request.SourceLang,
			Target: request.TargetLang,
		})
		if err != nil {
			s.fail(rw, err)
			return
		}

		s.writeJSON(rw, http.StatusOK, response{Text: result.Text, MatchKind: result.Match})
	}
}

// languages produces HTTP handler listing the translate languages
func (s *Server) languages() http.HandlerFunc {

	type response struct {
		Languages []translate.LanguageInfo `json:"languages"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		s.writeJSON(rw, http.StatusOK, response{Languages: s.Translate.Languages()})
	}
}

// history produces HTTP handler returning the session history, most recent first
func (s *Server) history() http.HandlerFunc {

	type response struct {
		History []domain.HistoryEntry `json:"history"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		history, err := s.Translate.History(r.Context(), s.sessionID(rw, r))
		if err != nil {
			s.fail(rw, err)
			return
		}
		s.writeJSON(rw, http.StatusOK, response{History: history})
	}
}

// clearHistory produces HTTP handler emptying the session history
func (s *Server) clearHistory() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if err := s.Translate.ClearHistory(r.Context(), s.sessionID(rw, r)); err != nil {
			s.fail(rw, err)
			return
		}
		rw.WriteHeader(http.StatusNoContent)
	}
}

// savePhrase produces HTTP handler saving a translated phrase for the session
func (s *Server) savePhrase() http.HandlerFunc {

	type request struct {
		Original   string          `json:"original" validate:"max=1000"`
		Translated string          `json:"translated" validate:"max=1000"`
		SourceLang domain.Language `json:"sourceLang" validate:"max=8"`
		TargetLang domain.Language `json:"targetLang" validate:"max=8"`
		Category   domain.Category `json:"category" validate:"max=32"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var request request
		if !s.decode(rw, r, &request) {
			return
		}

		saved, err := s.Translate.SavePhrase(r.Context(), s.sessionID(rw, r), domain.SavedPhrase{
			Original:   request.Original,
			Translated: request.Translated,
			Source:     request.SourceLang,
			Target:     request.TargetLang,
			Category:   request.Category,
		})
		if err != nil {
			s.fail(rw, err)
			return
		}
		s.writeJSON(rw, http.StatusCreated, saved)
	}
}

// phrases produces HTTP handler listing the session's saved phrases
func (s *Server) phrases() http.HandlerFunc {

	type response struct {
		Phrases []domain.SavedPhrase `json:"phrases"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		phrases, err := s.Translate.SavedPhrases(r.Context(), s.sessionID(rw, r))
		if err != nil {
			s.fail(rw, err)
			return
		}
		s.writeJSON(rw, http.StatusOK, response{Phrases: phrases})
	}
}
