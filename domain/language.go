package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Language a language code, e.g. "th"
type Language string

// MatchKind how a translation was resolved against the phrase dictionary
type MatchKind int

const (
	NoMatch MatchKind = iota
	Exact
	Fuzzy
)

var matchKindNames = map[MatchKind]string{
	NoMatch: "none",
	Exact:   "exact",
	Fuzzy:   "fuzzy",
}

func (m MatchKind) String() string {
	if s, ok := matchKindNames[m]; ok {
		return s
	}
	return fmt.Sprintf("MatchKind(%d)", int(m))
}

func (m MatchKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *MatchKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for k, v := range matchKindNames {
		if v == s {
			*m = k
			return nil
		}
	}
	return fmt.Errorf("unknown match kind: %q", s)
}

// TranslationRequest text to translate between two languages
type TranslationRequest struct {
	Text   string
	Source Language
	Target Language
}

// Translation the result of a translation
type Translation struct {
	Text  string
	Match MatchKind
}

// HistoryEntry one completed translation in a session's conversation history
type HistoryEntry struct {
	ID         string    `json:"id"`
	Original   string    `json:"original"`
	Translated string    `json:"translated"`
	Source     Language  `json:"sourceLang"`
	Target     Language  `json:"targetLang"`
	Match      MatchKind `json:"matchKind"`
	Timestamp  time.Time `json:"timestamp"`
}

// Category tags a saved phrase
type Category string

const (
	Greetings     Category = "greetings"
	Dining        Category = "dining"
	Directions    Category = "directions"
	Shopping      Category = "shopping"
	Emergency     Category = "emergency"
	Transport     Category = "transport"
	Accommodation Category = "accommodation"
	General       Category = "general"
)

// Categories every known phrase category
var Categories = []Category{Greetings, Dining, Directions, Shopping, Emergency, Transport, Accommodation, General}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// SavedPhrase a translation the user kept for later
type SavedPhrase struct {
	ID         string    `json:"id"`
	Original   string    `json:"original"`
	Translated string    `json:"translated"`
	Source     Language  `json:"sourceLang"`
	Target     Language  `json:"targetLang"`
	Category   Category  `json:"category"`
	SavedAt    time.Time `json:"savedAt"`
}
