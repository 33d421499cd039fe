package translate

import (
	"errors"
	"fmt"
	"strings"
	"travel-companion/domain"
)

// SimilarityThreshold a fuzzy match must score strictly above this
const SimilarityThreshold = 0.3

const similarSuffix = " (similar match)"

var (
	// ErrEmptyInput the text is empty or only whitespace
	ErrEmptyInput = errors.New("empty input")

	// ErrUnsupportedLanguage the source or target language is not offered
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Engine approximates translation with a phrasebook: exact lookup first,
// then the closest phrase by word overlap, then a placeholder.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	dictionaries Dictionaries
	names        map[domain.Language]string
	languages    []LanguageInfo
}

// NewEngine constructs an Engine over dictionaries for the given languages.
func NewEngine(dictionaries Dictionaries, languages []LanguageInfo) *Engine {
	names := make(map[domain.Language]string, len(languages))
	for _, l := range languages {
		names[l.Code] = l.Name
	}
	return &Engine{
		dictionaries: dictionaries,
		names:        names,
		languages:    append([]LanguageInfo(nil), languages...),
	}
}

// NewDefaultEngine the engine over the bundled phrasebook
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultDictionaries(), DefaultLanguages())
}

// Languages the languages the engine accepts
func (e *Engine) Languages() []LanguageInfo {
	return append([]LanguageInfo(nil), e.languages...)
}

// Supports reports whether l is an accepted language.
func (e *Engine) Supports(l domain.Language) bool {
	_, ok := e.names[l]
	return ok
}

// Translate resolves req.Text against the target language dictionary.
func (e *Engine) Translate(req domain.TranslationRequest) (domain.Translation, error) {
	if strings.TrimSpace(req.Text) == "" {
		return domain.Translation{}, ErrEmptyInput
	}
	if req.Source != "" && !e.Supports(req.Source) {
		return domain.Translation{}, fmt.Errorf("source [%v]: %w", req.Source, ErrUnsupportedLanguage)
	}
	if !e.Supports(req.Target) {
		return domain.Translation{}, fmt.Errorf("target [%v]: %w", req.Target, ErrUnsupportedLanguage)
	}

	dict := e.dictionaries[req.Target]

	if value, ok := dict.Lookup(req.Text); ok {
		return domain.Translation{Text: value, Match: domain.Exact}, nil
	}

	if value, ok := closest(dict, req.Text); ok {
		return domain.Translation{Text: value + similarSuffix, Match: domain.Fuzzy}, nil
	}

	return domain.Translation{
		Text:  fmt.Sprintf("[%s - %s]", req.Text, e.names[req.Target]),
		Match: domain.NoMatch,
	}, nil
}

// closest returns the translation of the phrase most similar to text,
// provided it clears SimilarityThreshold. The earliest phrase wins ties.
func closest(dict *Dictionary, text string) (string, bool) {
	textTokens := tokens(text)

	best := -1.0
	var translation string
	for _, entry := range dict.Entries() {
		score := similarity(tokens(entry.Phrase), textTokens)
		if score > best {
			best = score
			translation = entry.Translation
		}
	}

	if best > SimilarityThreshold {
		return translation, true
	}
	return "", false
}

// Similarity scores how many words two phrases share, from 0 to 1.
// Words are whitespace separated and compared case-insensitively.
func Similarity(a, b string) float64 {
	return similarity(tokens(a), tokens(b))
}

func similarity(a, b map[string]struct{}) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}

	overlap := 0
	for word := range a {
		if _, ok := b[word]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(longest)
}

func tokens(s string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
