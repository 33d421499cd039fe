package translate

import (
	"sort"
	"travel-companion/domain"
)

// LanguageInfo a supported language and how it is shown to users
type LanguageInfo struct {
	Code domain.Language `json:"code"`
	Name string          `json:"name"`
}

var languageNames = map[domain.Language]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
	"ar": "Arabic",
	"hi": "Hindi",
	"th": "Thai",
	"vi": "Vietnamese",
	"id": "Indonesian",
	"ms": "Malay",
	"tr": "Turkish",
}

// DefaultLanguages the languages offered by the translate tool, sorted by code
func DefaultLanguages() []LanguageInfo {
	out := make([]LanguageInfo, 0, len(languageNames))
	for code, name := range languageNames {
		out = append(out, LanguageInfo{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
