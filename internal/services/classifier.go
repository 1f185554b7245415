package services

import (
	"strings"

	"github.com/Seishinnakamoto/Jokko.ia/internal/models"
)

// Category is a topic label assigned to an incoming message.
type Category string

const (
	CategoryResidencePermit Category = "permesso_soggiorno"
	CategoryWork            Category = "lavoro"
	CategoryHousing         Category = "casa"
	CategoryHealth          Category = "sanita"
	CategoryRights          Category = "diritti"
	CategoryGeneral         Category = "generale"

	// defaultKey is the response-table key for CategoryGeneral answers.
	defaultKey Category = "default"
)

// rules are evaluated in order; the first keyword hit wins.
var rules = []struct {
	keywords   []string
	category   Category
	confidence float64
}{
	{[]string{"permesso", "soggiorno", "séjour", "permit"}, CategoryResidencePermit, 0.9},
	{[]string{"lavoro", "job", "work", "emploi"}, CategoryWork, 0.85},
	{[]string{"casa", "house", "logement", "rent"}, CategoryHousing, 0.85},
	{[]string{"salute", "health", "santé", "doctor"}, CategoryHealth, 0.85},
	{[]string{"diritti", "rights", "droits", "legal"}, CategoryRights, 0.85},
}

// Classify matches the lowercased message against the keyword rules.
func Classify(message string) (Category, float64) {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(lower, k) {
				return r.category, r.confidence
			}
		}
	}
	return CategoryGeneral, 0.7
}

// ResolveLanguage returns the language whose response table will answer the
// request: the requested code if it has content, otherwise DefaultLanguage.
func ResolveLanguage(requested string) string {
	if _, ok := sampleResponses[requested]; ok {
		return requested
	}
	return DefaultLanguage
}

// Answer classifies the message and assembles the full chat response for the
// requested language. It only reads process-wide constant tables.
func Answer(message, language string) models.ChatResponse {
	lang := ResolveLanguage(language)
	answers := sampleResponses[lang]

	category, confidence := Classify(message)
	key := category
	if category == CategoryGeneral {
		key = defaultKey
	}

	return models.ChatResponse{
		Response:   answers[key],
		Language:   lang,
		Sources:    Sources(),
		Category:   string(category),
		Confidence: confidence,
	}
}
