package services

import "github.com/Seishinnakamoto/Jokko.ia/internal/models"

// DefaultLanguage is used whenever the requested language has no response content.
const DefaultLanguage = "it"

// SupportedLanguages maps every declared language code to its display name.
// Only the codes present in sampleResponses have chat content; the rest are
// exposed to clients for UI population and fall back to Italian.
var SupportedLanguages = map[string]string{
	"it": "Italiano", "fr": "Français", "en": "English", "wo": "Wolof",
	"bm": "Bambara", "ha": "Hausa", "am": "Amarico", "ti": "Tigrinya",
	"lg": "Lingala", "ff": "Pulaar", "so": "Soninke",
}

// sampleResponses holds the canned answer for each (language, category) pair.
// The defaultKey entry is the generic greeting returned when no category matches.
var sampleResponses = map[string]map[Category]string{
	"it": {
		CategoryResidencePermit: "Per il permesso di soggiorno devi recarti in Questura con passaporto, foto tessera, marca da bollo da €16...",
		CategoryWork:            "Per cercare lavoro in Italia puoi usare i centri per l'impiego, InfoJobs, agenzie interinali...",
		CategoryHousing:         "Per trovare casa puoi usare Immobiliare.it, Subito, Idealista o contattare associazioni locali...",
		CategoryHealth:          "Il SSN garantisce cure gratuite: chiedi la tessera sanitaria alla ASL e scegli un medico di base...",
		CategoryRights:          "Hai diritto a: assistenza legale gratuita, protezione dalla discriminazione, accesso alla sanità e istruzione...",
		defaultKey:              "Ciao! Sono JOKKO AI. Posso aiutarti su: permesso di soggiorno, lavoro, casa, sanità, diritti. Dimmi pure!",
	},
	"en": {
		CategoryResidencePermit: "For residence permit, go to Questura with passport, ID photo, €16 tax stamp...",
		CategoryWork:            "To find work in Italy: register at job centers, use InfoJobs, temp agencies...",
		CategoryHousing:         "To find a house, use Immobiliare.it, Idealista, or contact local associations...",
		CategoryHealth:          "Italy provides free healthcare: get your health card at ASL and choose a GP...",
		CategoryRights:          "You have the right to free legal aid, education, work and healthcare...",
		defaultKey:              "Hello! I’m JOKKO AI. I can help with: residence permit, work, housing, healthcare, rights.",
	},
	"fr": {
		CategoryResidencePermit: "Pour le titre de séjour, allez à la Questura avec passeport, photos, timbre fiscal de 16€...",
		CategoryWork:            "Pour trouver du travail : centres d'emploi, InfoJobs, agences intérimaires...",
		CategoryHousing:         "Utilisez Immobiliare.it, Idealista ou contactez les associations locales...",
		CategoryHealth:          "Le SSN fournit des soins gratuits : demandez votre carte sanitaire à l'ASL...",
		CategoryRights:          "Vous avez droit à : aide juridique, santé, travail régulier, éducation...",
		defaultKey:              "Salut ! Je suis JOKKO AI. Je peux vous aider avec : séjour, travail, logement, santé, droits.",
	},
}

// ServiceKeys returns the response-table keys for the default language, in their
// canonical order. Exposed by the welcome endpoint as the service list.
func ServiceKeys() []string {
	return []string{
		string(CategoryResidencePermit),
		string(CategoryWork),
		string(CategoryHousing),
		string(CategoryHealth),
		string(CategoryRights),
		string(defaultKey),
	}
}

// Sources returns the two fixed citations attached to every chat response.
func Sources() []models.Source {
	return []models.Source{
		{Title: "JOKKO KB", URL: "https://ym.vercel.app"},
		{Title: "Ministero Interno", URL: "https://www.interno.gov.it"},
	}
}
