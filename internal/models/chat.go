package models

type ChatRequest struct {
	Message  string `json:"message" validate:"required"`
	Language string `json:"language,omitempty"` // Language code (it, fr, en, ...); defaults to "it"
	UserID   string `json:"user_id,omitempty"`
}

// Source is a static citation attached to every chat response.
type Source struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ChatResponse struct {
	Response   string   `json:"response"`
	Language   string   `json:"language"` // language actually used, after fallback
	Sources    []Source `json:"sources"`
	Category   string   `json:"category"`
	Confidence float64  `json:"confidence"`
}
