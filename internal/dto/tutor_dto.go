package dto

type AskTutorRequest struct {
	Question string `json:"question" validate:"required"`
	Topic    string `json:"topic"`
}

type TutorSource struct {
	Topic      string  `json:"topic"`
	Excerpt    string  `json:"excerpt"`
	Similarity float64 `json:"similarity"`
}

type AskTutorResponse struct {
	Answer     string        `json:"answer"`
	Topic      string        `json:"topic"`
	Confidence float64       `json:"confidence"`
	Sources    []TutorSource `json:"sources"`
	Offline    bool          `json:"offline"`
}
