package dto

type GenerateQuizRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	Count      int    `json:"count" validate:"min=0,max=20"`
}

type QuizQuestionResponse struct {
	Id      string   `json:"id"`
	Topic   string   `json:"topic"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
	Answer  int      `json:"answer"`
}

type GenerateQuizResponse struct {
	Topic     string                 `json:"topic"`
	Questions []QuizQuestionResponse `json:"questions"`
}

type QuizResultItem struct {
	QuestionId string `json:"question_id"`
	Topic      string `json:"topic"`
	IsCorrect  bool   `json:"is_correct"`
}

type AnalyzePerformanceRequest struct {
	Results []QuizResultItem `json:"results" validate:"required,min=1,dive"`
}

type AnalyzePerformanceResponse struct {
	Feedback string `json:"feedback"`
}
