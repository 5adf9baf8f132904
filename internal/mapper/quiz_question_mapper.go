package mapper

import (
	"encoding/json"
	"fmt"

	"studytrail-be/internal/entity"
	"studytrail-be/internal/model"
	"studytrail-be/pkg/quiz"
)

type QuizQuestionMapper struct{}

func NewQuizQuestionMapper() *QuizQuestionMapper {
	return &QuizQuestionMapper{}
}

func (m *QuizQuestionMapper) ToEntity(q *model.QuizQuestion) (*entity.QuizQuestion, error) {
	if q == nil {
		return nil, nil
	}

	var choices []string
	if len(q.Choices) > 0 {
		if err := json.Unmarshal(q.Choices, &choices); err != nil {
			return nil, fmt.Errorf("question %s has corrupt choices: %w", q.Id, err)
		}
	}

	return &entity.QuizQuestion{
		Id:         q.Id,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Prompt:     q.Prompt,
		Choices:    choices,
		Answer:     q.Answer,
		CreatedAt:  q.CreatedAt,
	}, nil
}

func (m *QuizQuestionMapper) ToModel(q *entity.QuizQuestion) (*model.QuizQuestion, error) {
	if q == nil {
		return nil, nil
	}

	choices, err := json.Marshal(q.Choices)
	if err != nil {
		return nil, fmt.Errorf("encode question choices: %w", err)
	}

	return &model.QuizQuestion{
		Id:         q.Id,
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Prompt:     q.Prompt,
		Choices:    choices,
		Answer:     q.Answer,
		CreatedAt:  q.CreatedAt,
	}, nil
}

func (m *QuizQuestionMapper) ToEntities(questions []*model.QuizQuestion) ([]*entity.QuizQuestion, error) {
	entities := make([]*entity.QuizQuestion, len(questions))
	for i, q := range questions {
		e, err := m.ToEntity(q)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}

// ToBankQuestion converts a stored question into the quiz engine's format.
func (m *QuizQuestionMapper) ToBankQuestion(q *entity.QuizQuestion) quiz.Question {
	return quiz.Question{
		ID:         q.Id.String(),
		Topic:      q.Topic,
		Difficulty: q.Difficulty,
		Prompt:     q.Prompt,
		Choices:    q.Choices,
		Answer:     q.Answer,
	}
}
