package service

import (
	"context"
	"strings"
	"testing"

	"studytrail-be/internal/dto"
	"studytrail-be/internal/entity"
	"studytrail-be/internal/repository/contract"
	"studytrail-be/internal/repository/specification"
	"studytrail-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeQuizRepo struct {
	questions []*entity.QuizQuestion
}

func (r *fakeQuizRepo) Create(_ context.Context, q *entity.QuizQuestion) error {
	r.questions = append(r.questions, q)
	return nil
}
func (r *fakeQuizRepo) Delete(context.Context, uuid.UUID) error { return nil }
func (r *fakeQuizRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.QuizQuestion, error) {
	var out []*entity.QuizQuestion
	for _, q := range r.questions {
		keep := true
		for _, spec := range specs {
			switch sp := spec.(type) {
			case specification.ByTopic:
				if !strings.Contains(strings.ToLower(q.Topic), strings.ToLower(sp.Topic)) {
					keep = false
				}
			case specification.ByDifficulty:
				if q.Difficulty != sp.Difficulty {
					keep = false
				}
			}
		}
		if keep {
			out = append(out, q)
		}
	}
	return out, nil
}
func (r *fakeQuizRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.questions)), nil
}

type fakeQuizUow struct {
	fakeUnitOfWork
	quiz *fakeQuizRepo
}

func (u *fakeQuizUow) QuizQuestionRepository() contract.QuizQuestionRepository { return u.quiz }

type fakeQuizFactory struct {
	uow *fakeQuizUow
}

func (f *fakeQuizFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

func seedQuestions(topics ...string) *fakeQuizRepo {
	repo := &fakeQuizRepo{}
	for _, topic := range topics {
		repo.questions = append(repo.questions, &entity.QuizQuestion{
			Id:      uuid.New(),
			Topic:   topic,
			Prompt:  "Question about " + topic,
			Choices: []string{"a", "b", "c", "d"},
			Answer:  0,
		})
	}
	return repo
}

func TestGenerateQuizFiltersByTopic(t *testing.T) {
	repo := seedQuestions("Biology", "Biology", "Physics", "Chemistry")
	svc := NewQuizService(&fakeQuizFactory{uow: &fakeQuizUow{quiz: repo}}, 0)

	res, err := svc.GenerateQuiz(context.Background(), &dto.GenerateQuizRequest{Topic: "bio", Count: 5})
	assert.NoError(t, err)
	assert.Len(t, res.Questions, 2)
	for _, q := range res.Questions {
		assert.Equal(t, "Biology", q.Topic)
	}
}

func TestGenerateQuizUnknownTopicFallsBack(t *testing.T) {
	repo := seedQuestions("Biology", "Physics", "Chemistry")
	svc := NewQuizService(&fakeQuizFactory{uow: &fakeQuizUow{quiz: repo}}, 0)

	res, err := svc.GenerateQuiz(context.Background(), &dto.GenerateQuizRequest{Topic: "astrology", Count: 2})
	assert.NoError(t, err)
	assert.Len(t, res.Questions, 2)
}

func TestAnalyzePerformanceFeedback(t *testing.T) {
	svc := NewQuizService(&fakeQuizFactory{uow: &fakeQuizUow{quiz: &fakeQuizRepo{}}}, 0)

	res := svc.AnalyzePerformance(&dto.AnalyzePerformanceRequest{
		Results: []dto.QuizResultItem{
			{Topic: "Biology", IsCorrect: true},
			{Topic: "Biology", IsCorrect: false},
			{Topic: "Physics", IsCorrect: false},
		},
	})

	assert.Contains(t, res.Feedback, "Good progress in Biology. Keep practicing.")
	assert.Contains(t, res.Feedback, "Weakness detected in Physics. Review the lecture notes.")
}
