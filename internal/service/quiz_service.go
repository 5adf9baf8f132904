package service

import (
	"context"
	"math/rand"
	"time"

	"studytrail-be/internal/dto"
	"studytrail-be/internal/mapper"
	"studytrail-be/internal/repository/specification"
	"studytrail-be/internal/repository/unitofwork"
	"studytrail-be/pkg/quiz"
)

type IQuizService interface {
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
	AnalyzePerformance(req *dto.AnalyzePerformanceRequest) *dto.AnalyzePerformanceResponse
}

type quizService struct {
	uowFactory   unitofwork.RepositoryFactory
	mapper       *mapper.QuizQuestionMapper
	rng          *rand.Rand
	defaultCount int
}

func NewQuizService(uowFactory unitofwork.RepositoryFactory, defaultCount int) IQuizService {
	if defaultCount <= 0 {
		defaultCount = quiz.DefaultQuestionCount
	}
	return &quizService{
		uowFactory:   uowFactory,
		mapper:       mapper.NewQuizQuestionMapper(),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		defaultCount: defaultCount,
	}
}

func (s *quizService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var specs []specification.Specification
	if req.Topic != "" {
		specs = append(specs, specification.ByTopic{Topic: req.Topic})
	}
	if req.Difficulty != "" {
		specs = append(specs, specification.ByDifficulty{Difficulty: req.Difficulty})
	}

	questions, err := uow.QuizQuestionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	// An unknown topic yields a random mix from the whole bank rather than
	// an empty quiz.
	if len(questions) == 0 && len(specs) > 0 {
		questions, err = uow.QuizQuestionRepository().FindAll(ctx)
		if err != nil {
			return nil, err
		}
	}

	bank := make([]quiz.Question, 0, len(questions))
	for _, q := range questions {
		bank = append(bank, s.mapper.ToBankQuestion(q))
	}

	count := req.Count
	if count <= 0 {
		count = s.defaultCount
	}

	// The database already filtered by topic; the engine only samples.
	engine := quiz.NewEngine(bank, s.rng)
	picked := engine.Generate(count)

	res := dto.GenerateQuizResponse{
		Topic:     req.Topic,
		Questions: make([]dto.QuizQuestionResponse, 0, len(picked)),
	}
	for _, q := range picked {
		res.Questions = append(res.Questions, dto.QuizQuestionResponse{
			Id:      q.ID,
			Topic:   q.Topic,
			Prompt:  q.Prompt,
			Choices: q.Choices,
			Answer:  q.Answer,
		})
	}
	return &res, nil
}

func (s *quizService) AnalyzePerformance(req *dto.AnalyzePerformanceRequest) *dto.AnalyzePerformanceResponse {
	results := make([]quiz.Result, 0, len(req.Results))
	for _, r := range req.Results {
		results = append(results, quiz.Result{
			QuestionID: r.QuestionId,
			Topic:      r.Topic,
			IsCorrect:  r.IsCorrect,
		})
	}
	return &dto.AnalyzePerformanceResponse{
		Feedback: quiz.AnalyzePerformance(results),
	}
}
