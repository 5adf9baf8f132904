package service

import (
	"context"
	"fmt"
	"strings"

	"studytrail-be/internal/dto"
	"studytrail-be/internal/repository/unitofwork"
	"studytrail-be/pkg/connectivity"
	"studytrail-be/pkg/embedding"
	"studytrail-be/pkg/llm"
)

// retrievalLimit is how many knowledge chunks back one tutor answer.
const retrievalLimit = 4

// retrievalConfidence is reported for answers grounded in retrieved
// material. Retrieval similarity is not a calibrated probability, so the
// value is fixed rather than derived.
const retrievalConfidence = 0.95

const offlineLesson = "You are currently offline. Here is a quick refresher while you reconnect: " +
	"review the key points of your current chapter, re-read any sections you highlighted, " +
	"and try summarizing each completed section in one sentence from memory."

type ITutorService interface {
	Ask(ctx context.Context, req *dto.AskTutorRequest) (*dto.AskTutorResponse, error)
}

type tutorService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	llmProvider       llm.LLMProvider
	tracker           *connectivity.Tracker
}

func NewTutorService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	llmProvider llm.LLMProvider,
	tracker *connectivity.Tracker,
) ITutorService {
	return &tutorService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		tracker:           tracker,
	}
}

func (s *tutorService) Ask(ctx context.Context, req *dto.AskTutorRequest) (*dto.AskTutorResponse, error) {
	// When the backend is in offline mode we hand back a canned study lesson
	// instead of failing: the reading flow keeps working without the AI stack.
	if s.tracker != nil && s.tracker.IsOffline() {
		return &dto.AskTutorResponse{
			Answer:     offlineLesson,
			Topic:      req.Topic,
			Confidence: 0,
			Sources:    []dto.TutorSource{},
			Offline:    true,
		}, nil
	}

	queryEmbedding, err := s.embeddingProvider.Generate(req.Question)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	chunks, err := uow.KnowledgeChunkRepository().SearchNearest(ctx, queryEmbedding, retrievalLimit)
	if err != nil {
		return nil, err
	}

	sources := make([]dto.TutorSource, 0, len(chunks))
	contextParts := make([]string, 0, len(chunks))
	topic := req.Topic
	for _, sc := range chunks {
		sources = append(sources, dto.TutorSource{
			Topic:      sc.Chunk.Topic,
			Excerpt:    sc.Chunk.Document,
			Similarity: sc.Similarity,
		})
		contextParts = append(contextParts, sc.Chunk.Document)
		if topic == "" {
			topic = sc.Chunk.Topic
		}
	}

	prompt := buildTutorPrompt(req.Question, contextParts)
	answer, err := s.llmProvider.Generate(ctx, prompt, llm.WithTemperature(0.2), llm.WithMaxTokens(512))
	if err != nil {
		return nil, err
	}

	return &dto.AskTutorResponse{
		Answer:     answer,
		Topic:      topic,
		Confidence: retrievalConfidence,
		Sources:    sources,
		Offline:    false,
	}, nil
}

func buildTutorPrompt(question string, contextParts []string) string {
	if len(contextParts) == 0 {
		return fmt.Sprintf("You are a patient science tutor. Answer the student's question concisely.\n\nQuestion: %s", question)
	}
	return fmt.Sprintf(
		"You are a patient science tutor. Answer the student's question using only the study material below. If the material does not cover it, say so.\n\nStudy material:\n%s\n\nQuestion: %s",
		strings.Join(contextParts, "\n---\n"),
		question,
	)
}
