package unitofwork

import (
	"context"

	"studytrail-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ReadingSnapshotRepository() contract.ReadingSnapshotRepository
	QuizQuestionRepository() contract.QuizQuestionRepository
	KnowledgeChunkRepository() contract.KnowledgeChunkRepository
}
