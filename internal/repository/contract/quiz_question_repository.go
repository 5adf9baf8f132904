package contract

import (
	"context"

	"studytrail-be/internal/entity"
	"studytrail-be/internal/repository/specification"

	"github.com/google/uuid"
)

type QuizQuestionRepository interface {
	Create(ctx context.Context, question *entity.QuizQuestion) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuizQuestion, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
