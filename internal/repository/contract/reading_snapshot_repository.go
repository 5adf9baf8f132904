package contract

import (
	"context"

	"studytrail-be/internal/entity"
	"studytrail-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ReadingSnapshotRepository interface {
	Create(ctx context.Context, snapshot *entity.ReadingSnapshot) error
	Update(ctx context.Context, snapshot *entity.ReadingSnapshot) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReadingSnapshot, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReadingSnapshot, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
