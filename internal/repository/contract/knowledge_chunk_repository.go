package contract

import (
	"context"

	"studytrail-be/internal/entity"

	"github.com/google/uuid"
)

type KnowledgeChunkRepository interface {
	Create(ctx context.Context, chunk *entity.KnowledgeChunk) error
	Delete(ctx context.Context, id uuid.UUID) error
	// SearchNearest returns the limit closest chunks to the query embedding
	// by cosine distance, best first.
	SearchNearest(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredChunk, error)
	Count(ctx context.Context) (int64, error)
}
