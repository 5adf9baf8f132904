package implementation

import (
	"context"

	"studytrail-be/internal/entity"
	"studytrail-be/internal/mapper"
	"studytrail-be/internal/model"
	"studytrail-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KnowledgeChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeChunkMapper
}

func NewKnowledgeChunkRepository(db *gorm.DB) contract.KnowledgeChunkRepository {
	return &KnowledgeChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeChunkMapper(),
	}
}

func (r *KnowledgeChunkRepositoryImpl) Create(ctx context.Context, chunk *entity.KnowledgeChunk) error {
	m := r.mapper.ToModel(chunk)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*chunk = *r.mapper.ToEntity(m)
	return nil
}

func (r *KnowledgeChunkRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.KnowledgeChunk{}, id).Error
}

// SearchNearest orders by cosine distance. Embeddings are stored normalized,
// so 1 - distance doubles as the similarity score.
func (r *KnowledgeChunkRepositoryImpl) SearchNearest(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredChunk, error) {
	if limit <= 0 {
		limit = 2
	}

	type row struct {
		model.KnowledgeChunk
		Distance float64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.KnowledgeChunk{}).
		Select("*, embedding <=> ? AS distance", pgvector.NewVector(embedding)).
		Order("distance ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]*entity.ScoredChunk, len(rows))
	for i, rw := range rows {
		chunk := rw.KnowledgeChunk
		results[i] = &entity.ScoredChunk{
			Chunk:      *r.mapper.ToEntity(&chunk),
			Similarity: 1 - rw.Distance,
		}
	}
	return results, nil
}

func (r *KnowledgeChunkRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.KnowledgeChunk{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
