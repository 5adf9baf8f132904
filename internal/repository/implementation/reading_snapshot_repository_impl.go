package implementation

import (
	"context"
	"errors"

	"studytrail-be/internal/entity"
	"studytrail-be/internal/mapper"
	"studytrail-be/internal/model"
	"studytrail-be/internal/repository/contract"
	"studytrail-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReadingSnapshotRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReadingSnapshotMapper
}

func NewReadingSnapshotRepository(db *gorm.DB) contract.ReadingSnapshotRepository {
	return &ReadingSnapshotRepositoryImpl{
		db:     db,
		mapper: mapper.NewReadingSnapshotMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReadingSnapshotRepositoryImpl) Create(ctx context.Context, snapshot *entity.ReadingSnapshot) error {
	m, err := r.mapper.ToModel(snapshot)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	created, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*snapshot = *created
	return nil
}

func (r *ReadingSnapshotRepositoryImpl) Update(ctx context.Context, snapshot *entity.ReadingSnapshot) error {
	m, err := r.mapper.ToModel(snapshot)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	updated, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*snapshot = *updated
	return nil
}

func (r *ReadingSnapshotRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ReadingSnapshot{}, id).Error
}

func (r *ReadingSnapshotRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReadingSnapshot, error) {
	var m model.ReadingSnapshot
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *ReadingSnapshotRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReadingSnapshot, error) {
	var models []*model.ReadingSnapshot
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models)
}

func (r *ReadingSnapshotRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ReadingSnapshot{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
