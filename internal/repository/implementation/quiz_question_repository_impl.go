package implementation

import (
	"context"

	"studytrail-be/internal/entity"
	"studytrail-be/internal/mapper"
	"studytrail-be/internal/model"
	"studytrail-be/internal/repository/contract"
	"studytrail-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizQuestionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuizQuestionMapper
}

func NewQuizQuestionRepository(db *gorm.DB) contract.QuizQuestionRepository {
	return &QuizQuestionRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuizQuestionMapper(),
	}
}

func (r *QuizQuestionRepositoryImpl) Create(ctx context.Context, question *entity.QuizQuestion) error {
	m, err := r.mapper.ToModel(question)
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
	*question = *created
	return nil
}

func (r *QuizQuestionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.QuizQuestion{}, id).Error
}

func (r *QuizQuestionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.QuizQuestion, error) {
	var models []*model.QuizQuestion
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models)
}

func (r *QuizQuestionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.QuizQuestion{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
