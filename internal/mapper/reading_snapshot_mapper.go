package mapper

import (
	"encoding/json"
	"fmt"
	"time"

	"studytrail-be/internal/entity"
	"studytrail-be/internal/model"
	"studytrail-be/pkg/reading"
)

type ReadingSnapshotMapper struct{}

func NewReadingSnapshotMapper() *ReadingSnapshotMapper {
	return &ReadingSnapshotMapper{}
}

// ToEntity decodes the JSON payload back into the reading aggregate. A
// payload that no longer parses is surfaced, never papered over.
func (m *ReadingSnapshotMapper) ToEntity(s *model.ReadingSnapshot) (*entity.ReadingSnapshot, error) {
	if s == nil {
		return nil, nil
	}

	var state reading.State
	if err := json.Unmarshal(s.Payload, &state); err != nil {
		return nil, fmt.Errorf("snapshot %s has corrupt payload: %w", s.Id, err)
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.ReadingSnapshot{
		Id:            s.Id,
		UserId:        s.UserId,
		TextbookId:    s.TextbookId,
		ChapterNumber: s.ChapterNumber,
		State:         state,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     updatedAt,
	}, nil
}

func (m *ReadingSnapshotMapper) ToModel(s *entity.ReadingSnapshot) (*model.ReadingSnapshot, error) {
	if s == nil {
		return nil, nil
	}

	payload, err := json.Marshal(s.State)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot state: %w", err)
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.ReadingSnapshot{
		Id:            s.Id,
		UserId:        s.UserId,
		TextbookId:    s.TextbookId,
		ChapterNumber: s.ChapterNumber,
		Payload:       payload,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     updatedAt,
	}, nil
}

func (m *ReadingSnapshotMapper) ToEntities(snapshots []*model.ReadingSnapshot) ([]*entity.ReadingSnapshot, error) {
	entities := make([]*entity.ReadingSnapshot, len(snapshots))
	for i, s := range snapshots {
		e, err := m.ToEntity(s)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
