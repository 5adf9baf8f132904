package service

import (
	"context"
	"encoding/json"
	"time"

	"studytrail-be/internal/dto"
	"studytrail-be/internal/entity"
	"studytrail-be/internal/pkg/logger"
	"studytrail-be/internal/repository/memory"
	"studytrail-be/internal/repository/specification"
	"studytrail-be/internal/repository/unitofwork"
	"studytrail-be/pkg/events"
	pktNats "studytrail-be/pkg/nats"
	"studytrail-be/pkg/reading"

	"github.com/google/uuid"
)

type IReadingService interface {
	BeginChapter(ctx context.Context, userId uuid.UUID, req *dto.BeginChapterRequest) (*dto.StateResponse, error)
	GetState(ctx context.Context, userId uuid.UUID, textbookId string, chapterNumber int) (*dto.StateResponse, error)
	ListSnapshots(ctx context.Context, userId uuid.UUID, textbookId string) (*dto.ListSnapshotsResponse, error)
	DeleteSnapshot(ctx context.Context, userId uuid.UUID, textbookId string, chapterNumber int) error

	Navigate(ctx context.Context, userId uuid.UUID, req *dto.NavigateRequest) (*dto.StateResponse, error)
	CompleteSection(ctx context.Context, userId uuid.UUID, req *dto.CompleteSectionRequest) (*dto.StateResponse, error)
	AddReadingTime(ctx context.Context, userId uuid.UUID, req *dto.AddReadingTimeRequest) (*dto.StateResponse, error)
	ToggleHighlightMode(ctx context.Context, userId uuid.UUID, req *dto.ToggleHighlightModeRequest) (*dto.StateResponse, error)

	AddHighlight(ctx context.Context, userId uuid.UUID, req *dto.AddHighlightRequest) (*dto.StateResponse, error)
	RemoveHighlight(ctx context.Context, userId uuid.UUID, req *dto.RemoveHighlightRequest) (*dto.StateResponse, error)
	UpdateHighlight(ctx context.Context, userId uuid.UUID, req *dto.UpdateHighlightRequest) (*dto.StateResponse, error)

	AddBookmark(ctx context.Context, userId uuid.UUID, req *dto.AddBookmarkRequest) (*dto.StateResponse, error)
	RemoveBookmark(ctx context.Context, userId uuid.UUID, req *dto.RemoveBookmarkRequest) (*dto.StateResponse, error)
	UpdateBookmark(ctx context.Context, userId uuid.UUID, req *dto.UpdateBookmarkRequest) (*dto.StateResponse, error)

	SetMetadata(ctx context.Context, userId uuid.UUID, req *dto.SetMetadataRequest) (*dto.StateResponse, error)
}

type readingService struct {
	uowFactory       unitofwork.RepositoryFactory
	cache            *memory.SnapshotCache
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	log              logger.ILogger
}

func NewReadingService(
	uowFactory unitofwork.RepositoryFactory,
	cache *memory.SnapshotCache,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IReadingService {
	return &readingService{
		uowFactory:       uowFactory,
		cache:            cache,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func (s *readingService) BeginChapter(ctx context.Context, userId uuid.UUID, req *dto.BeginChapterRequest) (*dto.StateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Resuming an already-started chapter returns the stored state untouched
	// so a re-opened book never loses progress.
	existing, err := s.findSnapshot(ctx, uow, userId, req.TextbookId, req.ChapterNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.cache.Save(userId, existing.State)
		return stateResponse(existing.State), nil
	}

	sections := make([]reading.Section, 0, len(req.Sections))
	for _, p := range req.Sections {
		sections = append(sections, reading.NewSection(p.SectionNumber, p.Title, p.Content, p.KeyTerms))
	}
	state := reading.NewState(req.TextbookId, req.ChapterNumber, sections, req.KeyPoints)

	snapshot := entity.ReadingSnapshot{
		Id:            uuid.New(),
		UserId:        userId,
		TextbookId:    req.TextbookId,
		ChapterNumber: req.ChapterNumber,
		State:         state,
		CreatedAt:     time.Now(),
	}
	if err := uow.ReadingSnapshotRepository().Create(ctx, &snapshot); err != nil {
		return nil, err
	}

	s.cache.Save(userId, state)
	return stateResponse(state), nil
}

func (s *readingService) GetState(ctx context.Context, userId uuid.UUID, textbookId string, chapterNumber int) (*dto.StateResponse, error) {
	if state, found := s.cache.Get(userId, textbookId, chapterNumber); found {
		return stateResponse(state), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	snapshot, err := s.findSnapshot(ctx, uow, userId, textbookId, chapterNumber)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, nil
	}

	s.cache.Save(userId, snapshot.State)
	return stateResponse(snapshot.State), nil
}

func (s *readingService) ListSnapshots(ctx context.Context, userId uuid.UUID, textbookId string) (*dto.ListSnapshotsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
	}
	if textbookId != "" {
		specs = append(specs, specification.ByTextbook{TextbookID: textbookId})
	}

	snapshots, err := uow.ReadingSnapshotRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := dto.ListSnapshotsResponse{
		Snapshots: make([]dto.SnapshotSummary, 0, len(snapshots)),
	}
	for _, snap := range snapshots {
		res.Snapshots = append(res.Snapshots, dto.SnapshotSummary{
			TextbookId:    snap.TextbookId,
			ChapterNumber: snap.ChapterNumber,
			Progress:      snap.State.ReadingProgress,
			LastUpdated:   snap.State.LastUpdated,
		})
	}
	return &res, nil
}

func (s *readingService) DeleteSnapshot(ctx context.Context, userId uuid.UUID, textbookId string, chapterNumber int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	snapshot, err := s.findSnapshot(ctx, uow, userId, textbookId, chapterNumber)
	if err != nil {
		return err
	}
	if snapshot == nil {
		return nil
	}

	if err := uow.ReadingSnapshotRepository().Delete(ctx, snapshot.Id); err != nil {
		return err
	}
	s.cache.Delete(userId, textbookId, chapterNumber)
	return nil
}

func (s *readingService) Navigate(ctx context.Context, userId uuid.UUID, req *dto.NavigateRequest) (*dto.StateResponse, error) {
	return s.mutate(ctx, userId, req.TextbookId, req.ChapterNumber, func(state reading.State) (reading.State, error) {
		return state.WithCurrentSection(req.SectionIndex)
	})
}

func (s *readingService) CompleteSection(ctx context.Context, userId uuid.UUID, req *dto.CompleteSectionRequest) (*dto.StateResponse, error) {
	res, err := s.mutate(ctx, userId, req.TextbookId, req.ChapterNumber, func(state reading.State) (reading.State, error) {
		return state.MarkSectionCompleted(req.SectionIndex)
	})
	if err != nil || res == nil {
		return res, err
	}

	s.publishProgress(ctx, userId, res.State, req.SectionIndex)
	return res, nil
}

func (s *readingService) AddReadingTime(ctx context.Context, userId uuid.UUID, req *dto.AddReadingTimeRequest) (*dto.StateResponse, error) {
	return s.mutate(ctx, userId, req.TextbookId, req.ChapterNumber, func(state reading.State) (reading.State, error) {
		return state.AddReadingTime(time.Duration(req.DurationMs) * time.Millisecond)
	})
}

func (s *readingService) ToggleHighlightMode(ctx context.Context, userId uuid.UUID, req *dto.ToggleHighlightModeRequest) (*dto.StateResponse, error) {
	return s.mutate(ctx, userId, req.TextbookId, req.ChapterNumber, func(state reading.State) (reading.State, error) {
		return state.ToggleHighlightMode(), nil
	})
}

func (s *readingService) AddHighlight(ctx context.Context, userId uuid.UUID, req *dto.AddHighlightRequest) (*dto.StateResponse, error) {
	return s.mutate(ctx, userId, req.TextbookId, req.ChapterNumber, func(state reading.State) (reading.State, error) {
		h := reading.NewHighlight(
			req.TextbookId,
			req.ChapterNumber,
			req.SectionNumber,
			req.Text,
			req.StartOffset,
			req.EndOffset,
			reading.HighlightColor(req.HighlightColor),
		)
		return state.AddHighlight(h), nil
	})
}

func (s *readingService) RemoveHighlight(ctx context.Context, userId uuid.UUID, req *dto.RemoveHighlightRequest) (*dto.StateResponse, error) {
	return s.mutate(ctx, userId, req.TextbookId, req.ChapterNumber, func(state reading.State) (reading.State, error) {
		return state.RemoveHighlight(req.HighlightId), nil
	})
}

func (s *readingService) UpdateHighlight(ctx context.Context, userId uuid.UUID, req *dto.UpdateHighlightRequest) (*dto.StateResponse, error) {
	return s.mutate(ctx, userId, req.TextbookId, req.ChapterNumber, func(state reading.State) (reading.State, error) {
		for _, h := range state.Highlights {
			if h.ID != req.HighlightId {
				continue
			}
			h.Color = reading.HighlightColor(req.HighlightColor)
			return state.UpdateHighlight(h), nil
		}
		return state, nil
	})
}

func (s *readingService) AddBookmark(ctx context.Context, userId uuid.UUID, req *dto.AddBookmarkRequest) (*dto.StateResponse, error) {
	category, err := parseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, userId, req.TextbookId, req.ChapterNumber, func(state reading.State) (reading.State, error) {
		b := reading.NewBookmark(
			req.TextbookId,
			req.ChapterNumber,
			req.SectionNumber,
			req.SectionTitle,
			req.Note,
			category,
		)
		return state.AddBookmark(b), nil
	})
}

func (s *readingService) RemoveBookmark(ctx context.Context, userId uuid.UUID, req *dto.RemoveBookmarkRequest) (*dto.StateResponse, error) {
	return s.mutate(ctx, userId, req.TextbookId, req.ChapterNumber, func(state reading.State) (reading.State, error) {
		return state.RemoveBookmark(req.BookmarkId), nil
	})
}

func (s *readingService) UpdateBookmark(ctx context.Context, userId uuid.UUID, req *dto.UpdateBookmarkRequest) (*dto.StateResponse, error) {
	var category reading.BookmarkCategory
	if req.Category != nil {
		parsed, err := reading.ParseBookmarkCategory(*req.Category)
		if err != nil {
			return nil, err
		}
		category = parsed
	}

	return s.mutate(ctx, userId, req.TextbookId, req.ChapterNumber, func(state reading.State) (reading.State, error) {
		for _, b := range state.Bookmarks {
			if b.ID != req.BookmarkId {
				continue
			}
			switch {
			case req.Note != nil && req.Category != nil:
				b = b.UpdateNoteAndCategory(*req.Note, category)
			case req.Note != nil:
				b = b.UpdateNote(*req.Note)
			case req.Category != nil:
				b = b.UpdateCategory(category)
			default:
				return state, nil
			}
			return state.UpdateBookmark(b), nil
		}
		return state, nil
	})
}

func (s *readingService) SetMetadata(ctx context.Context, userId uuid.UUID, req *dto.SetMetadataRequest) (*dto.StateResponse, error) {
	return s.mutate(ctx, userId, req.TextbookId, req.ChapterNumber, func(state reading.State) (reading.State, error) {
		return state.WithMetadata(req.Key, req.Value), nil
	})
}

// mutate loads the snapshot, applies fn to its state and persists the result.
// A nil response with a nil error means no snapshot exists for the key.
func (s *readingService) mutate(
	ctx context.Context,
	userId uuid.UUID,
	textbookId string,
	chapterNumber int,
	fn func(reading.State) (reading.State, error),
) (*dto.StateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	snapshot, err := s.findSnapshot(ctx, uow, userId, textbookId, chapterNumber)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, nil
	}

	next, err := fn(snapshot.State)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	snapshot.State = next
	snapshot.UpdatedAt = &now

	if err := uow.ReadingSnapshotRepository().Update(ctx, snapshot); err != nil {
		return nil, err
	}

	s.cache.Save(userId, next)
	return stateResponse(next), nil
}

func (s *readingService) findSnapshot(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, textbookId string, chapterNumber int) (*entity.ReadingSnapshot, error) {
	return uow.ReadingSnapshotRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ByTextbookChapter{TextbookID: textbookId, ChapterNumber: chapterNumber},
	)
}

// publishProgress fans the completion out: watermill carries it to the
// websocket consumer, NATS to anything outside the process. Neither failure
// fails the request.
func (s *readingService) publishProgress(ctx context.Context, userId uuid.UUID, state reading.State, sectionIndex int) {
	msg := dto.PublishProgressMessage{
		UserId:           userId,
		TextbookId:       state.TextbookID,
		ChapterNumber:    state.ChapterNumber,
		Progress:         state.ReadingProgress,
		ChapterCompleted: state.IsChapterCompleted(),
	}
	if sectionIndex >= 0 && sectionIndex < len(state.Sections) {
		msg.SectionId = state.Sections[sectionIndex].Title
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		s.log.Error("reading", "failed to marshal progress message", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("reading", "failed to publish progress message", map[string]interface{}{"error": err.Error()})
	}

	if s.eventPublisher == nil {
		return
	}
	evt := events.NewSectionCompleted(userId.String(), state.TextbookID, state.ChapterNumber, sectionIndex, state.ReadingProgress)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("reading", "failed to publish section completed event", map[string]interface{}{"error": err.Error()})
	}
	if state.IsChapterCompleted() {
		evt := events.NewChapterCompleted(userId.String(), state.TextbookID, state.ChapterNumber)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("reading", "failed to publish chapter completed event", map[string]interface{}{"error": err.Error()})
		}
	}
}

func parseCategory(name string) (reading.BookmarkCategory, error) {
	if name == "" {
		return reading.CategoryImportant, nil
	}
	return reading.ParseBookmarkCategory(name)
}

func stateResponse(state reading.State) *dto.StateResponse {
	return &dto.StateResponse{
		State:              state,
		ProgressPercentage: state.ProgressPercentage(),
		FormattedTime:      state.FormattedReadingTime(),
		ChapterCompleted:   state.IsChapterCompleted(),
	}
}
