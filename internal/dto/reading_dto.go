package dto

import (
	"time"

	"studytrail-be/pkg/reading"
)

type SectionPayload struct {
	SectionNumber int      `json:"section_number" validate:"required,min=1"`
	Title         string   `json:"title" validate:"required"`
	Content       string   `json:"content"`
	KeyTerms      []string `json:"key_terms"`
}

type BeginChapterRequest struct {
	TextbookId    string           `json:"textbook_id" validate:"required"`
	ChapterNumber int              `json:"chapter_number" validate:"required,min=1"`
	Sections      []SectionPayload `json:"sections" validate:"required,min=1,dive"`
	KeyPoints     []string         `json:"key_points"`
}

type NavigateRequest struct {
	TextbookId    string `json:"textbook_id" validate:"required"`
	ChapterNumber int    `json:"chapter_number" validate:"required,min=1"`
	SectionIndex  int    `json:"section_index" validate:"min=0"`
}

type CompleteSectionRequest struct {
	TextbookId    string `json:"textbook_id" validate:"required"`
	ChapterNumber int    `json:"chapter_number" validate:"required,min=1"`
	SectionIndex  int    `json:"section_index" validate:"min=0"`
}

type AddReadingTimeRequest struct {
	TextbookId    string `json:"textbook_id" validate:"required"`
	ChapterNumber int    `json:"chapter_number" validate:"required,min=1"`
	DurationMs    int64  `json:"duration_ms"`
}

type AddHighlightRequest struct {
	TextbookId     string `json:"textbook_id" validate:"required"`
	ChapterNumber  int    `json:"chapter_number" validate:"required,min=1"`
	SectionNumber  int    `json:"section_number" validate:"required,min=1"`
	Text           string `json:"text" validate:"required"`
	StartOffset    int    `json:"start_offset" validate:"min=0"`
	EndOffset      int    `json:"end_offset" validate:"min=0"`
	HighlightColor int    `json:"highlight_color"`
}

type RemoveHighlightRequest struct {
	TextbookId    string `json:"textbook_id" validate:"required"`
	ChapterNumber int    `json:"chapter_number" validate:"required,min=1"`
	HighlightId   string `json:"highlight_id" validate:"required"`
}

type UpdateHighlightRequest struct {
	TextbookId     string `json:"textbook_id" validate:"required"`
	ChapterNumber  int    `json:"chapter_number" validate:"required,min=1"`
	HighlightId    string `json:"highlight_id" validate:"required"`
	HighlightColor int    `json:"highlight_color" validate:"required"`
}

type AddBookmarkRequest struct {
	TextbookId    string `json:"textbook_id" validate:"required"`
	ChapterNumber int    `json:"chapter_number" validate:"required,min=1"`
	SectionNumber int    `json:"section_number" validate:"required,min=1"`
	SectionTitle  string `json:"section_title"`
	Note          string `json:"note"`
	Category      string `json:"category"`
}

type RemoveBookmarkRequest struct {
	TextbookId    string `json:"textbook_id" validate:"required"`
	ChapterNumber int    `json:"chapter_number" validate:"required,min=1"`
	BookmarkId    string `json:"bookmark_id" validate:"required"`
}

type UpdateBookmarkRequest struct {
	TextbookId    string  `json:"textbook_id" validate:"required"`
	ChapterNumber int     `json:"chapter_number" validate:"required,min=1"`
	BookmarkId    string  `json:"bookmark_id" validate:"required"`
	Note          *string `json:"note"`
	Category      *string `json:"category"`
}

type SetMetadataRequest struct {
	TextbookId    string `json:"textbook_id" validate:"required"`
	ChapterNumber int    `json:"chapter_number" validate:"required,min=1"`
	Key           string `json:"key" validate:"required"`
	Value         any    `json:"value"`
}

type ToggleHighlightModeRequest struct {
	TextbookId    string `json:"textbook_id" validate:"required"`
	ChapterNumber int    `json:"chapter_number" validate:"required,min=1"`
}

// StateResponse echoes the full aggregate after every mutation so the client
// can replace its local copy wholesale instead of patching.
type StateResponse struct {
	State              reading.State `json:"state"`
	ProgressPercentage float64       `json:"progress_percentage"`
	FormattedTime      string        `json:"formatted_reading_time"`
	ChapterCompleted   bool          `json:"chapter_completed"`
}

type SnapshotSummary struct {
	TextbookId    string    `json:"textbook_id"`
	ChapterNumber int       `json:"chapter_number"`
	Progress      float64   `json:"progress"`
	LastUpdated   time.Time `json:"last_updated"`
}

type ListSnapshotsResponse struct {
	Snapshots []SnapshotSummary `json:"snapshots"`
}
