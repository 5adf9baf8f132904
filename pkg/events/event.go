package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g. "CHAPTER_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes emitted by the reading service.
const (
	TypeSectionCompleted = "SECTION_COMPLETED"
	TypeChapterCompleted = "CHAPTER_COMPLETED"
)

// NewSectionCompleted is fired every time a section flips to completed.
func NewSectionCompleted(userID, textbookID string, chapterNumber, sectionIndex int, progress float64) Event {
	return BaseEvent{
		Type: TypeSectionCompleted,
		Data: map[string]interface{}{
			"user_id":          userID,
			"textbook_id":      textbookID,
			"chapter_number":   chapterNumber,
			"section_index":    sectionIndex,
			"reading_progress": progress,
		},
		OccurredAt: time.Now(),
	}
}

// NewChapterCompleted is fired once a chapter's progress reaches 1.0.
func NewChapterCompleted(userID, textbookID string, chapterNumber int) Event {
	return BaseEvent{
		Type: TypeChapterCompleted,
		Data: map[string]interface{}{
			"user_id":        userID,
			"textbook_id":    textbookID,
			"chapter_number": chapterNumber,
		},
		OccurredAt: time.Now(),
	}
}
