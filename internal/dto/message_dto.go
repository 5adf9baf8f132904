package dto

import "github.com/google/uuid"

// PublishProgressMessage fans out over the in-process bus whenever a snapshot
// changes, so websocket and NATS delivery stay off the request path.
type PublishProgressMessage struct {
	UserId           uuid.UUID `json:"user_id"`
	TextbookId       string    `json:"textbook_id"`
	ChapterNumber    int       `json:"chapter_number"`
	SectionId        string    `json:"section_id,omitempty"`
	Progress         float64   `json:"progress"`
	ChapterCompleted bool      `json:"chapter_completed"`
}
