package entity

import (
	"time"

	"github.com/google/uuid"

	"studytrail-be/pkg/reading"
)

// ReadingSnapshot is the persisted reading state for one user's
// (textbook, chapter) pair. State carries the full aggregate; the scalar
// columns exist so lookups never have to parse the payload.
type ReadingSnapshot struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	TextbookId    string
	ChapterNumber int
	State         reading.State
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
