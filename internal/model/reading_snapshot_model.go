package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReadingSnapshot struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_snapshot_key"`
	TextbookId    string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_snapshot_key"`
	ChapterNumber int            `gorm:"not null;uniqueIndex:idx_snapshot_key"`
	Payload       datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (ReadingSnapshot) TableName() string {
	return "reading_snapshots"
}
